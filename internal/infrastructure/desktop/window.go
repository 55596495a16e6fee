package desktop

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

// roleActions carry out predefined entries through the Wails runtime.
// Services and Hide Others have no runtime equivalent and are left out.
var roleActions = map[domain.Predefined]func(ctx context.Context, appName, version string){
	domain.PredefinedAbout: func(ctx context.Context, appName, version string) {
		_, _ = runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
			Type:    runtime.InfoDialog,
			Title:   "About " + appName,
			Message: fmt.Sprintf("%s %s", appName, version),
		})
	},
	domain.PredefinedHide:        func(ctx context.Context, _, _ string) { runtime.Hide(ctx) },
	domain.PredefinedShowAll:     func(ctx context.Context, _, _ string) { runtime.Show(ctx) },
	domain.PredefinedQuit:        func(ctx context.Context, _, _ string) { runtime.Quit(ctx) },
	domain.PredefinedCloseWindow: func(ctx context.Context, _, _ string) { runtime.WindowHide(ctx) },
	domain.PredefinedMinimize:    func(ctx context.Context, _, _ string) { runtime.WindowMinimise(ctx) },
	domain.PredefinedZoom:        func(ctx context.Context, _, _ string) { runtime.WindowToggleMaximise(ctx) },
	domain.PredefinedFullscreen: func(ctx context.Context, _, _ string) {
		if runtime.WindowIsFullscreen(ctx) {
			runtime.WindowUnfullscreen(ctx)
			return
		}
		runtime.WindowFullscreen(ctx)
	},
}

// SupportsRole reports whether a predefined entry can be carried out.
func SupportsRole(role domain.Predefined) bool {
	_, ok := roleActions[role]
	return ok
}

func bringToFront(ctx context.Context) {
	runtime.WindowUnminimise(ctx)
	runtime.Show(ctx)
	runtime.WindowShow(ctx)
}

package desktop

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/t3lang/t3lang-shell/internal/application/bridge"
	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/ports"
)

const singleInstanceID = "dev.t3lang.desktop"

// Host runs the main window.
type Host struct {
	Config     domain.Config
	Tree       domain.MenuTree
	Bridge     *bridge.Bridge
	Emitter    *Emitter
	Commands   *Commands
	Files      *Files
	Assets     fs.FS
	Logger     ports.Logger
	Version    string
	LaunchPath string

	mu      sync.Mutex
	pending *bridge.Pending
}

// Run blocks until the window is closed.
func (h *Host) Run() error {
	appMenu, err := BuildMenu(h.Tree, MenuHandlers{
		Dispatch: h.Bridge.Dispatch,
		Perform:  h.perform,
		Supports: SupportsRole,
	})
	if err != nil {
		return err
	}

	app := &options.App{
		Title:  h.Config.Window.Title,
		Width:  h.Config.Window.Width,
		Height: h.Config.Window.Height,
		AssetServer: &assetserver.Options{
			Assets: h.Assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Menu:             appMenu,
		OnStartup:        h.startup,
		OnShutdown:       h.shutdown,
		Bind:             []interface{}{h.Commands, h.Files},
	}
	if h.Config.Window.SingleInstance {
		app.SingleInstanceLock = &options.SingleInstanceLock{
			UniqueId:               singleInstanceID,
			OnSecondInstanceLaunch: h.secondInstance,
		}
	}

	h.info("starting window", map[string]interface{}{"launch_path": h.LaunchPath, "menu": string(h.Tree.Variant)})
	return wails.Run(app)
}

func (h *Host) startup(ctx context.Context) {
	h.Emitter.Attach(ctx)
	h.Commands.attach(ctx)

	pending := h.Bridge.ScheduleOpenPath(ctx, h.LaunchPath)
	h.mu.Lock()
	h.pending = pending
	h.mu.Unlock()
}

func (h *Host) shutdown(context.Context) {
	h.mu.Lock()
	pending := h.pending
	h.pending = nil
	h.mu.Unlock()

	pending.Cancel()
	if err := h.Files.StopWatching(); err != nil && h.Logger != nil {
		h.Logger.Warn("stop watching", map[string]interface{}{"error": err.Error()})
	}
	h.Emitter.Detach()
}

func (h *Host) secondInstance(data options.SecondInstanceData) {
	path, ok := bridge.PathFromArgs(data.Args)
	h.info("second instance", map[string]interface{}{"args": data.Args, "cwd": data.WorkingDirectory})
	if ctx, attached := h.Emitter.Context(); attached {
		bringToFront(ctx)
	}
	if ok {
		h.Bridge.ForwardPath(ResolveLaunchPath(path, data.WorkingDirectory))
	}
}

func (h *Host) perform(role domain.Predefined) {
	ctx, ok := h.Emitter.Context()
	if !ok {
		return
	}
	if action, found := roleActions[role]; found {
		action(ctx, domain.AppName, h.Version)
	}
}

func (h *Host) info(msg string, fields map[string]interface{}) {
	if h.Logger != nil {
		h.Logger.Info(msg, fields)
	}
}

// ResolveLaunchPath makes a relative path handed over by another process
// absolute against that process's working directory.
func ResolveLaunchPath(path, workingDir string) string {
	if filepath.IsAbs(path) || workingDir == "" {
		return path
	}
	return filepath.Join(workingDir, path)
}

package desktop

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/menu"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

// roleAccelerators are the platform shortcuts of predefined entries.
var roleAccelerators = map[domain.Predefined]string{
	domain.PredefinedHide:        "CmdOrCtrl+H",
	domain.PredefinedQuit:        "CmdOrCtrl+Q",
	domain.PredefinedCloseWindow: "CmdOrCtrl+W",
	domain.PredefinedMinimize:    "CmdOrCtrl+M",
	domain.PredefinedFullscreen:  "Ctrl+CmdOrCtrl+F",
}

// MenuHandlers receive activations of the converted menu.
type MenuHandlers struct {
	// Dispatch is called with the identifier of an actionable entry.
	Dispatch func(id string)
	// Perform is called for predefined entries the window runtime can carry out.
	Perform func(role domain.Predefined)
	// Supports reports whether Perform handles role. Unsupported entries are not rendered.
	Supports func(role domain.Predefined) bool
}

// BuildMenu converts the declared tree into a Wails menu. A submenu made only
// of edit entries becomes the platform edit role so the webview keeps its
// clipboard shortcuts.
func BuildMenu(tree domain.MenuTree, handlers MenuHandlers) (*menu.Menu, error) {
	root := menu.NewMenu()
	for _, sub := range tree.Submenus {
		if isEditMenu(sub) {
			root.Append(menu.EditMenu())
			continue
		}
		if err := addItems(root.AddSubmenu(sub.Label), sub.Items, handlers); err != nil {
			return nil, fmt.Errorf("menu %q: %w", sub.Label, err)
		}
	}
	return root, nil
}

func addItems(target *menu.Menu, items []domain.MenuItemSpec, handlers MenuHandlers) error {
	lastSeparator := true
	for _, item := range items {
		switch item.Kind {
		case domain.ItemSeparator:
			if !lastSeparator {
				target.AddSeparator()
				lastSeparator = true
			}
		case domain.ItemAction:
			acc, err := ParseAccelerator(item.Accelerator)
			if err != nil {
				return err
			}
			id := item.ID
			target.AddText(item.Label, acc, func(*menu.CallbackData) {
				if handlers.Dispatch != nil {
					handlers.Dispatch(id)
				}
			})
			lastSeparator = false
		case domain.ItemPredefined:
			role := item.Predefined
			if handlers.Supports == nil || !handlers.Supports(role) {
				continue
			}
			acc, err := ParseAccelerator(roleAccelerators[role])
			if err != nil {
				return err
			}
			target.AddText(item.Label, acc, func(*menu.CallbackData) {
				if handlers.Perform != nil {
					handlers.Perform(role)
				}
			})
			lastSeparator = false
		case domain.ItemSubmenu:
			if err := addItems(target.AddSubmenu(item.Label), item.Items, handlers); err != nil {
				return err
			}
			lastSeparator = false
		}
	}
	trimTrailingSeparator(target)
	return nil
}

func trimTrailingSeparator(m *menu.Menu) {
	if n := len(m.Items); n > 0 && m.Items[n-1].Type == menu.SeparatorType {
		m.Items = m.Items[:n-1]
	}
}

func isEditMenu(sub domain.MenuItemSpec) bool {
	found := false
	for _, item := range sub.Items {
		switch {
		case item.Kind == domain.ItemSeparator:
		case item.Kind == domain.ItemPredefined && item.Predefined.IsEdit():
			found = true
		default:
			return false
		}
	}
	return found
}

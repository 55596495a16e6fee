package domain

// ItemKind classifies a menu entry.
type ItemKind string

const (
	ItemAction     ItemKind = "action"
	ItemSeparator  ItemKind = "separator"
	ItemSubmenu    ItemKind = "submenu"
	ItemPredefined ItemKind = "predefined"
)

// Predefined names an entry whose behaviour belongs to the host platform.
type Predefined string

const (
	PredefinedNone        Predefined = ""
	PredefinedAbout       Predefined = "about"
	PredefinedServices    Predefined = "services"
	PredefinedHide        Predefined = "hide"
	PredefinedHideOthers  Predefined = "hide-others"
	PredefinedShowAll     Predefined = "show-all"
	PredefinedQuit        Predefined = "quit"
	PredefinedCloseWindow Predefined = "close-window"
	PredefinedUndo        Predefined = "undo"
	PredefinedRedo        Predefined = "redo"
	PredefinedCut         Predefined = "cut"
	PredefinedCopy        Predefined = "copy"
	PredefinedPaste       Predefined = "paste"
	PredefinedSelectAll   Predefined = "select-all"
	PredefinedMinimize    Predefined = "minimize"
	PredefinedZoom        Predefined = "zoom"
	PredefinedFullscreen  Predefined = "fullscreen"
)

// IsEdit reports whether the entry is handled by the webview's edit responder chain.
func (p Predefined) IsEdit() bool {
	switch p {
	case PredefinedUndo, PredefinedRedo, PredefinedCut, PredefinedCopy, PredefinedPaste, PredefinedSelectAll:
		return true
	}
	return false
}

// Menu item identifiers used as dispatch keys.
const (
	MenuIDOpenFile     = "open-file"
	MenuIDOpenFolder   = "open-folder"
	MenuIDSettings     = "settings"
	MenuIDInstallCLI   = "install-cli"
	MenuIDUninstallCLI = "uninstall-cli"
)

// MenuVariant selects which top-level menus are built.
type MenuVariant string

const (
	// MenuVariantFull is the macOS layout: application, file, edit and window menus.
	MenuVariantFull MenuVariant = "full"
	// MenuVariantCompact drops the application menu and moves its actions to a tools menu.
	MenuVariantCompact MenuVariant = "compact"
)

// MenuItemSpec describes one entry. Values are built once at startup and never mutated.
type MenuItemSpec struct {
	ID          string
	Label       string
	Accelerator string
	Kind        ItemKind
	Predefined  Predefined
	Items       []MenuItemSpec
}

// Actionable reports whether activating the entry is routed through the dispatcher.
func (m MenuItemSpec) Actionable() bool {
	return m.Kind == ItemAction
}

// MenuTree is the ordered list of top-level submenus.
type MenuTree struct {
	Variant  MenuVariant
	Submenus []MenuItemSpec
}

// ActionIDs returns every dispatch identifier in declaration order.
func (t MenuTree) ActionIDs() []string {
	var ids []string
	var walk func(items []MenuItemSpec)
	walk = func(items []MenuItemSpec) {
		for _, item := range items {
			if item.Actionable() {
				ids = append(ids, item.ID)
			}
			if item.Kind == ItemSubmenu {
				walk(item.Items)
			}
		}
	}
	walk(t.Submenus)
	return ids
}

// Find returns the actionable item with the given id.
func (t MenuTree) Find(id string) (MenuItemSpec, bool) {
	var found MenuItemSpec
	var ok bool
	var walk func(items []MenuItemSpec)
	walk = func(items []MenuItemSpec) {
		for _, item := range items {
			if ok {
				return
			}
			if item.Actionable() && item.ID == id {
				found, ok = item, true
				return
			}
			if item.Kind == ItemSubmenu {
				walk(item.Items)
			}
		}
	}
	walk(t.Submenus)
	return found, ok
}

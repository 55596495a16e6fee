// Package menu declares the application menu.
//
// The tree is built once during startup and is immutable afterwards. Every
// actionable entry carries a stable identifier that the event bridge uses as
// its dispatch key; predefined entries are left to the host platform and have
// no identifier. A tree that fails validation must abort startup.
package menu

import (
	"errors"
	"fmt"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

var (
	// ErrDuplicateID is returned when two actionable entries share an identifier.
	ErrDuplicateID = errors.New("duplicate menu identifier")
	// ErrInvalidItem is returned for an entry whose fields contradict its kind.
	ErrInvalidItem = errors.New("invalid menu item")
)

// Builder produces the menu tree for a deployment variant.
type Builder struct {
	AppName string
}

// NewBuilder returns a Builder labelling application entries with appName.
func NewBuilder(appName string) *Builder {
	return &Builder{AppName: appName}
}

// Build declares the menus for variant in their fixed order and validates the result.
func (b *Builder) Build(variant domain.MenuVariant) (domain.MenuTree, error) {
	var submenus []domain.MenuItemSpec
	switch variant {
	case domain.MenuVariantFull, "":
		variant = domain.MenuVariantFull
		submenus = []domain.MenuItemSpec{b.appMenu(), fileMenu(true), editMenu(), windowMenu(true)}
	case domain.MenuVariantCompact:
		submenus = []domain.MenuItemSpec{fileMenu(false), editMenu(), toolsMenu(), windowMenu(false)}
	default:
		return domain.MenuTree{}, fmt.Errorf("unknown menu variant %q", variant)
	}

	tree := domain.MenuTree{Variant: variant, Submenus: submenus}
	if err := Validate(tree); err != nil {
		return domain.MenuTree{}, err
	}
	return tree, nil
}

func (b *Builder) appMenu() domain.MenuItemSpec {
	return submenu(b.AppName,
		predefined("About "+b.AppName, domain.PredefinedAbout),
		separator(),
		action(domain.MenuIDSettings, "Settings...", "CmdOrCtrl+,"),
		separator(),
		action(domain.MenuIDInstallCLI, fmt.Sprintf("Install '%s' Command in PATH...", domain.CommandName), ""),
		action(domain.MenuIDUninstallCLI, fmt.Sprintf("Uninstall '%s' Command from PATH...", domain.CommandName), ""),
		separator(),
		predefined("Services", domain.PredefinedServices),
		separator(),
		predefined("Hide "+b.AppName, domain.PredefinedHide),
		predefined("Hide Others", domain.PredefinedHideOthers),
		predefined("Show All", domain.PredefinedShowAll),
		separator(),
		predefined("Quit "+b.AppName, domain.PredefinedQuit),
	)
}

func fileMenu(withClose bool) domain.MenuItemSpec {
	items := []domain.MenuItemSpec{
		action(domain.MenuIDOpenFile, "Open File...", "CmdOrCtrl+O"),
		action(domain.MenuIDOpenFolder, "Open Folder...", "CmdOrCtrl+Shift+O"),
	}
	if withClose {
		items = append(items, separator(), predefined("Close Window", domain.PredefinedCloseWindow))
	}
	return submenu("File", items...)
}

func editMenu() domain.MenuItemSpec {
	return submenu("Edit",
		predefined("Undo", domain.PredefinedUndo),
		predefined("Redo", domain.PredefinedRedo),
		separator(),
		predefined("Cut", domain.PredefinedCut),
		predefined("Copy", domain.PredefinedCopy),
		predefined("Paste", domain.PredefinedPaste),
		separator(),
		predefined("Select All", domain.PredefinedSelectAll),
	)
}

func toolsMenu() domain.MenuItemSpec {
	return submenu("Tools",
		action(domain.MenuIDSettings, "Settings", "CmdOrCtrl+,"),
		separator(),
		action(domain.MenuIDInstallCLI, "Install CLI", ""),
		action(domain.MenuIDUninstallCLI, "Uninstall CLI", ""),
	)
}

func windowMenu(withFullscreen bool) domain.MenuItemSpec {
	items := []domain.MenuItemSpec{
		predefined("Minimize", domain.PredefinedMinimize),
		predefined("Zoom", domain.PredefinedZoom),
	}
	if withFullscreen {
		items = append(items, separator(), predefined("Enter Full Screen", domain.PredefinedFullscreen))
	}
	return submenu("Window", items...)
}

func action(id, label, accelerator string) domain.MenuItemSpec {
	return domain.MenuItemSpec{ID: id, Label: label, Accelerator: accelerator, Kind: domain.ItemAction}
}

func predefined(label string, role domain.Predefined) domain.MenuItemSpec {
	return domain.MenuItemSpec{Label: label, Kind: domain.ItemPredefined, Predefined: role}
}

func separator() domain.MenuItemSpec {
	return domain.MenuItemSpec{Kind: domain.ItemSeparator}
}

func submenu(label string, items ...domain.MenuItemSpec) domain.MenuItemSpec {
	return domain.MenuItemSpec{Label: label, Kind: domain.ItemSubmenu, Items: items}
}

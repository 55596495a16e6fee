package menu

import (
	"fmt"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

// Validate checks the structural invariants of a tree: top-level entries are
// non-empty submenus, actionable entries have a label and a globally unique
// identifier, separators and predefined entries carry no identifier.
func Validate(tree domain.MenuTree) error {
	if len(tree.Submenus) == 0 {
		return fmt.Errorf("%w: menu has no submenus", ErrInvalidItem)
	}
	seen := make(map[string]string)
	for _, top := range tree.Submenus {
		if top.Kind != domain.ItemSubmenu {
			return fmt.Errorf("%w: top-level entry %q is %s, want submenu", ErrInvalidItem, top.Label, top.Kind)
		}
		if err := validateItem(top, "menu", seen); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(item domain.MenuItemSpec, path string, seen map[string]string) error {
	switch item.Kind {
	case domain.ItemAction:
		if item.ID == "" || item.Label == "" {
			return fmt.Errorf("%w: action under %s needs an id and a label", ErrInvalidItem, path)
		}
		if previous, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateID, item.ID, previous, path)
		}
		seen[item.ID] = path + " > " + item.Label
	case domain.ItemSeparator:
		if item.ID != "" || item.Label != "" {
			return fmt.Errorf("%w: separator under %s carries id or label", ErrInvalidItem, path)
		}
	case domain.ItemPredefined:
		if item.ID != "" {
			return fmt.Errorf("%w: predefined %q under %s carries id %q", ErrInvalidItem, item.Label, path, item.ID)
		}
		if item.Predefined == domain.PredefinedNone {
			return fmt.Errorf("%w: predefined %q under %s has no role", ErrInvalidItem, item.Label, path)
		}
	case domain.ItemSubmenu:
		if item.Label == "" || len(item.Items) == 0 {
			return fmt.Errorf("%w: submenu under %s needs a label and items", ErrInvalidItem, path)
		}
		for _, child := range item.Items {
			if err := validateItem(child, path+" > "+item.Label, seen); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unknown kind %q under %s", ErrInvalidItem, item.Kind, path)
	}
	return nil
}

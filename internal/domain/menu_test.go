package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

func TestMenuTreeActionIDs(t *testing.T) {
	tree := domain.MenuTree{
		Submenus: []domain.MenuItemSpec{
			{
				Label: "File",
				Kind:  domain.ItemSubmenu,
				Items: []domain.MenuItemSpec{
					{ID: "a", Label: "A", Kind: domain.ItemAction},
					{Kind: domain.ItemSeparator},
					{Label: "Close", Kind: domain.ItemPredefined, Predefined: domain.PredefinedCloseWindow},
					{
						Label: "Nested",
						Kind:  domain.ItemSubmenu,
						Items: []domain.MenuItemSpec{{ID: "b", Label: "B", Kind: domain.ItemAction}},
					},
				},
			},
			{
				Label: "Tools",
				Kind:  domain.ItemSubmenu,
				Items: []domain.MenuItemSpec{{ID: "c", Label: "C", Kind: domain.ItemAction}},
			},
		},
	}

	if diff := cmp.Diff([]string{"a", "b", "c"}, tree.ActionIDs()); diff != "" {
		t.Fatalf("ActionIDs() mismatch (-want +got):\n%s", diff)
	}

	item, ok := tree.Find("b")
	if !ok || item.Label != "B" {
		t.Fatalf("Find(b) = %+v, %v", item, ok)
	}
	if _, ok := tree.Find("missing"); ok {
		t.Fatal("Find(missing) should not succeed")
	}
}

func TestPredefinedIsEdit(t *testing.T) {
	if !domain.PredefinedPaste.IsEdit() {
		t.Error("paste should be an edit entry")
	}
	if domain.PredefinedQuit.IsEdit() {
		t.Error("quit should not be an edit entry")
	}
}

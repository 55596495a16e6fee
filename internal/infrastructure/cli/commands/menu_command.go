package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/t3lang/t3lang-shell/internal/app"
	"github.com/t3lang/t3lang-shell/internal/application/bridge"
	"github.com/t3lang/t3lang-shell/internal/domain"
)

// NewMenuCommand creates the menu command that prints the declared menu tree.
func NewMenuCommand(container *app.Container) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the application menu and the event each entry emits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := container.Config.VariantOrDefault()
			if variant != "" {
				selected = domain.MenuVariant(variant)
			}
			tree, err := container.MenuBuilder.Build(selected)
			if err != nil {
				return err
			}
			displayMenuTree(cmd.OutOrStdout(), tree)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "Menu layout to print (full|compact, default from config)")
	return cmd
}

// displayMenuTree prints one line per entry, indented by depth.
func displayMenuTree(out io.Writer, tree domain.MenuTree) {
	fmt.Fprintf(out, "Menu variant: %s\n", tree.Variant)
	for _, sub := range tree.Submenus {
		displayMenuItem(out, sub, 0)
	}
}

func displayMenuItem(out io.Writer, item domain.MenuItemSpec, depth int) {
	indent := strings.Repeat("  ", depth)
	switch item.Kind {
	case domain.ItemSubmenu:
		colorLabel.Fprintf(out, "%s%s\n", indent, item.Label)
		for _, child := range item.Items {
			displayMenuItem(out, child, depth+1)
		}
	case domain.ItemSeparator:
		fmt.Fprintf(out, "%s----\n", indent)
	case domain.ItemPredefined:
		fmt.Fprintf(out, "%s%s", indent, item.Label)
		colorDim.Fprintf(out, " (%s)\n", item.Predefined)
	case domain.ItemAction:
		fmt.Fprintf(out, "%s%s", indent, item.Label)
		if item.Accelerator != "" {
			fmt.Fprintf(out, " [%s]", item.Accelerator)
		}
		if event, ok := bridge.EventFor(item.ID); ok {
			colorOK.Fprintf(out, " -> %s", event)
		}
		fmt.Fprintln(out)
	}
}

package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/t3lang/t3lang-shell/internal/app"
	"github.com/t3lang/t3lang-shell/internal/application/bridge"
	"github.com/t3lang/t3lang-shell/internal/infrastructure/cli/commands"
	"github.com/t3lang/t3lang-shell/internal/pkg/filesystem"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// builtinCommands are added by cobra at Execute time.
var builtinCommands = []string{"help", "completion"}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	return newRootCmd(container, opts), nil
}

func newRootCmd(container *app.Container, opts Options) *cobra.Command {
	root := &cobra.Command{
		Use:   "t3lang [path]",
		Short: "T3Lang - translation file editor",
		Long:  "Starts the T3Lang desktop app. A path argument is opened once the window is ready.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := bridge.PathFromArgs(args)
			host, err := container.DesktopHost(path)
			if err != nil {
				return err
			}
			return host.Run()
		},
		// Finder and the launcher may pass flags of their own (e.g. -psn_*).
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	root.PersistentFlags().BoolP("verbose", "v", opts.Verbose, "Enable debug logging (also T3LANG_DEBUG=1)")

	root.AddCommand(commands.NewCLICommand(container))
	root.AddCommand(commands.NewMenuCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root
}

// Execute runs root against the process arguments.
func Execute(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(RouteArgs(root, args))
	return root.ExecuteContext(ctx)
}

// RouteArgs keeps a launch path that happens to share a subcommand's name
// (a folder called "config", say) from being run as that subcommand. When the
// first positional argument names both a subcommand and something on disk,
// the path wins and the arguments are fenced off with "--".
func RouteArgs(root *cobra.Command, args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if !isSubcommand(root, arg) || !filesystem.Exists(arg) {
			return args
		}
		routed := make([]string, 0, len(args)+1)
		routed = append(routed, args[:i]...)
		routed = append(routed, "--")
		return append(routed, args[i:]...)
	}
	return args
}

func isSubcommand(root *cobra.Command, name string) bool {
	for _, cmd := range root.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	for _, builtin := range builtinCommands {
		if builtin == name {
			return true
		}
	}
	return false
}

package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/t3lang/t3lang-shell/internal/app"
	"github.com/t3lang/t3lang-shell/internal/domain"
)

// NewCLICommand creates the cli command managing the command-line launcher.
func NewCLICommand(container *app.Container) *cobra.Command {
	cliCmd := &cobra.Command{
		Use:   "cli",
		Short: "Manage the 't3lang' command in PATH",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showLauncherStatus(cmd.OutOrStdout(), container)
		},
	}

	cliCmd.AddCommand(
		newCLIInstallCommand(container),
		newCLIUninstallCommand(container),
		newCLIStatusCommand(container),
		newCLIHistoryCommand(container),
	)

	return cliCmd
}

// newCLIInstallCommand creates the 'cli install' subcommand
func newCLIInstallCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: fmt.Sprintf("Install the launcher at %s (asks for administrator approval)", domain.LauncherPath),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvisioning(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), container, domain.ActionInstall)
		},
	}
}

// newCLIUninstallCommand creates the 'cli uninstall' subcommand
func newCLIUninstallCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the launcher (asks for administrator approval)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvisioning(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), container, domain.ActionUninstall)
		},
	}
}

// newCLIStatusCommand creates the 'cli status' subcommand
func newCLIStatusCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what currently occupies the launcher path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showLauncherStatus(cmd.OutOrStdout(), container)
		},
	}
}

// newCLIHistoryCommand creates the 'cli history' subcommand
func newCLIHistoryCommand(container *app.Container) *cobra.Command {
	var limit int
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent install and uninstall attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearAll {
				return clearJournal(cmd.OutOrStdout(), container)
			}
			return listJournal(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultJournalLimit, "Max entries to show (0 for all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete all recorded attempts")
	return cmd
}

// runProvisioning performs one install or uninstall and prints the outcome.
func runProvisioning(ctx context.Context, out, errOut io.Writer, container *app.Container, action domain.ProvisioningAction) error {
	if container.Provisioner == nil {
		return fmt.Errorf(ErrProvisionerUnavailable)
	}

	if isTerminal(errOut) {
		spin := newSpinner(errOut, MsgAwaitingApproval)
		spin.start()
		defer spin.stop()
	}

	var outcome domain.ProvisioningOutcome
	switch action {
	case domain.ActionInstall:
		outcome = container.Provisioner.Install(ctx)
	default:
		outcome = container.Provisioner.Uninstall(ctx)
	}
	return reportOutcome(out, outcome)
}

// reportOutcome prints a successful outcome and turns the others into errors.
func reportOutcome(out io.Writer, outcome domain.ProvisioningOutcome) error {
	if err := outcome.Err(); err != nil {
		return err
	}
	colorOK.Fprintln(out, outcome.Message)
	return nil
}

// showLauncherStatus displays the live state of the launcher path
func showLauncherStatus(out io.Writer, container *app.Container) error {
	if container.Provisioner == nil {
		return fmt.Errorf(ErrProvisionerUnavailable)
	}
	status := container.Provisioner.Status()

	colorLabel.Fprint(out, "Launcher: ")
	fmt.Fprintln(out, status.Path)
	colorLabel.Fprint(out, "State:    ")
	switch {
	case status.Installed:
		colorOK.Fprintf(out, "installed (%s)\n", status.Kind)
	case status.Kind == domain.LauncherSymlink:
		colorWarn.Fprintln(out, "broken link")
	default:
		colorWarn.Fprintln(out, "not installed")
	}
	if status.LinkTarget != "" {
		colorLabel.Fprint(out, "Target:   ")
		fmt.Fprintln(out, status.LinkTarget)
	}
	if status.ScriptVersion != "" {
		colorLabel.Fprint(out, "Version:  ")
		fmt.Fprintln(out, status.ScriptVersion)
	}
	colorLabel.Fprint(out, "App:      ")
	if status.ResourceFound {
		fmt.Fprintln(out, status.ResourcePath)
	} else {
		colorWarn.Fprintf(out, "%s (missing)\n", status.ResourcePath)
	}
	return nil
}

// listJournal displays the most recent provisioning attempts
func listJournal(out io.Writer, container *app.Container, limit int) error {
	if container.Journal == nil {
		return fmt.Errorf(ErrJournalDisabled)
	}
	records, err := container.Journal.Records(limit)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoJournalRecorded)
		return nil
	}
	for _, rec := range records {
		colorDim.Fprint(out, rec.Timestamp.Local().Format(domain.TimestampFormat))
		fmt.Fprintf(out, " %-9s %-7s ", rec.Action, rec.Strategy)
		outcomeColor(rec.Outcome).Fprintf(out, "%-11s", rec.Outcome)
		fmt.Fprintf(out, " %5dms %s\n", rec.DurationMS, rec.Message)
	}
	return nil
}

// clearJournal deletes all recorded attempts
func clearJournal(out io.Writer, container *app.Container) error {
	if container.Journal == nil {
		return fmt.Errorf(ErrJournalDisabled)
	}
	if err := container.Journal.Clear(); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}
	fmt.Fprintln(out, MsgJournalCleared)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

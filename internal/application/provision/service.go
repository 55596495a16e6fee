package provision

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/pkg/filesystem"
	"github.com/t3lang/t3lang-shell/internal/ports"
)

// Service installs and removes the command-line launcher. It keeps no state
// between calls: whether the launcher is installed is always read back from
// the filesystem. Calls are not serialised; two concurrent provisioning
// requests race and the last privileged command to finish wins.
type Service struct {
	Paths    domain.Paths
	Strategy Strategy
	Executor ports.ElevatedExecutor
	Journal  ports.JournalRepository
	Logger   ports.Logger
	// Clock stamps journal records; the wall clock when nil.
	Clock clockwork.Clock
}

type phrasing struct {
	success   string
	cancelled string
	failed    string
}

var (
	installPhrasing = phrasing{
		success:   fmt.Sprintf("CLI installed successfully! You can now use '%s' from the terminal.", domain.CommandName),
		cancelled: "Installation cancelled.",
		failed:    "Installation failed",
	}
	uninstallPhrasing = phrasing{
		success:   "CLI uninstalled successfully.",
		cancelled: "Uninstallation cancelled.",
		failed:    "Uninstallation failed",
	}
)

// Install puts the launcher in place using the configured strategy.
func (s *Service) Install(ctx context.Context) domain.ProvisioningOutcome {
	start := s.clock().Now()
	op, err := s.Strategy.InstallOperation(s.Paths)
	if err != nil {
		var outcome domain.ProvisioningOutcome
		if errors.Is(err, ErrNotInstalled) {
			msg := fmt.Sprintf("%s is not installed in %s. Please move the app there first.",
				domain.AppName, filepath.Dir(s.Paths.AppBundle))
			outcome = domain.Failed(msg, err)
		} else {
			outcome = domain.Failed(fmt.Sprintf("%s: %v", installPhrasing.failed, err), err)
		}
		s.record(domain.ActionInstall, outcome, s.clock().Since(start))
		return outcome
	}
	return s.submit(ctx, domain.ActionInstall, op, installPhrasing, domain.Installed)
}

// Uninstall removes the launcher whether or not it is currently present.
func (s *Service) Uninstall(ctx context.Context) domain.ProvisioningOutcome {
	return s.submit(ctx, domain.ActionUninstall, UninstallOperation(s.Paths), uninstallPhrasing, domain.Uninstalled)
}

// IsInstalled reports whether the launcher path exists right now.
func (s *Service) IsInstalled() bool {
	return filesystem.Exists(s.Paths.Launcher)
}

// Status describes what currently occupies the launcher path.
func (s *Service) Status() domain.LauncherStatus {
	status := domain.LauncherStatus{
		Path:          s.Paths.Launcher,
		Installed:     filesystem.Exists(s.Paths.Launcher),
		Kind:          domain.LauncherAbsent,
		ResourcePath:  s.Paths.Resource,
		ResourceFound: filesystem.Exists(s.Paths.Resource),
	}
	switch {
	case filesystem.IsSymlink(s.Paths.Launcher):
		status.Kind = domain.LauncherSymlink
		if target, err := os.Readlink(s.Paths.Launcher); err == nil {
			status.LinkTarget = target
		}
	case status.Installed:
		status.Kind = domain.LauncherOther
		if version, ok := ReadVersionStamp(s.Paths.Launcher); ok {
			status.Kind = domain.LauncherScript
			status.ScriptVersion = version
		}
	}
	return status
}

func (s *Service) submit(
	ctx context.Context,
	action domain.ProvisioningAction,
	op domain.ShellOperation,
	words phrasing,
	success func(string) domain.ProvisioningOutcome,
) domain.ProvisioningOutcome {
	result, err := s.Executor.Run(ctx, op)
	var outcome domain.ProvisioningOutcome
	switch {
	case err != nil:
		outcome = domain.Failed(fmt.Sprintf("%s: %v", words.failed, err), errors.Join(ErrExecutionFailed, err))
	default:
		switch Classify(result) {
		case ClassSucceeded:
			outcome = success(words.success)
		case ClassCancelled:
			outcome = domain.Cancelled(words.cancelled, ErrCancelled)
		default:
			outcome = domain.Failed(fmt.Sprintf("%s: %s", words.failed, diagnostic(result)), ErrExecutionFailed)
		}
	}

	fields := map[string]interface{}{
		"action":   string(action),
		"strategy": string(s.Strategy.Name()),
		"outcome":  string(outcome.Kind),
		"target":   s.Paths.Launcher,
	}
	if outcome.Kind == domain.OutcomeFailed {
		s.warn("provisioning failed", fields, outcome.Message)
	} else {
		s.info("provisioning finished", fields)
	}
	s.record(action, outcome, result.Elapsed())
	return outcome
}

func diagnostic(result domain.ShellResult) string {
	if text := strings.TrimSpace(result.Diagnostic()); text != "" {
		return text
	}
	return fmt.Sprintf("exit status %d", result.ExitCode)
}

func (s *Service) record(action domain.ProvisioningAction, outcome domain.ProvisioningOutcome, elapsed time.Duration) {
	if s.Journal == nil {
		return
	}
	err := s.Journal.Save(domain.JournalRecord{
		Timestamp:  s.clock().Now(),
		Action:     action,
		Strategy:   s.Strategy.Name(),
		Outcome:    outcome.Kind,
		Message:    outcome.Message,
		DurationMS: elapsed.Milliseconds(),
	})
	if err != nil && s.Logger != nil {
		s.Logger.Warn("journal write failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Service) clock() clockwork.Clock {
	if s.Clock == nil {
		return clockwork.NewRealClock()
	}
	return s.Clock
}

func (s *Service) info(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Info(msg, fields)
	}
}

func (s *Service) warn(msg string, fields map[string]interface{}, detail string) {
	if s.Logger != nil {
		fields["detail"] = detail
		s.Logger.Warn(msg, fields)
	}
}

var _ ports.Provisioner = (*Service)(nil)

package doctor

import (
	"context"
	"fmt"
	"path/filepath"

	goversion "github.com/hashicorp/go-version"

	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Provisioner    ports.Provisioner
	Journal        ports.JournalRepository
	Processes      ports.ProcessInspector
	Paths          domain.Paths
	// AppVersion is compared with the stamp of a script launcher.
	AppVersion string
}

// Run executes checks and returns a report. A config error stops the run.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format %s, strategy %s, menu %s",
		cfg.ConfigFormatVersion, cfg.StrategyOrDefault(), cfg.VariantOrDefault())))

	if s.Provisioner != nil {
		status := s.Provisioner.Status()
		checks = append(checks, resourceCheck(status), s.launcherCheck(status))
	}

	if s.Processes != nil {
		checks = append(checks, s.processCheck(ctx))
	}

	checks = append(checks, s.journalCheck(cfg))

	return domain.HealthReport{Checks: checks}, nil
}

func resourceCheck(status domain.LauncherStatus) domain.HealthCheck {
	if status.ResourceFound {
		return ok("App bundle", status.ResourcePath)
	}
	return fail("App bundle", fmt.Sprintf("%s not found; move %s to /Applications", status.ResourcePath, domain.AppName))
}

func (s *Service) launcherCheck(status domain.LauncherStatus) domain.HealthCheck {
	const name = "Command-line launcher"
	switch status.Kind {
	case domain.LauncherAbsent:
		return warn(name, fmt.Sprintf("not installed at %s", status.Path))
	case domain.LauncherSymlink:
		if !status.Installed {
			return warn(name, fmt.Sprintf("%s points to missing %s", status.Path, status.LinkTarget))
		}
		if filepath.Clean(status.LinkTarget) != filepath.Clean(status.ResourcePath) {
			return warn(name, fmt.Sprintf("%s points to %s, expected %s", status.Path, status.LinkTarget, status.ResourcePath))
		}
		return ok(name, fmt.Sprintf("%s -> %s", status.Path, status.LinkTarget))
	case domain.LauncherScript:
		if outdated, err := olderThan(status.ScriptVersion, s.AppVersion); err != nil {
			return warn(name, fmt.Sprintf("script at %s has unreadable version %q", status.Path, status.ScriptVersion))
		} else if outdated {
			return warn(name, fmt.Sprintf("script %s is older than app %s; reinstall it", status.ScriptVersion, s.AppVersion))
		}
		return ok(name, fmt.Sprintf("script %s at %s", status.ScriptVersion, status.Path))
	default:
		return warn(name, fmt.Sprintf("%s exists but was not installed by %s", status.Path, domain.AppName))
	}
}

func olderThan(have, want string) (bool, error) {
	if want == "" {
		return false, nil
	}
	vHave, err := goversion.NewVersion(have)
	if err != nil {
		return false, err
	}
	vWant, err := goversion.NewVersion(want)
	if err != nil {
		return false, err
	}
	return vHave.LessThan(vWant), nil
}

func (s *Service) processCheck(ctx context.Context) domain.HealthCheck {
	const name = "Desktop app"
	running, err := s.Processes.Running(ctx, s.Paths.AppBundle)
	if err != nil {
		return warn(name, fmt.Sprintf("process lookup failed: %v", err))
	}
	if running {
		return ok(name, "running")
	}
	return ok(name, "not running")
}

func (s *Service) journalCheck(cfg domain.Config) domain.HealthCheck {
	const name = "Journal"
	if !cfg.Provisioning.Journal {
		return ok(name, "disabled")
	}
	if s.Journal == nil {
		return warn(name, "enabled but not initialized")
	}
	records, err := s.Journal.Records(1)
	if err != nil {
		return warn(name, fmt.Sprintf("%s unreadable: %v", s.Journal.Path(), err))
	}
	if len(records) == 0 {
		return ok(name, fmt.Sprintf("%s (empty)", s.Journal.Path()))
	}
	last := records[0]
	return ok(name, fmt.Sprintf("last %s %s at %s", last.Action, last.Outcome, last.Timestamp.Format(domain.TimestampFormat)))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}

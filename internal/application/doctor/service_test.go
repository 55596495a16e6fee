package doctor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubProvisioner struct{ status domain.LauncherStatus }

func (stubProvisioner) Install(context.Context) domain.ProvisioningOutcome {
	return domain.ProvisioningOutcome{}
}
func (stubProvisioner) Uninstall(context.Context) domain.ProvisioningOutcome {
	return domain.ProvisioningOutcome{}
}
func (s stubProvisioner) IsInstalled() bool             { return s.status.Installed }
func (s stubProvisioner) Status() domain.LauncherStatus { return s.status }

type stubJournal struct{ records []domain.JournalRecord }

func (s *stubJournal) Save(r domain.JournalRecord) error {
	s.records = append(s.records, r)
	return nil
}
func (s *stubJournal) Records(limit int) ([]domain.JournalRecord, error) {
	if limit > 0 && len(s.records) > limit {
		return s.records[:limit], nil
	}
	return s.records, nil
}
func (s *stubJournal) Clear() error { s.records = nil; return nil }
func (s *stubJournal) Path() string { return "/tmp/journal.db" }

type stubProcesses struct {
	running bool
	err     error
}

func (s stubProcesses) Running(context.Context, string) (bool, error) { return s.running, s.err }

func findCheck(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q missing from %+v", name, report.Checks)
	return domain.HealthCheck{}
}

func TestRunStopsOnConfigError(t *testing.T) {
	svc := &Service{ConfigProvider: stubConfig{err: errors.New("bad yaml")}}
	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !report.HasErrors() || len(report.Checks) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestRunHealthySymlinkInstall(t *testing.T) {
	paths := domain.DefaultPaths()
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1", Provisioning: domain.ProvisioningSettings{Journal: true}}},
		Provisioner: stubProvisioner{status: domain.LauncherStatus{
			Path: paths.Launcher, Installed: true, Kind: domain.LauncherSymlink,
			LinkTarget: paths.Resource, ResourcePath: paths.Resource, ResourceFound: true,
		}},
		Journal: &stubJournal{records: []domain.JournalRecord{{
			Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), Action: domain.ActionInstall, Outcome: domain.OutcomeInstalled,
		}}},
		Processes: stubProcesses{running: true},
		Paths:     paths,
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	for _, check := range report.Checks {
		if check.Status != domain.HealthOK {
			t.Errorf("%s: %s (%s)", check.Name, check.Status, check.Details)
		}
	}
	if got := findCheck(t, report, "Journal").Details; !strings.Contains(got, "install installed") {
		t.Fatalf("journal details = %q", got)
	}
}

func TestLauncherCheck(t *testing.T) {
	resource := "/Applications/T3Lang.app/Contents/Resources/t3lang"
	tests := []struct {
		name       string
		status     domain.LauncherStatus
		appVersion string
		want       domain.HealthStatus
		contains   string
	}{
		{name: "absent", status: domain.LauncherStatus{Kind: domain.LauncherAbsent}, want: domain.HealthWarn, contains: "not installed"},
		{name: "dangling link", status: domain.LauncherStatus{Kind: domain.LauncherSymlink, LinkTarget: resource, ResourcePath: resource}, want: domain.HealthWarn, contains: "missing"},
		{name: "foreign link", status: domain.LauncherStatus{Installed: true, Kind: domain.LauncherSymlink, LinkTarget: "/opt/other", ResourcePath: resource}, want: domain.HealthWarn, contains: "expected"},
		{name: "current script", status: domain.LauncherStatus{Installed: true, Kind: domain.LauncherScript, ScriptVersion: "1.4.0"}, appVersion: "1.4.0", want: domain.HealthOK},
		{name: "stale script", status: domain.LauncherStatus{Installed: true, Kind: domain.LauncherScript, ScriptVersion: "1.2.0"}, appVersion: "1.10.0", want: domain.HealthWarn, contains: "older"},
		{name: "garbled stamp", status: domain.LauncherStatus{Installed: true, Kind: domain.LauncherScript, ScriptVersion: "banana"}, appVersion: "1.0.0", want: domain.HealthWarn, contains: "unreadable"},
		{name: "foreign file", status: domain.LauncherStatus{Installed: true, Kind: domain.LauncherOther}, want: domain.HealthWarn, contains: "not installed by"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := (&Service{AppVersion: tt.appVersion}).launcherCheck(tt.status)
			if check.Status != tt.want {
				t.Fatalf("status = %s (%s), want %s", check.Status, check.Details, tt.want)
			}
			if tt.contains != "" && !strings.Contains(check.Details, tt.contains) {
				t.Fatalf("details %q missing %q", check.Details, tt.contains)
			}
		})
	}
}

func TestRunReportsMissingBundle(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{}},
		Provisioner:    stubProvisioner{status: domain.LauncherStatus{Kind: domain.LauncherAbsent, ResourcePath: "/nope"}},
		Processes:      stubProcesses{err: errors.New("denied")},
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !report.HasErrors() {
		t.Fatal("missing bundle must be an error")
	}
	if findCheck(t, report, "Desktop app").Status != domain.HealthWarn {
		t.Fatal("process lookup failure should warn")
	}
	if findCheck(t, report, "Journal").Details != "disabled" {
		t.Fatal("journal should be reported disabled")
	}
}

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/t3lang/t3lang-shell/internal/app"
	"github.com/t3lang/t3lang-shell/internal/application/menu"
	"github.com/t3lang/t3lang-shell/internal/application/provision"
	"github.com/t3lang/t3lang-shell/internal/domain"
	configinfra "github.com/t3lang/t3lang-shell/internal/infrastructure/config"
	"github.com/t3lang/t3lang-shell/internal/infrastructure/journal"
)

type stubExecutor struct {
	result domain.ShellResult
	calls  int
}

func (s *stubExecutor) Run(context.Context, domain.ShellOperation) (domain.ShellResult, error) {
	s.calls++
	return s.result, nil
}

func newTestContainer(t *testing.T, result domain.ShellResult) (*app.Container, *stubExecutor) {
	t.Helper()
	color.NoColor = true

	root := t.TempDir()
	paths := domain.Paths{
		AppBundle: filepath.Join(root, "T3Lang.app"),
		Resource:  filepath.Join(root, "T3Lang.app", "Contents", "Resources", "t3lang"),
		Launcher:  filepath.Join(root, "bin", "t3lang"),
	}
	if err := os.MkdirAll(filepath.Dir(paths.Resource), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.Resource, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	executor := &stubExecutor{result: result}
	store := journal.NewFileStore(filepath.Join(root, "journal.jsonl"))
	return &app.Container{
		Config:      domain.Config{Menu: domain.MenuSettings{Variant: domain.MenuVariantFull}},
		Paths:       paths,
		Journal:     store,
		MenuBuilder: menu.NewBuilder(domain.AppName),
		Provisioner: &provision.Service{
			Paths:    paths,
			Strategy: provision.SymlinkStrategy{},
			Executor: executor,
			Journal:  store,
		},
	}, executor
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLIInstallReportsSuccess(t *testing.T) {
	container, executor := newTestContainer(t, domain.ShellResult{Succeeded: true})

	out, err := execute(t, NewCLICommand(container), "install")
	if err != nil {
		t.Fatalf("install error: %v", err)
	}
	if !strings.Contains(out, "CLI installed successfully!") {
		t.Fatalf("unexpected output %q", out)
	}
	if executor.calls != 1 {
		t.Fatalf("executor calls = %d, want 1", executor.calls)
	}
}

func TestCLIUninstallCancelledIsAnError(t *testing.T) {
	container, _ := newTestContainer(t, domain.ShellResult{
		ExitCode: 1,
		Stderr:   []byte("execution error: User canceled. (-128)"),
	})

	_, err := execute(t, NewCLICommand(container), "uninstall")
	if err == nil || !domain.IsCancelled(err) {
		t.Fatalf("expected cancellation error, got %v", err)
	}
	if err.Error() != "Uninstallation cancelled." {
		t.Fatalf("error message = %q", err.Error())
	}
}

func TestCLIStatusAndHistory(t *testing.T) {
	container, _ := newTestContainer(t, domain.ShellResult{Succeeded: true})

	out, err := execute(t, NewCLICommand(container), "status")
	if err != nil {
		t.Fatalf("status error: %v", err)
	}
	if !strings.Contains(out, "not installed") || !strings.Contains(out, container.Paths.Launcher) {
		t.Fatalf("unexpected status output %q", out)
	}

	out, err = execute(t, NewCLICommand(container), "history")
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	if !strings.Contains(out, MsgNoJournalRecorded) {
		t.Fatalf("expected empty journal message, got %q", out)
	}

	if _, err := execute(t, NewCLICommand(container), "install"); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, NewCLICommand(container), "history", "--limit", "5")
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	if !strings.Contains(out, "install") || !strings.Contains(out, "installed") {
		t.Fatalf("history missing install record: %q", out)
	}

	out, err = execute(t, NewCLICommand(container), "history", "--clear")
	if err != nil || !strings.Contains(out, MsgJournalCleared) {
		t.Fatalf("clear = %q, %v", out, err)
	}
}

func TestCLIHistoryWhenJournalDisabled(t *testing.T) {
	container, _ := newTestContainer(t, domain.ShellResult{Succeeded: true})
	container.Journal = nil

	if _, err := execute(t, NewCLICommand(container), "history"); err == nil || err.Error() != ErrJournalDisabled {
		t.Fatalf("expected journal disabled error, got %v", err)
	}
}

func TestMenuCommandPrintsEvents(t *testing.T) {
	container, _ := newTestContainer(t, domain.ShellResult{})

	out, err := execute(t, NewMenuCommand(container), "--variant", "compact")
	if err != nil {
		t.Fatalf("menu error: %v", err)
	}
	for _, want := range []string{"Menu variant: compact", "Tools", "Install CLI -> menu-install-cli", "Open Folder... [CmdOrCtrl+Shift+O] -> menu-open-folder", "(copy)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, NewMenuCommand(container), "--variant", "tiny"); err == nil {
		t.Fatal("expected unknown variant error")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, NewVersionCommand())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "T3Lang version ") || !strings.Contains(out, "Go version:") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestDisplayDoctorReport(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	displayDoctorReport(&out, domain.HealthReport{Checks: []domain.HealthCheck{
		{Name: "App bundle", Status: domain.HealthOK, Details: "/Applications/T3Lang.app"},
		{Name: "Command-line launcher", Status: domain.HealthWarn, Details: "not installed"},
	}})
	want := "[OK] App bundle - /Applications/T3Lang.app\n[WARN] Command-line launcher - not installed\n"
	if out.String() != want {
		t.Fatalf("report = %q, want %q", out.String(), want)
	}
}

func TestConfigResetBacksUpExistingFile(t *testing.T) {
	container, _ := newTestContainer(t, domain.ShellResult{})
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("menu:\n  variant: compact\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	container.ConfigLoader = configinfra.NewFileLoader(path)

	out, err := execute(t, NewConfigCommand(container), "reset")
	if err != nil {
		t.Fatalf("reset error: %v", err)
	}
	for _, want := range []string{"Previous configuration saved to " + path + ".", "Configuration reset at " + path, "variant: full"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigResetReportsBackupFailure(t *testing.T) {
	container, _ := newTestContainer(t, domain.ShellResult{})
	// A directory where the config file should be can be neither copied nor overwritten.
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	container.ConfigLoader = configinfra.NewFileLoader(path)

	out, err := execute(t, NewConfigCommand(container), "reset")
	if err == nil {
		t.Fatal("expected reset to fail")
	}
	if !strings.Contains(out, "Warning: could not back up "+path) {
		t.Errorf("backup failure not reported:\n%s", out)
	}
}

func TestConfigResetWithoutExistingFileSkipsBackup(t *testing.T) {
	container, _ := newTestContainer(t, domain.ShellResult{})
	path := filepath.Join(t.TempDir(), "config.yaml")
	container.ConfigLoader = configinfra.NewFileLoader(path)

	out, err := execute(t, NewConfigCommand(container), "reset")
	if err != nil {
		t.Fatalf("reset error: %v", err)
	}
	if strings.Contains(out, "Warning") || strings.Contains(out, "Previous configuration") {
		t.Errorf("unexpected backup output:\n%s", out)
	}
}

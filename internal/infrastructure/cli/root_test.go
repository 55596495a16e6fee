package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/t3lang/t3lang-shell/internal/app"
)

// resolve runs cobra's own command lookup and flag parsing without executing
// anything, returning the selected command's name and its positional args.
func resolve(t *testing.T, args []string) (string, []string) {
	t.Helper()
	root := newRootCmd(&app.Container{}, Options{})
	cmd, rest, err := root.Find(RouteArgs(root, args))
	if err != nil {
		t.Fatalf("Find(%q) error: %v", args, err)
	}
	if err := cmd.ParseFlags(rest); err != nil {
		t.Fatalf("ParseFlags(%q) error: %v", rest, err)
	}
	positional := cmd.Flags().Args()
	if positional == nil {
		positional = []string{}
	}
	return cmd.Name(), positional
}

func TestRouteArgsPrefersExistingPathOverSubcommand(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, name := range []string{"config", "menu", "doctor", "help"} {
		if err := os.Mkdir(name, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		args     []string
		wantCmd  string
		wantArgs []string
	}{
		{[]string{"config"}, "t3lang", []string{"config"}},
		{[]string{"menu"}, "t3lang", []string{"menu"}},
		{[]string{"doctor"}, "t3lang", []string{"doctor"}},
		{[]string{"help"}, "t3lang", []string{"help"}},
		{[]string{"-v", "config"}, "t3lang", []string{"config"}},
		// No directory named "version" or "cli" exists here.
		{[]string{"version"}, "version", []string{}},
		{[]string{"cli", "status"}, "status", []string{}},
		{[]string{"/tmp/x.txt"}, "t3lang", []string{"/tmp/x.txt"}},
		{[]string{}, "t3lang", []string{}},
		// An unknown flag takes the next argument as its value.
		{[]string{"-psn_0_1", "/tmp/x.txt"}, "t3lang", []string{}},
		{[]string{"--new-window", "/tmp/x.txt"}, "t3lang", []string{}},
	}

	for _, tt := range tests {
		t.Run("args="+strings.Join(tt.args, "_"), func(t *testing.T) {
			gotCmd, gotArgs := resolve(t, tt.args)
			if gotCmd != tt.wantCmd {
				t.Errorf("command = %q, want %q", gotCmd, tt.wantCmd)
			}
			if diff := cmp.Diff(tt.wantArgs, gotArgs); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRouteArgsLeavesExplicitSeparatorAlone(t *testing.T) {
	root := newRootCmd(&app.Container{}, Options{})
	args := []string{"--", "config"}
	if diff := cmp.Diff(args, RouteArgs(root, args)); diff != "" {
		t.Errorf("RouteArgs changed args (-want +got):\n%s", diff)
	}
}

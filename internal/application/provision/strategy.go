package provision

import (
	"encoding/base64"
	"fmt"

	"github.com/alessio/shellescape"

	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/pkg/filesystem"
)

// Strategy composes the privileged command that puts the launcher in place.
type Strategy interface {
	Name() domain.Strategy
	InstallOperation(paths domain.Paths) (domain.ShellOperation, error)
}

// NewStrategy returns the strategy for kind. version is stamped into generated scripts.
func NewStrategy(kind domain.Strategy, version string) (Strategy, error) {
	switch kind {
	case domain.StrategySymlink, "":
		return SymlinkStrategy{}, nil
	case domain.StrategyScript:
		return ScriptStrategy{Version: version}, nil
	default:
		return nil, fmt.Errorf("unknown provisioning strategy %q", kind)
	}
}

// SymlinkStrategy links the launcher path to the binary shipped in the app bundle.
type SymlinkStrategy struct{}

func (SymlinkStrategy) Name() domain.Strategy { return domain.StrategySymlink }

// InstallOperation fails fast with ErrNotInstalled when the resource is absent,
// so no authorization prompt is shown for an install that cannot work.
func (SymlinkStrategy) InstallOperation(paths domain.Paths) (domain.ShellOperation, error) {
	if !filesystem.Exists(paths.Resource) {
		return domain.ShellOperation{}, fmt.Errorf("%w: %s", ErrNotInstalled, paths.Resource)
	}
	command := shellescape.QuoteCommand([]string{"/bin/mkdir", "-p", paths.LauncherDir()}) +
		" && " + shellescape.QuoteCommand([]string{"/bin/ln", "-sfn", paths.Resource, paths.Launcher})
	return domain.ShellOperation{Command: command, RequiresElevation: true}, nil
}

// ScriptStrategy writes a self-contained launcher script and marks it executable.
type ScriptStrategy struct {
	Version string
	// Opener is the program used to bring the app forward; /usr/bin/open when empty.
	Opener string
}

func (ScriptStrategy) Name() domain.Strategy { return domain.StrategyScript }

// InstallOperation embeds the rendered script as base64 so the command needs no
// further escaping regardless of the script's contents.
func (s ScriptStrategy) InstallOperation(paths domain.Paths) (domain.ShellOperation, error) {
	script, err := s.Render(paths)
	if err != nil {
		return domain.ShellOperation{}, err
	}
	encoded := base64.StdEncoding.EncodeToString(script)
	command := shellescape.QuoteCommand([]string{"/bin/mkdir", "-p", paths.LauncherDir()}) +
		" && " + shellescape.QuoteCommand([]string{"/bin/echo", encoded}) + " | /usr/bin/base64 --decode > " + shellescape.Quote(paths.Launcher) +
		" && " + shellescape.QuoteCommand([]string{"/bin/chmod", "755", paths.Launcher})
	return domain.ShellOperation{Command: command, RequiresElevation: true}, nil
}

// UninstallOperation removes the launcher. rm -f treats a missing target as success.
func UninstallOperation(paths domain.Paths) domain.ShellOperation {
	return domain.ShellOperation{
		Command:           shellescape.QuoteCommand([]string{"/bin/rm", "-f", paths.Launcher}),
		RequiresElevation: true,
	}
}

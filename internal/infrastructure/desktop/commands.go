package desktop

import (
	"context"
	"sync"

	"github.com/t3lang/t3lang-shell/internal/ports"
)

// Commands is the object bound into the UI. Its exported methods are the
// whole command surface the UI can invoke.
type Commands struct {
	provisioner ports.Provisioner

	mu  sync.RWMutex
	ctx context.Context
}

// NewCommands binds provisioner to the UI.
func NewCommands(provisioner ports.Provisioner) *Commands {
	return &Commands{provisioner: provisioner, ctx: context.Background()}
}

func (c *Commands) attach(ctx context.Context) {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()
}

func (c *Commands) context() context.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ctx
}

// InstallCLI installs the command-line launcher. The returned string is the
// message to show; a cancelled or failed attempt is reported as an error
// carrying that message.
func (c *Commands) InstallCLI() (string, error) {
	outcome := c.provisioner.Install(c.context())
	if err := outcome.Err(); err != nil {
		return "", err
	}
	return outcome.Message, nil
}

// UninstallCLI removes the command-line launcher.
func (c *Commands) UninstallCLI() (string, error) {
	outcome := c.provisioner.Uninstall(c.context())
	if err := outcome.Err(); err != nil {
		return "", err
	}
	return outcome.Message, nil
}

// IsCliInstalled reports whether the launcher path exists right now.
func (c *Commands) IsCliInstalled() bool {
	return c.provisioner.IsInstalled()
}

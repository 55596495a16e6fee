package elevation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/ports"
)

const (
	defaultPromptProgram = "/usr/bin/osascript"
	defaultShell         = "/bin/sh"
)

// Executor runs commands on the host shell, routing elevated commands
// through the macOS administrator authorization prompt.
type Executor struct {
	promptProgram string
	shell         string
	logger        ports.Logger
}

// Option customises an Executor.
type Option func(*Executor)

// WithPromptProgram overrides the osascript binary.
func WithPromptProgram(path string) Option {
	return func(e *Executor) { e.promptProgram = path }
}

// WithShell overrides the shell used for non-elevated commands.
func WithShell(path string) Option {
	return func(e *Executor) { e.shell = path }
}

// NewExecutor builds an Executor. logger may be nil.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		promptProgram: defaultPromptProgram,
		shell:         defaultShell,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run implements ports.ElevatedExecutor. It blocks for the lifetime of the
// authorization prompt and the command; there is no way to withdraw the
// request once the prompt is shown.
func (e *Executor) Run(ctx context.Context, op domain.ShellOperation) (domain.ShellResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ShellResult{}, err
	}

	var c *exec.Cmd
	if op.RequiresElevation {
		c = exec.Command(e.promptProgram, "-e", AdministratorScript(op.Command))
	} else {
		c = exec.Command(e.shell, "-c", op.Command)
	}
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	e.debug("running shell operation", map[string]interface{}{
		"command":  op.Command,
		"elevated": op.RequiresElevation,
	})

	start := time.Now()
	err := c.Run()
	result := domain.ShellResult{
		Succeeded:  err == nil,
		Stdout:     stdout.Bytes(),
		Stderr:     stderr.Bytes(),
		DurationMS: time.Since(start).Milliseconds(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return result, nil
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	default:
		result.ExitCode = -1
		return result, fmt.Errorf("start %s: %w", c.Path, err)
	}
}

func (e *Executor) debug(msg string, fields map[string]interface{}) {
	if e.logger != nil {
		e.logger.Debug(msg, fields)
	}
}

var _ ports.ElevatedExecutor = (*Executor)(nil)

// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core (provisioning, menu building, event bridging and
// diagnostics) depends only on these abstractions. Concrete adapters live in
// the infrastructure layer: the osascript executor, the Wails desktop host,
// the YAML config loader, the SQLite journal and the gopsutil process probe.
package ports

import (
	"context"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.t3lang/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ElevatedExecutor runs a single shell command, optionally behind the OS
// authorization prompt. It blocks until the prompt is answered and the
// command exits. A non-zero exit is reported in the result, not as an error;
// the error is reserved for failing to start the command at all.
type ElevatedExecutor interface {
	Run(ctx context.Context, op domain.ShellOperation) (domain.ShellResult, error)
}

// Provisioner installs and removes the command-line launcher.
type Provisioner interface {
	Install(ctx context.Context) domain.ProvisioningOutcome
	Uninstall(ctx context.Context) domain.ProvisioningOutcome
	IsInstalled() bool
	Status() domain.LauncherStatus
}

// EventEmitter delivers named events to the main UI surface.
type EventEmitter interface {
	Emit(name domain.EventName, payload ...interface{}) error
}

// JournalRepository stores the audit trail of provisioning attempts.
type JournalRepository interface {
	Save(domain.JournalRecord) error
	Records(limit int) ([]domain.JournalRecord, error)
	Clear() error
	Path() string
}

// ProcessInspector answers whether a named program is currently running.
type ProcessInspector interface {
	Running(ctx context.Context, name string) (bool, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

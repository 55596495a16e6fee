package domain

import "errors"

// OutcomeKind tags a ProvisioningOutcome.
type OutcomeKind string

const (
	OutcomeInstalled   OutcomeKind = "installed"
	OutcomeUninstalled OutcomeKind = "uninstalled"
	OutcomeCancelled   OutcomeKind = "cancelled"
	OutcomeFailed      OutcomeKind = "failed"
)

// ProvisioningAction names the operation that produced an outcome.
type ProvisioningAction string

const (
	ActionInstall   ProvisioningAction = "install"
	ActionUninstall ProvisioningAction = "uninstall"
)

// Strategy selects how the launcher is provisioned.
type Strategy string

const (
	StrategySymlink Strategy = "symlink"
	StrategyScript  Strategy = "script"
)

// ProvisioningOutcome is returned to the caller and never retained.
type ProvisioningOutcome struct {
	Kind    OutcomeKind
	Message string
	cause   error
}

// Installed builds a successful install outcome.
func Installed(message string) ProvisioningOutcome {
	return ProvisioningOutcome{Kind: OutcomeInstalled, Message: message}
}

// Uninstalled builds a successful uninstall outcome.
func Uninstalled(message string) ProvisioningOutcome {
	return ProvisioningOutcome{Kind: OutcomeUninstalled, Message: message}
}

// Cancelled builds an outcome for a declined authorization prompt.
func Cancelled(message string, cause error) ProvisioningOutcome {
	return ProvisioningOutcome{Kind: OutcomeCancelled, Message: message, cause: cause}
}

// Failed builds a failure outcome.
func Failed(message string, cause error) ProvisioningOutcome {
	return ProvisioningOutcome{Kind: OutcomeFailed, Message: message, cause: cause}
}

// Succeeded reports whether the outcome is Installed or Uninstalled.
func (o ProvisioningOutcome) Succeeded() bool {
	return o.Kind == OutcomeInstalled || o.Kind == OutcomeUninstalled
}

// Err returns nil on success, otherwise an error carrying Message.
func (o ProvisioningOutcome) Err() error {
	if o.Succeeded() {
		return nil
	}
	return &OutcomeError{Kind: o.Kind, Message: o.Message, cause: o.cause}
}

// OutcomeError is the error form of a non-successful outcome.
type OutcomeError struct {
	Kind    OutcomeKind
	Message string
	cause   error
}

func (e *OutcomeError) Error() string { return e.Message }

func (e *OutcomeError) Unwrap() error { return e.cause }

// IsCancelled reports whether err came from a declined authorization prompt.
func IsCancelled(err error) bool {
	var outcomeErr *OutcomeError
	return errors.As(err, &outcomeErr) && outcomeErr.Kind == OutcomeCancelled
}

// LauncherKind describes what currently occupies the launcher path.
type LauncherKind string

const (
	LauncherAbsent  LauncherKind = "absent"
	LauncherSymlink LauncherKind = "symlink"
	LauncherScript  LauncherKind = "script"
	LauncherOther   LauncherKind = "other"
)

// LauncherStatus is derived from the filesystem on every query.
type LauncherStatus struct {
	Path          string
	Installed     bool
	Kind          LauncherKind
	LinkTarget    string
	ScriptVersion string
	ResourcePath  string
	ResourceFound bool
}

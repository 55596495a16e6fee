package domain

import "time"

// ShellOperation is a fully formed command handed to the executor.
// Any embedded path must already be shell-quoted by the caller.
type ShellOperation struct {
	Command           string
	RequiresElevation bool
}

// ShellResult is the raw outcome of a ShellOperation.
type ShellResult struct {
	Succeeded  bool
	ExitCode   int
	Stdout     []byte
	Stderr     []byte
	DurationMS int64
}

// Diagnostic returns stderr, falling back to stdout when stderr is empty.
func (r ShellResult) Diagnostic() string {
	if len(r.Stderr) > 0 {
		return string(r.Stderr)
	}
	return string(r.Stdout)
}

// Elapsed converts DurationMS to a time.Duration.
func (r ShellResult) Elapsed() time.Duration {
	return time.Duration(r.DurationMS) * time.Millisecond
}

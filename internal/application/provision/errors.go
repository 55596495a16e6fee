package provision

import "errors"

var (
	// ErrNotInstalled means the application resource is missing, so there is nothing to link to.
	ErrNotInstalled = errors.New("application not installed in expected location")
	// ErrCancelled means the user declined the authorization prompt.
	ErrCancelled = errors.New("authorization declined")
	// ErrExecutionFailed covers every other unsuccessful privileged command.
	ErrExecutionFailed = errors.New("privileged command failed")
)

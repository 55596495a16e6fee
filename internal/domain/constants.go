package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
	// ExecutablePermissions is the mode given to the generated launcher script
	ExecutablePermissions = 0o755
)

// Timing constants
const (
	// DefaultOpenPathDelay defers the startup open-path event until the UI can receive it
	DefaultOpenPathDelay = 500 * time.Millisecond
)

// Window defaults
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
)

// Journal constants
const (
	// DefaultJournalLimit is the default number of journal records to display
	DefaultJournalLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)

package provision

import (
	"bytes"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

// CancelMarker is what osascript writes to stderr when the user dismisses the
// administrator authorization dialog (AppleScript error -128). It is the only
// signal the OS gives for a declined prompt.
const CancelMarker = "User canceled"

// Classification is the provisioner's reading of a ShellResult.
type Classification int

const (
	ClassSucceeded Classification = iota
	ClassCancelled
	ClassFailed
)

func (c Classification) String() string {
	switch c {
	case ClassSucceeded:
		return "succeeded"
	case ClassCancelled:
		return "cancelled"
	default:
		return "failed"
	}
}

// Classify maps every result to exactly one class. Success wins over the
// marker; the marker is only looked for in stderr.
func Classify(result domain.ShellResult) Classification {
	if result.Succeeded {
		return ClassSucceeded
	}
	if bytes.Contains(result.Stderr, []byte(CancelMarker)) {
		return ClassCancelled
	}
	return ClassFailed
}

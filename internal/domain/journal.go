package domain

import "time"

// JournalRecord captures one provisioning attempt. Records are an audit trail only;
// installation state is always read from the filesystem.
type JournalRecord struct {
	Timestamp  time.Time          `json:"timestamp"`
	Action     ProvisioningAction `json:"action"`
	Strategy   Strategy           `json:"strategy"`
	Outcome    OutcomeKind        `json:"outcome"`
	Message    string             `json:"message"`
	DurationMS int64              `json:"duration_ms"`
}

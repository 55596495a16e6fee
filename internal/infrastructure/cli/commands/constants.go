package commands

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrJournalDisabled          = "journal is disabled (provisioning.journal: false)"
	ErrProvisionerUnavailable   = "provisioner unavailable"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoJournalRecorded        = "No provisioning attempts recorded yet."
	MsgJournalCleared           = "Journal cleared."
	MsgAwaitingApproval         = "Waiting for administrator approval..."
)

package domain

// EventName is a named notification delivered to the UI surface.
type EventName string

// Events understood by the frontend.
const (
	EventOpenFile     EventName = "menu-open-file"
	EventOpenFolder   EventName = "menu-open-folder"
	EventSettings     EventName = "menu-settings"
	EventInstallCLI   EventName = "menu-install-cli"
	EventUninstallCLI EventName = "menu-uninstall-cli"
	// EventOpenPath carries the path string as its only payload.
	EventOpenPath EventName = "open-path"
	// EventFileChanged carries a FileWatchEvent for the watched workspace.
	EventFileChanged EventName = "file-changed"
)

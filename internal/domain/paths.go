package domain

import "path/filepath"

// Well-known locations of the installed application and its command-line launcher.
const (
	AppName         = "T3Lang"
	CommandName     = "t3lang"
	AppBundlePath   = "/Applications/T3Lang.app"
	AppResourcePath = "/Applications/T3Lang.app/Contents/Resources/t3lang"
	LauncherPath    = "/usr/local/bin/t3lang"
)

// Paths groups the fixed filesystem locations the provisioner works against.
type Paths struct {
	AppBundle string
	Resource  string
	Launcher  string
}

// DefaultPaths returns the hardcoded installation layout.
func DefaultPaths() Paths {
	return Paths{
		AppBundle: AppBundlePath,
		Resource:  AppResourcePath,
		Launcher:  LauncherPath,
	}
}

// LauncherDir is the directory holding the launcher.
func (p Paths) LauncherDir() string {
	return filepath.Dir(p.Launcher)
}

package assets

import (
	"embed"
	"io/fs"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// LauncherTemplate is the text/template source of the generated CLI launcher script.
//
//go:embed defaults/launcher.sh.tmpl
var LauncherTemplate string

//go:embed all:frontend/dist
var frontend embed.FS

// Frontend returns the built UI bundle rooted at its dist directory.
func Frontend() (fs.FS, error) {
	return fs.Sub(frontend, "frontend/dist")
}

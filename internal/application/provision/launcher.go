package provision

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/alessio/shellescape"

	"github.com/t3lang/t3lang-shell/assets"
	"github.com/t3lang/t3lang-shell/internal/domain"
)

// VersionStampPrefix marks the line of a generated launcher that records the
// build which wrote it.
const VersionStampPrefix = "# t3lang-launcher-version: "

const defaultOpener = "/usr/bin/open"

var launcherTemplate = template.Must(
	template.New("launcher").Funcs(template.FuncMap{"quote": shellescape.Quote}).Parse(assets.LauncherTemplate),
)

type launcherData struct {
	AppName   string
	Command   string
	AppBundle string
	Opener    string
	Version   string
}

// Render produces the launcher script for paths.
func (s ScriptStrategy) Render(paths domain.Paths) ([]byte, error) {
	data := launcherData{
		AppName:   domain.AppName,
		Command:   domain.CommandName,
		AppBundle: paths.AppBundle,
		Opener:    s.Opener,
		Version:   s.Version,
	}
	if data.Opener == "" {
		data.Opener = defaultOpener
	}
	if data.Version == "" {
		data.Version = "dev"
	}
	var buf bytes.Buffer
	if err := launcherTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render launcher: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadVersionStamp returns the version recorded in a generated launcher, or
// false when path is not one.
func ReadVersionStamp(path string) (string, bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for line := 0; line < 5 && scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.HasPrefix(text, VersionStampPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(text, VersionStampPrefix)), true
		}
	}
	return "", false
}

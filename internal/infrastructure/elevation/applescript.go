package elevation

import (
	"fmt"
	"strings"
)

var appleScriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// AdministratorScript wraps a shell command in an AppleScript statement that
// runs it with administrator privileges.
func AdministratorScript(command string) string {
	return fmt.Sprintf(`do shell script "%s" with administrator privileges`, appleScriptEscaper.Replace(command))
}

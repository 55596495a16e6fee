package desktop

import (
	"fmt"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/menu/keys"
)

var modifierNames = map[string]keys.Modifier{
	"cmdorctrl":   keys.CmdOrCtrlKey,
	"cmd":         keys.CmdOrCtrlKey,
	"command":     keys.CmdOrCtrlKey,
	"ctrl":        keys.ControlKey,
	"control":     keys.ControlKey,
	"shift":       keys.ShiftKey,
	"alt":         keys.OptionOrAltKey,
	"option":      keys.OptionOrAltKey,
	"optionoralt": keys.OptionOrAltKey,
}

// ParseAccelerator turns "CmdOrCtrl+Shift+O" into a Wails accelerator.
// An empty string yields nil.
func ParseAccelerator(spec string) (*keys.Accelerator, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var key string
	var rest string
	if strings.HasSuffix(spec, "++") || spec == "+" {
		key = "+"
		rest = strings.TrimSuffix(strings.TrimSuffix(spec, "+"), "+")
	} else {
		idx := strings.LastIndex(spec, "+")
		key = spec[idx+1:]
		if idx > 0 {
			rest = spec[:idx]
		}
	}
	if key == "" {
		return nil, fmt.Errorf("accelerator %q: missing key", spec)
	}

	acc := &keys.Accelerator{Key: strings.ToLower(key)}
	if rest == "" {
		return acc, nil
	}
	for _, part := range strings.Split(rest, "+") {
		mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("accelerator %q: unknown modifier %q", spec, part)
		}
		acc.Modifiers = append(acc.Modifiers, mod)
	}
	return acc, nil
}

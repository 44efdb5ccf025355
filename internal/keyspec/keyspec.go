// Package keyspec parses human-written key specifications such as "ctrl+r",
// "shift+tab", or "space" into the canonical strings bubbletea reports for
// those keys, so config-driven bindings can be handed to bubbles/key.
package keyspec

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
)

// specialKeys maps spec names to the canonical string a tea.KeyMsg for that
// key produces. Aliases share an entry.
var specialKeys = map[string]string{
	"enter":     "enter",
	"return":    "enter",
	"esc":       "esc",
	"escape":    "esc",
	"tab":       "tab",
	"space":     " ",
	"backspace": "backspace",
	"delete":    "delete",
	"del":       "delete",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"home":      "home",
	"end":       "end",
	"pgup":      "pgup",
	"pageup":    "pgup",
	"pgdown":    "pgdown",
	"pagedown":  "pgdown",
	"insert":    "insert",
}

// ctrlCombos lists the special keys that exist as dedicated ctrl variants.
var ctrlCombos = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"home": true, "end": true, "pgup": true, "pgdown": true,
}

// Parse normalizes a key spec into the canonical form used by key.Matches.
// Examples: "ctrl+r" -> "ctrl+r", "shift+tab" -> "shift+tab",
// "space" -> " ", "pageup" -> "pgup", "alt+x" -> "alt+x".
func Parse(spec string) (string, error) {
	var ctrl, alt, shift bool

	rest := spec
mods:
	for {
		switch {
		case len(rest) > 5 && rest[:5] == "ctrl+":
			ctrl = true
			rest = rest[5:]
		case len(rest) > 4 && rest[:4] == "alt+":
			alt = true
			rest = rest[4:]
		case len(rest) > 6 && rest[:6] == "shift+":
			shift = true
			rest = rest[6:]
		default:
			break mods
		}
	}

	prefix := ""
	if alt {
		prefix = "alt+"
	}

	if name, ok := specialKeys[rest]; ok {
		switch {
		case shift && rest != "tab":
			return "", fmt.Errorf("shift is only supported with tab: %q", spec)
		case shift && ctrl:
			return "", fmt.Errorf("cannot combine ctrl and shift: %q", spec)
		case shift:
			return prefix + "shift+tab", nil
		case ctrl && name == " ":
			return "", fmt.Errorf("ctrl+space is not supported: %q", spec)
		case ctrl && !ctrlCombos[name]:
			return "", fmt.Errorf("no ctrl variant for %q: %q", rest, spec)
		case ctrl:
			return prefix + "ctrl+" + name, nil
		default:
			return prefix + name, nil
		}
	}

	// Function keys f1 through f20.
	if len(rest) >= 2 && rest[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(rest, "f%d", &n); err == nil && n >= 1 && n <= 20 {
			if ctrl || shift {
				return "", fmt.Errorf("function keys take no ctrl or shift: %q", spec)
			}
			return fmt.Sprintf("%sf%d", prefix, n), nil
		}
	}

	if utf8.RuneCountInString(rest) == 1 {
		switch {
		case shift:
			return "", fmt.Errorf("write shifted characters directly instead of shift+%s: %q", rest, spec)
		case ctrl && (rest[0] < 'a' || rest[0] > 'z'):
			return "", fmt.Errorf("ctrl combines only with letters: %q", spec)
		case ctrl:
			return prefix + "ctrl+" + rest, nil
		default:
			return prefix + rest, nil
		}
	}

	return "", fmt.Errorf("unrecognized key spec: %q", spec)
}

// Binding builds a key.Binding from one or more specs. The first spec names
// the binding in help output.
func Binding(desc string, specs ...string) (key.Binding, error) {
	if len(specs) == 0 {
		return key.Binding{}, fmt.Errorf("at least one key spec is required")
	}

	keys := make([]string, 0, len(specs))
	for _, s := range specs {
		k, err := Parse(s)
		if err != nil {
			return key.Binding{}, err
		}
		keys = append(keys, k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(specs[0], desc),
	), nil
}

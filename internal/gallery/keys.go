package gallery

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/evertile/teaset/internal/errors"
	"github.com/evertile/teaset/internal/keyspec"
)

// appKeyMap holds the gallery's own bindings. Everything else belongs to
// whichever widget has focus.
type appKeyMap struct {
	Quit      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Help      key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next widget"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous widget"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// apply rebinds app keys from config overrides. Override values hold one or
// more comma-separated key specs; the first spec labels the help entry.
func (k appKeyMap) apply(overrides map[string]string) (appKeyMap, error) {
	targets := map[string]*key.Binding{
		"quit":       &k.Quit,
		"next-focus": &k.NextFocus,
		"prev-focus": &k.PrevFocus,
		"help":       &k.Help,
	}

	for name, spec := range overrides {
		target, ok := targets[name]
		if !ok {
			return k, errors.NewValidationError("unknown app key").
				WithField("keys." + name).
				WithValue(spec)
		}

		parts := strings.Split(spec, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		desc := target.Help().Desc
		b, err := keyspec.Binding(desc, parts...)
		if err != nil {
			return k, errors.NewValidationError("bad key spec").
				WithField("keys." + name).
				WithValue(spec).
				WithCause(err)
		}
		*target = b
	}

	return k, nil
}

// ShortHelp implements help.KeyMap.
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus},
		{k.Help, k.Quit},
	}
}

// helpSource merges the app bindings with the focused widget's bindings so
// the help bar always describes what the keyboard currently does.
type helpSource struct {
	app    appKeyMap
	widget help.KeyMap
}

func (h helpSource) ShortHelp() []key.Binding {
	var bindings []key.Binding
	if h.widget != nil {
		bindings = append(bindings, h.widget.ShortHelp()...)
	}
	return append(bindings, h.app.ShortHelp()...)
}

func (h helpSource) FullHelp() [][]key.Binding {
	var rows [][]key.Binding
	if h.widget != nil {
		rows = append(rows, h.widget.FullHelp()...)
	}
	return append(rows, h.app.FullHelp()...)
}

// Package theme provides the color palettes and shared lipgloss styles that
// teaset widgets render with. Built-in palettes are selected by name; custom
// palettes are loaded from YAML files and can be hot-reloaded through the
// Watcher. Unknown names never fail: lookups fall back to the default
// palette so a bad config value cannot break rendering.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme turns a palette into the styles widgets share. Widget packages
// derive their own Styles structs from a Theme so that switching the theme
// restyles every widget consistently.
type Theme struct {
	name    string
	palette *Palette
}

// New returns the theme for the given palette name, falling back to the
// default palette for unknown names (see ByName).
func New(name string) *Theme {
	return &Theme{name: name, palette: ByName(name)}
}

// Default returns the default theme.
func Default() *Theme {
	return &Theme{name: NameDefault, palette: DefaultPalette()}
}

// Name returns the palette name this theme was built from.
func (t *Theme) Name() string {
	return t.name
}

// Palette returns the underlying palette.
func (t *Theme) Palette() *Palette {
	return t.palette
}

// Primary returns a foreground style in the primary accent color.
func (t *Theme) Primary() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Primary)
}

// Secondary returns a foreground style in the secondary accent color.
func (t *Theme) Secondary() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Secondary)
}

// Warning returns a foreground style in the warning color.
func (t *Theme) Warning() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Warning)
}

// Error returns a foreground style in the error color.
func (t *Theme) Error() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Error)
}

// Muted returns a foreground style in the muted color.
func (t *Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Muted)
}

// Text returns a foreground style in the primary text color.
func (t *Theme) Text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Text)
}

// Title returns the bold primary style used for widget titles.
func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.palette.Primary)
}

// Highlight returns the style for the keyboard-active row or tab: text on
// the primary accent, bold.
func (t *Theme) Highlight() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.palette.Text).
		Background(t.palette.Primary)
}

// Box returns the rounded-border container style widgets draw their frames
// with.
func (t *Theme) Box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.palette.Border)
}

// HelpKey returns the style for key names in help lines.
func (t *Theme) HelpKey() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.palette.Secondary)
}

// HelpDesc returns the style for key descriptions in help lines.
func (t *Theme) HelpDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.palette.Muted)
}

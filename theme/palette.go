package theme

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Available built-in palette names.
const (
	NameDefault        = "default"         // Purple/green dark theme
	NameMonokai        = "monokai"         // Classic Monokai editor colors
	NameDracula        = "dracula"         // Dracula theme colors
	NameNord           = "nord"            // Nord theme, cool blue-gray
	NameGitHubDark     = "github-dark"     // GitHub dark mode
	NameSolarizedLight = "solarized-light" // Solarized Light by Ethan Schoonover
)

// Palette defines the color roles every widget style derives from.
// All built-in colors meet WCAG AA contrast (4.5:1) on dark surfaces.
type Palette struct {
	// Primary accent color (active elements, selection highlight)
	Primary lipgloss.Color
	// Secondary accent color (affirmative marks, help keys)
	Secondary lipgloss.Color
	// Warning color (attention-needed states)
	Warning lipgloss.Color
	// Error color (validation failures)
	Error lipgloss.Color
	// Muted color (de-emphasized text, placeholders, descriptions)
	Muted lipgloss.Color
	// Surface color (panel backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (widget borders)
	Border lipgloss.Color
}

// DefaultPalette returns the default purple/green dark palette.
func DefaultPalette() *Palette {
	return &Palette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500
	}
}

// MonokaiPalette returns the classic Monokai editor palette.
func MonokaiPalette() *Palette {
	return &Palette{
		Primary:   lipgloss.Color("#F92672"), // Monokai pink
		Secondary: lipgloss.Color("#A6E22E"), // Monokai green
		Warning:   lipgloss.Color("#E6DB74"), // Monokai yellow
		Error:     lipgloss.Color("#F92672"), // Monokai pink
		Muted:     lipgloss.Color("#75715E"), // Comment gray
		Surface:   lipgloss.Color("#272822"), // Background
		Text:      lipgloss.Color("#F8F8F2"), // Foreground
		Border:    lipgloss.Color("#49483E"), // Selection
	}
}

// DraculaPalette returns the Dracula palette.
func DraculaPalette() *Palette {
	return &Palette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Comment
		Surface:   lipgloss.Color("#282A36"), // Background
		Text:      lipgloss.Color("#F8F8F2"), // Foreground
		Border:    lipgloss.Color("#44475A"), // Selection
	}
}

// NordPalette returns the Nord palette.
func NordPalette() *Palette {
	return &Palette{
		Primary:   lipgloss.Color("#88C0D0"), // Frost cyan
		Secondary: lipgloss.Color("#A3BE8C"), // Aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Aurora red
		Muted:     lipgloss.Color("#4C566A"), // Polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Polar night 1
	}
}

// GitHubDarkPalette returns the GitHub dark mode palette.
func GitHubDarkPalette() *Palette {
	return &Palette{
		Primary:   lipgloss.Color("#58A6FF"), // GitHub blue
		Secondary: lipgloss.Color("#3FB950"), // GitHub green
		Warning:   lipgloss.Color("#D29922"), // GitHub yellow
		Error:     lipgloss.Color("#F85149"), // GitHub red
		Muted:     lipgloss.Color("#8B949E"), // Secondary text
		Surface:   lipgloss.Color("#0D1117"), // Canvas default
		Text:      lipgloss.Color("#E6EDF3"), // Foreground
		Border:    lipgloss.Color("#30363D"), // Border
	}
}

// SolarizedLightPalette returns the Solarized Light palette.
func SolarizedLightPalette() *Palette {
	return &Palette{
		Primary:   lipgloss.Color("#268BD2"), // Solarized blue
		Secondary: lipgloss.Color("#859900"), // Solarized green
		Warning:   lipgloss.Color("#B58900"), // Solarized yellow
		Error:     lipgloss.Color("#DC322F"), // Solarized red
		Muted:     lipgloss.Color("#93A1A1"), // Base1
		Surface:   lipgloss.Color("#FDF6E3"), // Base3 background
		Text:      lipgloss.Color("#657B83"), // Base00 text
		Border:    lipgloss.Color("#EEE8D5"), // Base2
	}
}

// Builtin returns all built-in palette names.
func Builtin() []string {
	return []string{
		NameDefault,
		NameMonokai,
		NameDracula,
		NameNord,
		NameGitHubDark,
		NameSolarizedLight,
	}
}

// Names returns all valid palette names, built-in plus registered custom
// themes.
func Names() []string {
	names := Builtin()
	names = append(names, CustomNames()...)
	return names
}

// Valid reports whether name is a built-in or registered custom palette.
func Valid(name string) bool {
	if slices.Contains(Builtin(), name) {
		return true
	}
	return IsCustom(name)
}

// ByName returns the palette for the given name, consulting registered
// custom themes first and built-ins second. Unknown names fall back to the
// default palette, mirroring the widgets' recover-don't-fail policy for
// configuration values.
func ByName(name string) *Palette {
	if custom := CustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case NameMonokai:
		return MonokaiPalette()
	case NameDracula:
		return DraculaPalette()
	case NameNord:
		return NordPalette()
	case NameGitHubDark:
		return GitHubDarkPalette()
	case NameSolarizedLight:
		return SolarizedLightPalette()
	default:
		return DefaultPalette()
	}
}

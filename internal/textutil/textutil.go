// Package textutil provides width-aware string helpers shared by widget
// views.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens s to at most maxLen runes, appending "..." when it
// truncates. It does not account for ANSI escape codes or wide characters;
// for styled terminal output use TruncateANSI.
func Truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// TruncateANSI shortens s to at most maxWidth visual columns, appending
// "..." when it truncates. Escape sequences and wide characters are
// handled, so it is safe for already-styled strings.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate counts the tail against the final width.
	return ansi.Truncate(s, maxWidth, "...")
}

// PadRight extends s with spaces to exactly width visual columns,
// truncating first when s is already wider. Dropdown rows use this so
// selection highlighting covers the full row.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = TruncateANSI(s, width)
	}
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

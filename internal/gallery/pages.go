package gallery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evertile/teaset/selector"
	"github.com/evertile/teaset/theme"
)

// Demo pages in tab order.
const (
	pageSingle = iota
	pageMulti
	pageCombo
	pageInputs
	pageScroll
	pageTheme
	pageCount
)

func pageLabels() []string {
	return []string{"Single", "Multi", "Combobox", "Inputs", "Scroll", "Theme"}
}

// Content origin inside the tab frame: one row of tab labels, one row of top
// border, then one column of border plus one of padding.
const (
	contentOriginX = 2
	contentOriginY = 2
)

func languageOptions() []selector.Option {
	return []selector.Option{
		{Label: "Go", Value: "go", Selected: true},
		{Label: "Rust", Value: "rust"},
		{Label: "Python", Value: "python"},
		{Label: "TypeScript", Value: "ts"},
		{Label: "Zig", Value: "zig"},
		{Label: "Kotlin", Value: "kotlin"},
	}
}

func featureOptions() []selector.Option {
	return []selector.Option{
		{Label: "Formatting", Value: "fmt", Selected: true},
		{Label: "Linting", Value: "lint"},
		{Label: "Unit tests", Value: "test", Selected: true},
		{Label: "Benchmarks", Value: "bench"},
		{Label: "Fuzzing", Value: "fuzz"},
		{Label: "Coverage", Value: "cover"},
	}
}

func packageOptions() []selector.Option {
	return []selector.Option{
		{Label: "bufio", Description: "buffered I/O"},
		{Label: "bytes", Description: "byte slice helpers"},
		{Label: "context", Description: "cancellation and deadlines"},
		{Label: "encoding/json", Description: "JSON codec"},
		{Label: "errors", Description: "error wrapping"},
		{Label: "fmt"},
		{Label: "io"},
		{Label: "net/http", Description: "HTTP client and server"},
		{Label: "os"},
		{Label: "path/filepath"},
		{Label: "regexp", Description: "regular expressions"},
		{Label: "slices", Description: "generic slice helpers"},
		{Label: "strings"},
		{Label: "sync", Description: "mutexes and wait groups"},
		{Label: "testing"},
		{Label: "time"},
	}
}

// themeOptions lists every known theme with the active one pre-selected.
func themeOptions(active string) []selector.Option {
	names := theme.Names()
	opts := make([]selector.Option, 0, len(names))
	for _, name := range names {
		desc := ""
		if theme.IsCustom(name) {
			desc = "custom"
		}
		opts = append(opts, selector.Option{
			Label:       name,
			Description: desc,
			Selected:    name == active,
		})
	}
	return opts
}

func usageNotes() string {
	return strings.Join([]string{
		"Space or Enter opens the select box.",
		"Arrows move the cursor, Enter commits, Esc closes.",
		"Tab moves focus between the widgets on a page.",
	}, "\n")
}

func scrollContent() string {
	var b strings.Builder
	b.WriteString("Scrollable content\n")
	b.WriteString(strings.Repeat("─", 24) + "\n")
	for i := 1; i <= 48; i++ {
		fmt.Fprintf(&b, "%2d  widget gallery filler line\n", i)
	}
	b.WriteString("\nEnd of content.")
	return b.String()
}

func validateName(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fmt.Errorf("name is required")
	}
	if len(trimmed) < 3 {
		return fmt.Errorf("name needs at least 3 characters")
	}
	return nil
}

func validatePort(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

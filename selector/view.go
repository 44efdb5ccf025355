package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evertile/teaset/internal/textutil"
	"github.com/evertile/teaset/theme"
)

const (
	faceHeight        = 3
	defaultWidth      = 32
	defaultMaxVisible = 8
	minWidth          = 12
)

// Styles bundles the lipgloss styles the widget renders with.
type Styles struct {
	// Face frames the closed widget; FaceFocused replaces it while the
	// widget has focus.
	Face        lipgloss.Style
	FaceFocused lipgloss.Style

	// Placeholder colors the face text while nothing is selected and the
	// "no matches" line of an empty filtered list.
	Placeholder lipgloss.Style

	// Dropdown frames the open option list.
	Dropdown lipgloss.Style

	// Item, ItemActive, and ItemSelected color plain rows, the row under
	// the cursor, and committed rows.
	Item         lipgloss.Style
	ItemActive   lipgloss.Style
	ItemSelected lipgloss.Style

	// Chevron colors the open/closed indicator on the face.
	Chevron lipgloss.Style

	// Counter colors the match count under a filtered list.
	Counter lipgloss.Style
}

// DefaultStyles derives the widget's styles from a theme.
func DefaultStyles(th *theme.Theme) Styles {
	p := th.Palette()
	return Styles{
		Face:         th.Box(),
		FaceFocused:  th.Box().BorderForeground(p.Primary),
		Placeholder:  th.Muted(),
		Dropdown:     th.Box(),
		Item:         th.Text(),
		ItemActive:   th.Highlight(),
		ItemSelected: th.Primary(),
		Chevron:      th.Muted(),
		Counter:      th.Muted(),
	}
}

// View renders the widget. The face always shows; the dropdown renders
// beneath it while open.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewFace())
	if m.open {
		b.WriteByte('\n')
		b.WriteString(m.viewDropdown())
	}
	return b.String()
}

// Height returns the widget's rendered height in lines, which varies with
// dropdown visibility. Hosts combine it with Width when calling SetBounds.
func (m *Model) Height() int {
	if !m.open {
		return faceHeight
	}
	h := faceHeight + 2 + m.windowLen()
	if m.combobox {
		h++
		if m.pattern != "" {
			h++
		}
	}
	if len(m.visible) == 0 {
		h++
	}
	return h
}

func (m *Model) viewFace() string {
	inner := m.width - 2

	label, isValue := m.faceLabel()
	text := label
	if !isValue {
		text = m.Styles.Placeholder.Render(label)
	}

	chevron := "▾"
	if m.open {
		chevron = "▴"
	}

	content := " " + textutil.PadRight(text, inner-4) + " " +
		m.Styles.Chevron.Render(chevron) + " "

	frame := m.Styles.Face
	if m.focused {
		frame = m.Styles.FaceFocused
	}
	return frame.Render(content)
}

// faceLabel returns the face text and whether it reflects an actual
// selection rather than the placeholder.
func (m *Model) faceLabel() (string, bool) {
	if m.mode == Multi {
		labels := m.selectedLabels()
		switch len(labels) {
		case 0:
			return m.placeholder, false
		case 1:
			return labels[0], true
		default:
			return fmt.Sprintf("%d selected", len(labels)), true
		}
	}
	if m.selected >= 0 && m.selected < len(m.records) {
		return m.records[m.selected].label, true
	}
	return m.placeholder, false
}

func (m *Model) viewDropdown() string {
	inner := m.width - 2
	var rows []string

	if m.combobox {
		rows = append(rows, textutil.PadRight(" "+m.input.View(), inner))
	}

	if len(m.visible) == 0 {
		rows = append(rows, m.Styles.Placeholder.Render(textutil.PadRight(" no matches", inner)))
	}

	last := m.offset + m.windowLen()
	for pos := m.offset; pos < last; pos++ {
		rows = append(rows, m.viewRow(pos, inner))
	}

	if m.combobox && m.pattern != "" {
		count := fmt.Sprintf(" %d/%d", len(m.visible), len(m.records))
		rows = append(rows, m.Styles.Counter.Render(textutil.PadRight(count, inner)))
	}

	return m.Styles.Dropdown.Render(strings.Join(rows, "\n"))
}

// viewRow renders the option at visible position pos to exactly width
// cells. Row text stays plain so one style can color the whole line.
func (m *Model) viewRow(pos, width int) string {
	r := m.records[m.visible[pos]]

	var prefix string
	if m.mode == Multi {
		if r.selected {
			prefix = " [x] "
		} else {
			prefix = " [ ] "
		}
	} else {
		if r.selected {
			prefix = " ✓ "
		} else {
			prefix = "   "
		}
	}

	text := prefix + r.label
	if r.description != "" {
		text += "  " + r.description
	}
	text = textutil.PadRight(text, width)

	switch {
	case pos == m.active:
		return m.Styles.ItemActive.Render(text)
	case r.selected:
		return m.Styles.ItemSelected.Render(text)
	default:
		return m.Styles.Item.Render(text)
	}
}

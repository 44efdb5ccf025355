// Package selector implements the select widget family for Bubble Tea
// programs: single-select, multi-select, and the combobox variants of both,
// which add a text input that narrows the option list as the user types.
//
// The widget owns an ingested option list, the committed selection, the
// transient keyboard cursor, and dropdown visibility. Selection changes are
// announced through ChangedMsg commands; cursor movement and dropdown
// open/close never emit. Rendering is a pure function of the current state,
// so the state machine is testable without a terminal.
package selector

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/evertile/teaset/filter"
	"github.com/evertile/teaset/logging"
	"github.com/evertile/teaset/theme"
)

// Mode selects between single- and multi-select behavior.
type Mode int

const (
	// Single keeps at most one option selected; committing replaces the
	// previous selection and closes the dropdown.
	Single Mode = iota

	// Multi keeps an independent selected flag per option, toggled while
	// the dropdown stays open.
	Multi
)

// String returns the mode name.
func (m Mode) String() string {
	if m == Multi {
		return "multi"
	}
	return "single"
}

// Model is a select widget. The zero value is not usable; construct with
// New.
type Model struct {
	// KeyMap holds the bindings consulted by HandleKey.
	KeyMap KeyMap

	// Styles controls rendering. Replace it, or individual fields, to
	// restyle the widget; DefaultStyles derives a set from a theme.
	Styles Styles

	id     string
	mode   Mode
	logger *logging.Logger

	combobox bool
	method   filter.Method
	pattern  string
	input    textinput.Model

	records  []record
	visible  []int // option indexes surviving the current pattern, in order
	selected int   // single-select committed option index, -1 when none

	active int // cursor position within visible, -1 when none
	offset int // first visible position shown in the dropdown window

	open    bool
	focused bool

	width       int
	maxVisible  int
	placeholder string

	capture clickCapture
	area    rect
}

// New constructs a select widget in the given mode. It starts closed,
// unfocused, and empty, with the fuzzy filter method and a silent logger.
func New(mode Mode) *Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"

	m := &Model{
		KeyMap:     DefaultKeyMap(),
		Styles:     DefaultStyles(theme.Default()),
		id:         uuid.NewString(),
		mode:       mode,
		logger:     logging.NopLogger(),
		method:     filter.Default(),
		input:      ti,
		selected:   -1,
		active:     -1,
		maxVisible: defaultMaxVisible,
	}
	m.SetWidth(defaultWidth)
	return m
}

// ID returns the widget's instance identifier, echoed in every ChangedMsg
// so hosts running several selectors can tell them apart.
func (m *Model) ID() string {
	return m.id
}

// Mode reports whether the widget is single- or multi-select.
func (m *Model) Mode() Mode {
	return m.mode
}

// SetLogger routes the widget's diagnostics to l. Passing nil silences
// them.
func (m *Model) SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.NopLogger()
	}
	m.logger = l.WithWidget(m.id)
}

// SetCombobox toggles combobox mode, which places a text input above the
// option list and narrows the list to options matching the typed pattern.
// Turning it off clears any pattern.
func (m *Model) SetCombobox(on bool) {
	if m.combobox == on {
		return
	}
	m.combobox = on
	if !on {
		m.pattern = ""
		m.input.Reset()
		m.input.Blur()
		m.refilter()
	}
}

// Combobox reports whether combobox mode is enabled.
func (m *Model) Combobox() bool {
	return m.combobox
}

// SetFilterMethod selects the match strategy used in combobox mode by
// name. Unknown names fall back to the fuzzy method with a logged warning
// rather than an error, so a bad configuration value cannot break the
// widget.
func (m *Model) SetFilterMethod(name string) {
	method, err := filter.Parse(name)
	if err != nil {
		m.logger.Warn("unknown filter method, falling back",
			"method", name,
			"fallback", string(method))
	}
	m.method = method
	if m.combobox && m.pattern != "" {
		m.refilter()
		m.resetActiveToFirst()
		m.offset = 0
		m.adjustScroll()
	}
}

// FilterMethod returns the effective match strategy.
func (m *Model) FilterMethod() filter.Method {
	return m.method
}

// Focus marks the widget as focused so it receives key events.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus. A dropdown left open is closed, which also releases
// the outside-click capture, so no listener outlives the widget's presence
// on screen.
func (m *Model) Blur() {
	m.focused = false
	if m.open {
		m.closeDropdown()
	}
}

// Focused reports whether the widget currently receives key events.
func (m *Model) Focused() bool {
	return m.focused
}

// IsOpen reports whether the dropdown is visible.
func (m *Model) IsOpen() bool {
	return m.open
}

// Open shows the dropdown. The cursor starts on the committed selection in
// single-select mode and unset in multi-select mode. The returned command
// drives the combobox input's cursor and is nil otherwise.
func (m *Model) Open() tea.Cmd {
	return m.openDropdown()
}

// Close hides the dropdown without committing, discarding the cursor.
func (m *Model) Close() {
	m.closeDropdown()
}

// SelectedIndex returns the committed single-select option index, -1 when
// nothing is selected.
func (m *Model) SelectedIndex() int {
	return m.selected
}

// Value returns the committed single-select value, empty when nothing is
// selected.
func (m *Model) Value() string {
	if m.selected >= 0 && m.selected < len(m.records) {
		return m.records[m.selected].value
	}
	return ""
}

// SelectedIndexes returns the indexes of all selected options in ascending
// order, recomputed from the option list on every call.
func (m *Model) SelectedIndexes() []int {
	return m.scanSelected()
}

// Values returns the values of all selected options in ascending index
// order.
func (m *Model) Values() []string {
	var values []string
	for _, r := range m.records {
		if r.selected {
			values = append(values, r.value)
		}
	}
	return values
}

// Pattern returns the current combobox filter pattern.
func (m *Model) Pattern() string {
	return m.pattern
}

// SetPattern sets the combobox filter pattern directly, as if the user had
// typed it: the visible list narrows and the cursor moves to the first
// match. Outside combobox mode the pattern is ignored.
func (m *Model) SetPattern(pattern string) {
	if !m.combobox {
		return
	}
	if m.input.Value() != pattern {
		m.input.SetValue(pattern)
	}
	m.applyPattern(pattern)
}

// SetPlaceholder sets the face text shown while nothing is selected.
func (m *Model) SetPlaceholder(s string) {
	m.placeholder = s
}

// SetWidth sets the widget's outer width in cells, including the border.
func (m *Model) SetWidth(w int) {
	if w < minWidth {
		w = minWidth
	}
	m.width = w
	m.input.Width = w - 5
}

// Width returns the widget's outer width in cells.
func (m *Model) Width() int {
	return m.width
}

// SetMaxVisible caps how many option rows the dropdown shows at once; the
// window scrolls to follow the cursor beyond that.
func (m *Model) SetMaxVisible(n int) {
	if n < 1 {
		n = 1
	}
	m.maxVisible = n
	m.adjustScroll()
}

// SetBounds records the widget's on-screen rectangle so mouse events can
// be hit-tested. Hosts call it after layout, with the full open height
// while the dropdown is showing (see Height). Without bounds every press
// counts as outside.
func (m *Model) SetBounds(x, y, width, height int) {
	m.area = rect{x: x, y: y, width: width, height: height}
}

// Contains reports whether the given screen cell lies inside the widget's
// recorded bounds.
func (m *Model) Contains(x, y int) bool {
	return m.area.contains(x, y)
}

// HandleKey processes one key event and reports whether the widget claimed
// it. A claimed event must not be forwarded to other handlers; that is how
// the widget suppresses scrolling or submission side effects in the host.
// The five bound keys are claimed whenever the widget is focused, whether
// or not they fire a transition, with one exception: an open combobox
// leaves Space to the filter input.
func (m *Model) HandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if !m.focused {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.KeyMap.Up):
		if m.open {
			m.moveActive(-1)
		}
		return true, nil

	case key.Matches(msg, m.KeyMap.Down):
		if m.open {
			m.moveActive(1)
		}
		return true, nil

	case key.Matches(msg, m.KeyMap.Toggle):
		if m.combobox && m.open {
			// Space is a pattern character while the filter input is live.
			return false, nil
		}
		if !m.open {
			return true, m.openDropdown()
		}
		if m.mode == Multi {
			return true, m.toggleActive()
		}
		return true, m.commitAndClose()

	case key.Matches(msg, m.KeyMap.Commit):
		if !m.open {
			return true, m.openDropdown()
		}
		if m.mode == Multi {
			if m.combobox && m.active >= 0 {
				// Enter stands in for Space in a multi combobox.
				return true, m.toggleActive()
			}
			m.closeDropdown()
			return true, nil
		}
		return true, m.commitAndClose()

	case key.Matches(msg, m.KeyMap.Close):
		if m.open {
			m.closeDropdown()
		}
		return true, nil
	}

	return false, nil
}

// Update is the Bubble Tea message loop for the widget. Key events go
// through HandleKey first; in combobox mode unclaimed keys feed the filter
// input, and typing into a closed combobox opens it. Mouse presses are
// hit-tested against the SetBounds geometry.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKey(msg); handled {
			return cmd
		}
		if !m.combobox || !m.focused {
			return nil
		}
		if !m.open {
			if msg.Type != tea.KeyRunes {
				return nil
			}
			openCmd := m.openDropdown()
			var inputCmd tea.Cmd
			m.input, inputCmd = m.input.Update(msg)
			m.applyPattern(m.input.Value())
			return tea.Batch(openCmd, inputCmd)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.applyPattern(m.input.Value())
		return cmd

	case tea.MouseMsg:
		_, cmd := m.HandleMouse(msg)
		return cmd

	default:
		if m.combobox && m.open {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return cmd
		}
	}
	return nil
}

// HandleMouse processes one mouse event against the recorded bounds.
// Clicking the face opens the dropdown, clicking an option row commits
// (single) or toggles (multi), and a press outside the widget while open
// closes it without committing. Outside presses are reported as unhandled
// so the host can still route them to whatever was actually clicked.
func (m *Model) HandleMouse(msg tea.MouseMsg) (handled bool, cmd tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false, nil
	}
	inside := m.area.contains(msg.X, msg.Y)

	if !m.open {
		if !inside {
			return false, nil
		}
		m.Focus()
		return true, m.openDropdown()
	}

	if !inside {
		m.closeDropdown()
		return false, nil
	}
	if pos := m.positionAt(msg.X, msg.Y); pos >= 0 {
		m.active = pos
		if m.mode == Multi {
			return true, m.toggleActive()
		}
		return true, m.commitAndClose()
	}
	return true, nil
}

// openDropdown shows the dropdown and attaches the outside-click capture.
func (m *Model) openDropdown() tea.Cmd {
	if m.open {
		return nil
	}
	m.open = true
	m.capture.attach()

	var cmd tea.Cmd
	if m.combobox {
		m.pattern = ""
		m.input.Reset()
		m.refilter()
		cmd = m.input.Focus()
	}
	m.resetActive()
	m.offset = 0
	m.adjustScroll()
	m.logger.Debug("dropdown opened")
	return cmd
}

// closeDropdown hides the dropdown, discards the cursor, and detaches the
// outside-click capture.
func (m *Model) closeDropdown() {
	if !m.open {
		return
	}
	m.open = false
	m.capture.detach()
	m.active = -1
	m.offset = 0
	if m.combobox {
		m.input.Blur()
	}
	m.logger.Debug("dropdown closed")
}

// toggleActive flips the selected flag of the option under the cursor and
// recomputes the selected set by scanning the full option list. The
// dropdown stays open so further toggles can follow.
func (m *Model) toggleActive() tea.Cmd {
	if m.active < 0 || m.active >= len(m.visible) {
		return nil
	}
	idx := m.visible[m.active]
	m.records[idx].selected = !m.records[idx].selected
	m.logger.Debug("option toggled", "index", idx, "selected", m.records[idx].selected)
	return m.changedCmd()
}

// commitAndClose commits the option under the cursor when it differs from
// the current selection, then closes. Closing without a cursor, or with
// the cursor on the already-selected option, emits nothing.
func (m *Model) commitAndClose() tea.Cmd {
	var cmd tea.Cmd
	if m.active >= 0 && m.active < len(m.visible) {
		if idx := m.visible[m.active]; idx != m.selected {
			m.setSingle(idx)
			m.logger.Debug("selection committed", "index", idx, "value", m.records[idx].value)
			cmd = m.changedCmd()
		}
	}
	m.closeDropdown()
	return cmd
}

// moveActive moves the cursor by delta positions, clamped to the visible
// range with no wraparound.
func (m *Model) moveActive(delta int) {
	if len(m.visible) == 0 {
		m.active = -1
		return
	}
	next := m.active + delta
	if next < 0 {
		next = 0
	}
	if max := len(m.visible) - 1; next > max {
		next = max
	}
	m.active = next
	m.adjustScroll()
}

// resetActive places the cursor where an opening dropdown expects it: on
// the committed selection for single-select, unset for multi-select. A
// selection hidden by the current pattern leaves the cursor unset.
func (m *Model) resetActive() {
	m.active = -1
	if m.mode != Single || m.selected < 0 {
		return
	}
	for pos, idx := range m.visible {
		if idx == m.selected {
			m.active = pos
			return
		}
	}
}

// resetActiveToFirst anchors the cursor to the first visible option, or
// unsets it when nothing matches.
func (m *Model) resetActiveToFirst() {
	if len(m.visible) > 0 {
		m.active = 0
	} else {
		m.active = -1
	}
}

// adjustScroll keeps the cursor inside the rendered window.
func (m *Model) adjustScroll() {
	if m.maxVisible <= 0 {
		return
	}
	if m.active < 0 {
		m.offset = 0
		return
	}
	if m.active < m.offset {
		m.offset = m.active
	} else if m.active >= m.offset+m.maxVisible {
		m.offset = m.active - m.maxVisible + 1
	}
}

// refilter recomputes the visible positions. Outside combobox mode the
// full option list is always shown.
func (m *Model) refilter() {
	if !m.combobox || m.pattern == "" {
		m.visible = make([]int, len(m.records))
		for i := range m.records {
			m.visible[i] = i
		}
		return
	}
	labels := make([]string, len(m.records))
	for i, r := range m.records {
		labels[i] = r.label
	}
	m.visible = filter.Positions(m.method, labels, m.pattern)
}

// applyPattern records a new pattern coming from the filter input and
// re-anchors the cursor to the first match.
func (m *Model) applyPattern(pattern string) {
	if pattern == m.pattern {
		return
	}
	m.pattern = pattern
	m.refilter()
	m.resetActiveToFirst()
	m.offset = 0
	m.adjustScroll()
}

// windowLen returns how many option rows the dropdown currently shows.
func (m *Model) windowLen() int {
	n := len(m.visible) - m.offset
	if n > m.maxVisible {
		n = m.maxVisible
	}
	if n < 0 {
		n = 0
	}
	return n
}

// positionAt maps a screen cell to the visible position rendered there, or
// -1 when the cell is not on an option row. The arithmetic mirrors View:
// three face lines, the dropdown's top border, and in combobox mode one
// input line before the first option row.
func (m *Model) positionAt(x, y int) int {
	if !m.open || !m.area.contains(x, y) {
		return -1
	}
	first := m.area.y + faceHeight + 1
	if m.combobox {
		first++
	}
	row := y - first
	if row < 0 || row >= m.windowLen() {
		return -1
	}
	return m.offset + row
}

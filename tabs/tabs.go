// Package tabs implements a tab panel widget: an ordered row of labels with
// one active tab and a framed content area beneath it. The widget owns only
// the label list and the active index; the host supplies the active page's
// content each frame. Activation changes are announced through ActivatedMsg
// commands, emitted only when the active index actually moves.
package tabs

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/evertile/teaset/theme"
)

// ActivatedMsg announces that a different tab became active.
type ActivatedMsg struct {
	// ID identifies the emitting widget instance.
	ID string

	// Index and Label describe the newly active tab.
	Index int
	Label string
}

// KeyMap holds the key bindings the tab panel answers to.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Jump key.Binding
}

// DefaultKeyMap returns the standard bindings: left/right move between
// tabs, number keys jump directly.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←", "previous tab"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to tab"),
		),
	}
}

// ShortHelp returns the bindings shown in the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump}
}

// FullHelp returns the bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Jump}}
}

// Styles bundles the lipgloss styles the tab panel renders with.
type Styles struct {
	// Active and Inactive color the tab labels.
	Active   lipgloss.Style
	Inactive lipgloss.Style

	// Frame surrounds the content area.
	Frame lipgloss.Style
}

// DefaultStyles derives the tab panel's styles from a theme.
func DefaultStyles(th *theme.Theme) Styles {
	return Styles{
		Active:   th.Highlight().Padding(0, 2),
		Inactive: th.Muted().Padding(0, 2),
		Frame:    th.Box().Padding(0, 1),
	}
}

// Model is a tab panel. The zero value is not usable; construct with New.
type Model struct {
	// KeyMap holds the bindings consulted by HandleKey.
	KeyMap KeyMap

	// Styles controls rendering.
	Styles Styles

	id      string
	labels  []string
	active  int
	content string
	focused bool
	width   int
}

// New constructs a tab panel over the given labels. The first tab starts
// active; with no labels the active index is -1 until labels arrive.
func New(labels ...string) *Model {
	m := &Model{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(theme.Default()),
		id:     uuid.NewString(),
		active: -1,
	}
	m.SetLabels(labels)
	return m
}

// ID returns the widget's instance identifier, echoed in every
// ActivatedMsg.
func (m *Model) ID() string {
	return m.id
}

// SetLabels replaces the tab labels. The active index is kept when it still
// lands on a tab and clamped to the last tab otherwise; an empty label list
// leaves it at -1.
func (m *Model) SetLabels(labels []string) {
	m.labels = make([]string, len(labels))
	copy(m.labels, labels)

	switch {
	case len(m.labels) == 0:
		m.active = -1
	case m.active < 0:
		m.active = 0
	case m.active >= len(m.labels):
		m.active = len(m.labels) - 1
	}
}

// Labels returns a copy of the tab labels.
func (m *Model) Labels() []string {
	labels := make([]string, len(m.labels))
	copy(labels, m.labels)
	return labels
}

// Len returns the number of tabs.
func (m *Model) Len() int {
	return len(m.labels)
}

// Active returns the active tab index, -1 when there are no tabs.
func (m *Model) Active() int {
	return m.active
}

// ActiveLabel returns the active tab's label, empty when there are no tabs.
func (m *Model) ActiveLabel() string {
	if m.active < 0 || m.active >= len(m.labels) {
		return ""
	}
	return m.labels[m.active]
}

// SetContent sets the body text rendered inside the framed area beneath
// the tab bar. The host supplies the active page's content each frame.
func (m *Model) SetContent(s string) {
	m.content = s
}

// SetWidth sets the outer width of the content frame in cells. Zero leaves
// the frame at its natural width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// Focus marks the panel as focused so it receives key events.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the panel currently receives key events.
func (m *Model) Focused() bool {
	return m.focused
}

// Select activates the tab at index i. Out-of-range indexes are ignored.
// The returned command carries an ActivatedMsg when the active tab actually
// changed and is nil otherwise.
func (m *Model) Select(i int) tea.Cmd {
	if i < 0 || i >= len(m.labels) || i == m.active {
		return nil
	}
	m.active = i
	return m.activatedCmd()
}

// Next activates the following tab, stopping at the last one.
func (m *Model) Next() tea.Cmd {
	return m.Select(m.active + 1)
}

// Prev activates the preceding tab, stopping at the first one.
func (m *Model) Prev() tea.Cmd {
	return m.Select(m.active - 1)
}

// HandleKey processes one key event and reports whether the panel claimed
// it. Next, Prev, and number jumps are claimed while focused even when they
// land on the edge and nothing changes.
func (m *Model) HandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if !m.focused {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.KeyMap.Next):
		return true, m.Next()
	case key.Matches(msg, m.KeyMap.Prev):
		return true, m.Prev()
	case key.Matches(msg, m.KeyMap.Jump):
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			return true, m.Select(int(s[0] - '1'))
		}
	}
	return false, nil
}

// Update is the Bubble Tea message loop for the panel.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		_, cmd := m.HandleKey(keyMsg)
		return cmd
	}
	return nil
}

// View renders the tab bar and, when content was supplied, the framed
// content area beneath it.
func (m *Model) View() string {
	if len(m.labels) == 0 {
		return ""
	}

	rendered := make([]string, len(m.labels))
	for i, label := range m.labels {
		style := m.Styles.Inactive
		if i == m.active {
			style = m.Styles.Active
		}
		rendered[i] = style.Render(label)
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	if m.content == "" {
		return bar
	}
	frame := m.Styles.Frame
	if m.width > 2 {
		frame = frame.Width(m.width - 2)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, frame.Render(m.content))
}

// activatedCmd captures the active tab into an ActivatedMsg command.
func (m *Model) activatedCmd() tea.Cmd {
	msg := ActivatedMsg{ID: m.id, Index: m.active, Label: m.ActiveLabel()}
	return func() tea.Msg { return msg }
}

// Package section implements a collapsible section widget: a chevroned
// title row that shows or hides a body beneath it. Transitions are
// announced through ToggledMsg commands.
package section

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/evertile/teaset/theme"
)

// ToggledMsg announces that a section expanded or collapsed.
type ToggledMsg struct {
	// ID identifies the emitting widget instance.
	ID string

	// Expanded is the state after the transition.
	Expanded bool
}

// KeyMap holds the key bindings the section answers to.
type KeyMap struct {
	Toggle key.Binding
}

// DefaultKeyMap returns the standard binding: Enter or Space toggles.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "expand/collapse"),
		),
	}
}

// ShortHelp returns the bindings shown in the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle}
}

// FullHelp returns the bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle}}
}

// Styles bundles the lipgloss styles the section renders with.
type Styles struct {
	// Title and TitleFocused color the header row.
	Title        lipgloss.Style
	TitleFocused lipgloss.Style

	// Chevron colors the expand/collapse indicator.
	Chevron lipgloss.Style

	// Body colors the expanded content.
	Body lipgloss.Style
}

// DefaultStyles derives the section's styles from a theme.
func DefaultStyles(th *theme.Theme) Styles {
	return Styles{
		Title:        th.Text().Bold(true),
		TitleFocused: th.Title(),
		Chevron:      th.Muted(),
		Body:         th.Text(),
	}
}

// Model is a collapsible section. The zero value is not usable; construct
// with New.
type Model struct {
	// KeyMap holds the bindings consulted by HandleKey.
	KeyMap KeyMap

	// Styles controls rendering.
	Styles Styles

	id       string
	title    string
	body     string
	expanded bool
	focused  bool
}

// New constructs a collapsed section with the given title and body.
func New(title, body string) *Model {
	return &Model{
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(theme.Default()),
		id:     uuid.NewString(),
		title:  title,
		body:   body,
	}
}

// ID returns the widget's instance identifier, echoed in every ToggledMsg.
func (m *Model) ID() string {
	return m.id
}

// SetTitle replaces the header title.
func (m *Model) SetTitle(s string) {
	m.title = s
}

// Title returns the header title.
func (m *Model) Title() string {
	return m.title
}

// SetBody replaces the section body.
func (m *Model) SetBody(s string) {
	m.body = s
}

// Expanded reports whether the body is showing.
func (m *Model) Expanded() bool {
	return m.expanded
}

// Toggle flips the expanded state and returns the ToggledMsg command for
// the transition.
func (m *Model) Toggle() tea.Cmd {
	m.expanded = !m.expanded
	return m.toggledCmd()
}

// SetExpanded sets the expanded state directly. The returned command
// carries a ToggledMsg when the state actually changed and is nil
// otherwise.
func (m *Model) SetExpanded(expanded bool) tea.Cmd {
	if m.expanded == expanded {
		return nil
	}
	m.expanded = expanded
	return m.toggledCmd()
}

// Focus marks the section as focused so it receives key events.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the section currently receives key events.
func (m *Model) Focused() bool {
	return m.focused
}

// HandleKey processes one key event and reports whether the section
// claimed it. Only the toggle binding is claimed, and only while focused.
func (m *Model) HandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if !m.focused {
		return false, nil
	}
	if key.Matches(msg, m.KeyMap.Toggle) {
		return true, m.Toggle()
	}
	return false, nil
}

// Update is the Bubble Tea message loop for the section.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		_, cmd := m.HandleKey(keyMsg)
		return cmd
	}
	return nil
}

// View renders the header row and, while expanded, the body beneath it.
func (m *Model) View() string {
	chevron := "▸"
	if m.expanded {
		chevron = "▾"
	}

	title := m.Styles.Title
	if m.focused {
		title = m.Styles.TitleFocused
	}
	header := m.Styles.Chevron.Render(chevron) + " " + title.Render(m.title)

	if !m.expanded || m.body == "" {
		return header
	}

	lines := strings.Split(m.body, "\n")
	for i, line := range lines {
		lines[i] = "  " + m.Styles.Body.Render(line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n"))
}

// toggledCmd captures the expanded state into a ToggledMsg command.
func (m *Model) toggledCmd() tea.Cmd {
	msg := ToggledMsg{ID: m.id, Expanded: m.expanded}
	return func() tea.Msg { return msg }
}

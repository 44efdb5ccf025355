// Package textbox implements a labeled single-line input box around
// bubbles/textinput, with an optional validation function whose failures
// are rendered in an error style instead of being raised.
package textbox

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evertile/teaset/theme"
)

// Styles bundles the lipgloss styles the input box renders with.
type Styles struct {
	// Label colors the line above the input frame.
	Label lipgloss.Style

	// Frame surrounds the input; FrameFocused replaces it while focused and
	// FrameError while the current value fails validation.
	Frame        lipgloss.Style
	FrameFocused lipgloss.Style
	FrameError   lipgloss.Style

	// Error colors the validation message under the frame.
	Error lipgloss.Style
}

// DefaultStyles derives the input box's styles from a theme.
func DefaultStyles(th *theme.Theme) Styles {
	p := th.Palette()
	return Styles{
		Label:        th.Text().Bold(true),
		Frame:        th.Box(),
		FrameFocused: th.Box().BorderForeground(p.Primary),
		FrameError:   th.Box().BorderForeground(p.Error),
		Error:        th.Error(),
	}
}

// Model is a labeled input box. The zero value is not usable; construct
// with New.
type Model struct {
	// Styles controls rendering.
	Styles Styles

	// Validate, when set, is run against the value after every edit. A
	// non-nil result is shown under the input in the error style; it never
	// blocks typing.
	Validate func(string) error

	label   string
	input   textinput.Model
	err     error
	focused bool
	width   int
}

// New constructs an input box with the given label.
func New(label string) *Model {
	ti := textinput.New()
	m := &Model{
		Styles: DefaultStyles(theme.Default()),
		label:  label,
		input:  ti,
	}
	m.SetWidth(defaultWidth)
	return m
}

const defaultWidth = 40

// Label returns the text above the input frame.
func (m *Model) Label() string {
	return m.label
}

// SetLabel replaces the text above the input frame.
func (m *Model) SetLabel(s string) {
	m.label = s
}

// SetPlaceholder sets the hint shown while the input is empty.
func (m *Model) SetPlaceholder(s string) {
	m.input.Placeholder = s
}

// Value returns the current input text.
func (m *Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the input text and re-validates it.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.validate()
}

// Err returns the current validation failure, nil while the value is
// acceptable or no validator is set.
func (m *Model) Err() error {
	return m.err
}

// SetWidth sets the outer width of the input frame in cells.
func (m *Model) SetWidth(w int) {
	if w < 8 {
		w = 8
	}
	m.width = w
	m.input.Width = w - 5
}

// Focus gives the input the keyboard. The returned command drives the
// cursor blink.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur takes the keyboard away.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused reports whether the input has the keyboard.
func (m *Model) Focused() bool {
	return m.focused
}

// Update is the Bubble Tea message loop for the input box. Key events are
// consumed only while focused; every edit re-runs validation.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && !m.focused {
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.validate()
	}
	return cmd
}

// View renders the label, the framed input, and any validation message.
func (m *Model) View() string {
	frame := m.Styles.Frame
	switch {
	case m.err != nil:
		frame = m.Styles.FrameError
	case m.focused:
		frame = m.Styles.FrameFocused
	}
	if m.width > 2 {
		frame = frame.Width(m.width - 2)
	}

	parts := []string{
		m.Styles.Label.Render(m.label),
		frame.Render(m.input.View()),
	}
	if m.err != nil {
		parts = append(parts, m.Styles.Error.Render(m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) validate() {
	if m.Validate == nil {
		m.err = nil
		return
	}
	m.err = m.Validate(m.input.Value())
}

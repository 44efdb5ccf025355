// Package scrollpane implements a framed scroll container around
// bubbles/viewport. Content taller than the pane scrolls with the viewport's
// usual keys while the pane is focused; a percentage indicator under the
// frame shows the scroll position.
package scrollpane

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evertile/teaset/theme"
)

// Styles bundles the lipgloss styles the pane renders with.
type Styles struct {
	Frame        lipgloss.Style
	FrameFocused lipgloss.Style
	Indicator    lipgloss.Style
}

// DefaultStyles derives the pane's styles from a theme.
func DefaultStyles(th *theme.Theme) Styles {
	p := th.Palette()
	return Styles{
		Frame:        th.Box(),
		FrameFocused: th.Box().BorderForeground(p.Primary),
		Indicator:    th.Muted(),
	}
}

// Model is a scrollable content pane. The zero value is not usable;
// construct with New.
type Model struct {
	// Styles controls rendering.
	Styles Styles

	vp      viewport.Model
	width   int
	height  int
	focused bool
}

// New constructs a pane with the given outer dimensions in cells.
func New(width, height int) *Model {
	m := &Model{
		Styles: DefaultStyles(theme.Default()),
		vp:     viewport.New(0, 0),
	}
	m.SetSize(width, height)
	return m
}

// SetContent replaces the scrollable text.
func (m *Model) SetContent(s string) {
	m.vp.SetContent(s)
}

// SetSize sets the outer dimensions. The frame and the indicator line are
// carved out of them, so the visible content area is smaller.
func (m *Model) SetSize(width, height int) {
	if width < 4 {
		width = 4
	}
	if height < 4 {
		height = 4
	}
	m.width = width
	m.height = height
	m.vp.Width = width - 2
	m.vp.Height = height - 3
}

// Width returns the outer width.
func (m *Model) Width() int {
	return m.width
}

// Height returns the outer height.
func (m *Model) Height() int {
	return m.height
}

// KeyMap exposes the viewport's scroll bindings for rebinding.
func (m *Model) KeyMap() *viewport.KeyMap {
	return &m.vp.KeyMap
}

// Focus lets the pane consume scroll keys.
func (m *Model) Focus() {
	m.focused = true
}

// Blur stops the pane from consuming keys.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the pane consumes keys.
func (m *Model) Focused() bool {
	return m.focused
}

// AtTop reports whether the pane is scrolled to the very top.
func (m *Model) AtTop() bool {
	return m.vp.AtTop()
}

// AtBottom reports whether the pane is scrolled to the very bottom.
func (m *Model) AtBottom() bool {
	return m.vp.AtBottom()
}

// ScrollPercent returns the scroll position in [0, 1].
func (m *Model) ScrollPercent() float64 {
	return m.vp.ScrollPercent()
}

// GotoTop jumps to the first content line.
func (m *Model) GotoTop() {
	m.vp.GotoTop()
}

// GotoBottom jumps to the last content line.
func (m *Model) GotoBottom() {
	m.vp.GotoBottom()
}

// Update is the Bubble Tea message loop for the pane. Key events are
// consumed only while focused; mouse wheel events scroll regardless.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && !m.focused {
		return nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

// View renders the framed content and the position indicator.
func (m *Model) View() string {
	frame := m.Styles.Frame
	if m.focused {
		frame = m.Styles.FrameFocused
	}

	body := frame.Render(m.vp.View())
	indicator := m.Styles.Indicator.
		Width(m.width).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%3.0f%% ", m.vp.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, body, indicator)
}

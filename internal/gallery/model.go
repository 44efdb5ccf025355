package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evertile/teaset/logging"
	"github.com/evertile/teaset/scrollpane"
	"github.com/evertile/teaset/section"
	"github.com/evertile/teaset/selector"
	"github.com/evertile/teaset/tabs"
	"github.com/evertile/teaset/textbox"
	"github.com/evertile/teaset/theme"
)

// Config carries the demo app's settings, resolved by the command layer from
// flags, config file, and environment.
type Config struct {
	Theme     string
	Filter    string
	Mouse     bool
	ThemesDir string
	Keys      map[string]string
}

// Model is the gallery's top-level Bubble Tea model. It owns one instance of
// every widget and routes input to whichever has focus on the active page.
type Model struct {
	cfg    Config
	logger *logging.Logger
	keys   appKeyMap
	th     *theme.Theme

	tabs     *tabs.Model
	single   *selector.Model
	multi    *selector.Model
	combo    *selector.Model
	themeSel *selector.Model
	notes    *section.Model
	name     *textbox.Model
	port     *textbox.Model
	pane     *scrollpane.Model

	help   help.Model
	status string
	width  int
	height int
	ready  bool

	activePage int
	focus      int
}

// NewModel builds the gallery from config. Key overrides that fail to parse
// are reported instead of silently dropped, since a half-rebound app is
// harder to diagnose than a refused start.
func NewModel(cfg Config, logger *logging.Logger) (Model, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	keys, err := defaultAppKeyMap().apply(cfg.Keys)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:    cfg,
		logger: logger.WithComponent("gallery"),
		keys:   keys,
		help:   help.New(),
	}

	m.tabs = tabs.New(pageLabels()...)
	m.tabs.Focus()

	m.single = selector.New(selector.Single)
	m.single.SetLogger(logger)
	m.single.SetPlaceholder("choose a language")
	m.single.SetOptions(languageOptions())

	m.multi = selector.New(selector.Multi)
	m.multi.SetLogger(logger)
	m.multi.SetPlaceholder("enable features")
	m.multi.SetOptions(featureOptions())

	m.combo = selector.New(selector.Single)
	m.combo.SetLogger(logger)
	m.combo.SetCombobox(true)
	m.combo.SetPlaceholder("find a package")
	m.combo.SetWidth(40)
	m.combo.SetMaxVisible(6)
	m.combo.SetOptions(packageOptions())
	if cfg.Filter != "" {
		m.combo.SetFilterMethod(cfg.Filter)
	}

	m.themeSel = selector.New(selector.Single)
	m.themeSel.SetLogger(logger)
	m.themeSel.SetPlaceholder("choose a theme")

	m.notes = section.New("Usage", usageNotes())

	m.name = textbox.New("Name")
	m.name.SetPlaceholder("at least 3 characters")
	m.name.Validate = validateName

	m.port = textbox.New("Port")
	m.port.SetPlaceholder("1-65535")
	m.port.Validate = validatePort

	m.pane = scrollpane.New(46, 12)
	m.pane.SetContent(scrollContent())

	if cfg.Theme != "" && !theme.Valid(cfg.Theme) {
		m.logger.Warn("unknown theme, falling back",
			"theme", cfg.Theme, "fallback", theme.NameDefault)
	}
	m.applyTheme(cfg.Theme)

	m.single.Focus()

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case selector.ChangedMsg:
		return m.handleChanged(msg)

	case tabs.ActivatedMsg:
		m.status = fmt.Sprintf("%s page", msg.Label)
		return m, nil

	case section.ToggledMsg:
		if msg.Expanded {
			m.status = "notes expanded"
		} else {
			m.status = "notes collapsed"
		}
		return m, nil

	case themeReloadMsg:
		return m.handleThemeReload(msg.event)
	}

	// Everything else (cursor blink and friends) goes to the components
	// holding a live text input.
	return m, m.updateTextWidgets(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.cycleFocus(-1)
	}

	// The focused widget gets first claim on everything else.
	if handled, cmd := m.dispatchKey(msg); handled {
		return m, cmd
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// The tab bar takes arrows and number jumps nothing else wanted.
	if handled, cmd := m.tabs.HandleKey(msg); handled {
		return m, tea.Batch(cmd, m.syncFocus())
	}

	return m, nil
}

// dispatchKey routes a key to the focused widget of the active page and
// reports whether it was consumed.
func (m *Model) dispatchKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch m.activePage {
	case pageSingle:
		if m.focus == 1 {
			return m.notes.HandleKey(msg)
		}
		return dispatchSelector(m.single, msg)

	case pageMulti:
		return dispatchSelector(m.multi, msg)

	case pageCombo:
		return dispatchSelector(m.combo, msg)

	case pageInputs:
		tb := m.name
		if m.focus == 1 {
			tb = m.port
		}
		if !tb.Focused() {
			return false, nil
		}
		return true, tb.Update(msg)

	case pageScroll:
		if !scrollKey(m.pane, msg) {
			return false, nil
		}
		return true, m.pane.Update(msg)

	case pageTheme:
		return dispatchSelector(m.themeSel, msg)
	}
	return false, nil
}

// dispatchSelector extends the selector's own key claim: an open dropdown
// owns the whole keyboard (runes feed the combobox filter), and runes typed
// at a closed, focused combobox open it.
func dispatchSelector(s *selector.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if handled, cmd := s.HandleKey(msg); handled {
		return true, cmd
	}
	if s.IsOpen() {
		return true, s.Update(msg)
	}
	if s.Focused() && s.Combobox() && msg.Type == tea.KeyRunes {
		return true, s.Update(msg)
	}
	return false, nil
}

// scrollKey reports whether the pane's viewport binds this key.
func scrollKey(p *scrollpane.Model, msg tea.KeyMsg) bool {
	km := p.KeyMap()
	return key.Matches(msg, km.Up, km.Down, km.PageUp, km.PageDown, km.HalfPageUp, km.HalfPageDown)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.layoutBounds()

	var cmds []tea.Cmd
	for _, s := range m.pageSelectors() {
		handled, cmd := s.HandleMouse(msg)
		cmds = append(cmds, cmd)
		if handled {
			if m.focus != 0 {
				m.blurAt(m.activePage, m.focus)
				m.focus = 0
			}
			break
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleChanged(msg selector.ChangedMsg) (tea.Model, tea.Cmd) {
	switch msg.ID {
	case m.themeSel.ID():
		if msg.Value != "" {
			m.applyTheme(msg.Value)
			m.status = fmt.Sprintf("theme: %s", msg.Value)
			m.logger.Info("theme switched", "theme", msg.Value)
		}
	case m.single.ID():
		m.status = fmt.Sprintf("language: %s", msg.Value)
	case m.multi.ID():
		if len(msg.Values) == 0 {
			m.status = "features: none"
		} else {
			m.status = fmt.Sprintf("features: %s", strings.Join(msg.Values, ", "))
		}
	case m.combo.ID():
		m.status = fmt.Sprintf("package: %s", msg.Value)
	}
	return m, nil
}

func (m Model) handleThemeReload(e theme.Event) (tea.Model, tea.Cmd) {
	switch {
	case e.Err != nil:
		m.status = fmt.Sprintf("theme %s failed to load", e.Name)

	case e.Removed:
		if m.th.Name() == e.Name {
			m.applyTheme(theme.NameDefault)
			m.status = fmt.Sprintf("theme %s removed, reverted to %s", e.Name, theme.NameDefault)
		} else {
			m.themeSel.SetOptions(themeOptions(m.th.Name()))
			m.status = fmt.Sprintf("theme %s removed", e.Name)
		}

	default:
		if m.th.Name() == e.Name {
			m.applyTheme(e.Name)
			m.status = fmt.Sprintf("theme %s reloaded", e.Name)
		} else {
			m.themeSel.SetOptions(themeOptions(m.th.Name()))
			m.status = fmt.Sprintf("theme %s loaded", e.Name)
		}
	}
	return m, nil
}

// applyTheme switches every widget's styles to the named theme. Unknown
// names are normalized to the default theme first.
func (m *Model) applyTheme(name string) {
	if !theme.Valid(name) {
		name = theme.NameDefault
	}
	th := theme.New(name)
	m.th = th

	m.tabs.Styles = tabs.DefaultStyles(th)
	m.notes.Styles = section.DefaultStyles(th)
	for _, s := range []*selector.Model{m.single, m.multi, m.combo, m.themeSel} {
		s.Styles = selector.DefaultStyles(th)
	}
	m.name.Styles = textbox.DefaultStyles(th)
	m.port.Styles = textbox.DefaultStyles(th)
	m.pane.Styles = scrollpane.DefaultStyles(th)

	m.help.Styles.ShortKey = th.HelpKey()
	m.help.Styles.ShortDesc = th.HelpDesc()
	m.help.Styles.ShortSeparator = th.Muted()
	m.help.Styles.FullKey = th.HelpKey()
	m.help.Styles.FullDesc = th.HelpDesc()
	m.help.Styles.FullSeparator = th.Muted()

	m.themeSel.SetOptions(themeOptions(name))
}

// updateTextWidgets forwards component messages to every widget wrapping a
// text input, so cursor blink keeps working wherever focus sits.
func (m *Model) updateTextWidgets(msg tea.Msg) tea.Cmd {
	cmds := []tea.Cmd{
		m.name.Update(msg),
		m.port.Update(msg),
	}
	for _, s := range []*selector.Model{m.single, m.multi, m.combo, m.themeSel} {
		cmds = append(cmds, s.Update(msg))
	}
	return tea.Batch(cmds...)
}

// ringLen returns how many widgets take focus on a page.
func ringLen(page int) int {
	switch page {
	case pageSingle, pageInputs:
		return 2
	default:
		return 1
	}
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	n := ringLen(m.activePage)
	m.blurAt(m.activePage, m.focus)
	m.focus = ((m.focus+delta)%n + n) % n
	return m.focusAt(m.activePage, m.focus)
}

// syncFocus realigns focus bookkeeping after the tab bar switched pages.
func (m *Model) syncFocus() tea.Cmd {
	if m.tabs.Active() == m.activePage {
		return nil
	}
	m.blurAt(m.activePage, m.focus)
	m.activePage = m.tabs.Active()
	m.focus = 0
	return m.focusAt(m.activePage, m.focus)
}

func (m *Model) focusAt(page, idx int) tea.Cmd {
	switch page {
	case pageSingle:
		if idx == 1 {
			m.notes.Focus()
			return nil
		}
		m.single.Focus()
	case pageMulti:
		m.multi.Focus()
	case pageCombo:
		m.combo.Focus()
	case pageInputs:
		if idx == 1 {
			return m.port.Focus()
		}
		return m.name.Focus()
	case pageScroll:
		m.pane.Focus()
	case pageTheme:
		m.themeSel.Focus()
	}
	return nil
}

func (m *Model) blurAt(page, idx int) {
	switch page {
	case pageSingle:
		if idx == 1 {
			m.notes.Blur()
			return
		}
		m.single.Blur()
	case pageMulti:
		m.multi.Blur()
	case pageCombo:
		m.combo.Blur()
	case pageInputs:
		if idx == 1 {
			m.port.Blur()
			return
		}
		m.name.Blur()
	case pageScroll:
		m.pane.Blur()
	case pageTheme:
		m.themeSel.Blur()
	}
}

// pageSelectors returns the selectors that take mouse input on the active
// page.
func (m *Model) pageSelectors() []*selector.Model {
	switch m.activePage {
	case pageSingle:
		return []*selector.Model{m.single}
	case pageMulti:
		return []*selector.Model{m.multi}
	case pageCombo:
		return []*selector.Model{m.combo}
	case pageTheme:
		return []*selector.Model{m.themeSel}
	}
	return nil
}

// layoutBounds republishes each selector's screen rectangle. Every page
// renders its selector at the content origin, so the rectangles differ only
// in size.
func (m *Model) layoutBounds() {
	for _, s := range []*selector.Model{m.single, m.multi, m.combo, m.themeSel} {
		s.SetBounds(contentOriginX, contentOriginY, s.Width(), s.Height())
	}
}

func (m *Model) resize() {
	m.tabs.SetWidth(m.width)
	m.help.Width = m.width

	paneWidth := m.width - 6
	if paneWidth > 46 {
		paneWidth = 46
	}
	paneHeight := m.height - 8
	if paneHeight > 14 {
		paneHeight = 14
	}
	m.pane.SetSize(paneWidth, paneHeight)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting gallery..."
	}

	m.tabs.SetContent(m.pageView())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabs.View(),
		m.statusView(),
		m.help.View(m.helpSource()),
	)
}

func (m Model) pageView() string {
	switch m.activePage {
	case pageSingle:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.single.View(), "", m.notes.View())
	case pageMulti:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.multi.View(), "", m.th.Muted().Render("space toggles, enter closes"))
	case pageCombo:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.combo.View(), "", m.th.Muted().Render("type to filter"))
	case pageInputs:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.name.View(), "", m.port.View())
	case pageScroll:
		return m.pane.View()
	case pageTheme:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.themeSel.View(), "", m.swatch())
	}
	return ""
}

// swatch renders the active palette as a row of color blocks.
func (m Model) swatch() string {
	p := m.th.Palette()
	colors := []lipgloss.Color{
		p.Primary, p.Secondary, p.Warning, p.Error, p.Muted, p.Text, p.Border,
	}

	blocks := make([]string, 0, len(colors))
	for _, c := range colors {
		blocks = append(blocks, lipgloss.NewStyle().Background(c).Render("   "))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	return lipgloss.JoinVertical(lipgloss.Left, row, m.th.Muted().Render(m.th.Name()))
}

func (m Model) statusView() string {
	status := m.status
	if status == "" {
		status = "ready"
	}
	return m.th.Muted().Render(" " + status)
}

func (m Model) helpSource() helpSource {
	return helpSource{app: m.keys, widget: m.widgetHelp()}
}

// widgetHelp returns the focused widget's bindings for the help bar, nil
// when the focused widget describes itself elsewhere.
func (m Model) widgetHelp() help.KeyMap {
	switch m.activePage {
	case pageSingle:
		if m.focus == 1 {
			return m.notes.KeyMap
		}
		return m.single.KeyMap
	case pageMulti:
		return m.multi.KeyMap
	case pageCombo:
		return m.combo.KeyMap
	case pageTheme:
		return m.themeSel.KeyMap
	}
	return nil
}

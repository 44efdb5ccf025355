package selector

import tea "github.com/charmbracelet/bubbletea"

// ChangedMsg announces a committed selection change. It is emitted when a
// single-select commit lands on a different option and on every
// multi-select toggle, never on cursor movement or on the dropdown opening
// or closing.
type ChangedMsg struct {
	// ID identifies the emitting widget instance.
	ID string

	// Mode tells hosts which payload shape below is populated.
	Mode Mode

	// SelectedIndex and Value carry a single-select commit. SelectedIndex
	// is -1 in multi-select messages.
	SelectedIndex int
	Value         string

	// SelectedIndexes and Values list every selected option in ascending
	// index order after a multi-select toggle.
	SelectedIndexes []int
	Values          []string
}

// changedCmd captures the current selection into a ChangedMsg command.
func (m *Model) changedCmd() tea.Cmd {
	msg := ChangedMsg{ID: m.id, Mode: m.mode, SelectedIndex: -1}
	if m.mode == Single {
		msg.SelectedIndex = m.selected
		if m.selected >= 0 && m.selected < len(m.records) {
			msg.Value = m.records[m.selected].value
		}
	} else {
		msg.SelectedIndexes = m.scanSelected()
		msg.Values = m.Values()
	}
	return func() tea.Msg { return msg }
}

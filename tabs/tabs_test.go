package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func collect(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func newTestTabs(t *testing.T) *Model {
	t.Helper()
	m := New("One", "Two", "Three")
	m.Focus()
	return m
}

func TestNew(t *testing.T) {
	t.Run("first tab starts active", func(t *testing.T) {
		m := New("a", "b")
		if m.Active() != 0 {
			t.Errorf("expected active 0, got %d", m.Active())
		}
		if m.ActiveLabel() != "a" {
			t.Errorf("expected label a, got %q", m.ActiveLabel())
		}
	})

	t.Run("no labels means no active tab", func(t *testing.T) {
		m := New()
		if m.Active() != -1 {
			t.Errorf("expected active -1, got %d", m.Active())
		}
		if m.ActiveLabel() != "" {
			t.Errorf("expected empty label, got %q", m.ActiveLabel())
		}
	})
}

func TestModel_Select(t *testing.T) {
	t.Run("emits only on an actual change", func(t *testing.T) {
		m := newTestTabs(t)

		msg, ok := collect(m.Select(2)).(ActivatedMsg)
		if !ok {
			t.Fatal("expected an ActivatedMsg")
		}
		if msg.Index != 2 || msg.Label != "Three" {
			t.Errorf("expected index 2 label Three, got %d %q", msg.Index, msg.Label)
		}
		if msg.ID != m.ID() {
			t.Errorf("expected widget id %q, got %q", m.ID(), msg.ID)
		}

		if cmd := m.Select(2); cmd != nil {
			t.Error("expected no message when reselecting the active tab")
		}
	})

	t.Run("out-of-range indexes are ignored", func(t *testing.T) {
		m := newTestTabs(t)

		if cmd := m.Select(7); cmd != nil {
			t.Error("expected no message for an out-of-range index")
		}
		if cmd := m.Select(-1); cmd != nil {
			t.Error("expected no message for a negative index")
		}
		if m.Active() != 0 {
			t.Errorf("expected active unchanged at 0, got %d", m.Active())
		}
	})
}

func TestModel_NextPrev(t *testing.T) {
	m := newTestTabs(t)

	m.Next()
	m.Next()
	if m.Active() != 2 {
		t.Fatalf("expected active 2, got %d", m.Active())
	}

	// Clamped at the last tab, no wraparound.
	if cmd := m.Next(); cmd != nil {
		t.Error("expected no message at the last tab")
	}
	if m.Active() != 2 {
		t.Errorf("expected active clamped at 2, got %d", m.Active())
	}

	m.Prev()
	m.Prev()
	if cmd := m.Prev(); cmd != nil {
		t.Error("expected no message at the first tab")
	}
	if m.Active() != 0 {
		t.Errorf("expected active clamped at 0, got %d", m.Active())
	}
}

func TestModel_HandleKey(t *testing.T) {
	t.Run("arrows move between tabs", func(t *testing.T) {
		m := newTestTabs(t)

		handled, cmd := m.HandleKey(keyMsg(tea.KeyRight))
		if !handled {
			t.Error("expected right to be claimed")
		}
		if _, ok := collect(cmd).(ActivatedMsg); !ok {
			t.Error("expected an ActivatedMsg")
		}

		handled, _ = m.HandleKey(keyMsg(tea.KeyLeft))
		if !handled || m.Active() != 0 {
			t.Errorf("expected left claimed and active 0, got handled=%v active=%d", handled, m.Active())
		}
	})

	t.Run("edge presses are claimed without a message", func(t *testing.T) {
		m := newTestTabs(t)

		handled, cmd := m.HandleKey(keyMsg(tea.KeyLeft))
		if !handled {
			t.Error("expected left to be claimed at the first tab")
		}
		if cmd != nil {
			t.Error("expected no message at the edge")
		}
	})

	t.Run("number keys jump directly", func(t *testing.T) {
		m := newTestTabs(t)

		handled, cmd := m.HandleKey(runeMsg("3"))
		if !handled {
			t.Error("expected the jump to be claimed")
		}
		msg, ok := collect(cmd).(ActivatedMsg)
		if !ok {
			t.Fatal("expected an ActivatedMsg")
		}
		if msg.Index != 2 {
			t.Errorf("expected index 2, got %d", msg.Index)
		}
	})

	t.Run("jumps past the last tab are claimed but ignored", func(t *testing.T) {
		m := newTestTabs(t)

		handled, cmd := m.HandleKey(runeMsg("9"))
		if !handled {
			t.Error("expected the jump to be claimed")
		}
		if cmd != nil {
			t.Error("expected no message for a missing tab")
		}
		if m.Active() != 0 {
			t.Errorf("expected active unchanged, got %d", m.Active())
		}
	})

	t.Run("nothing is claimed without focus", func(t *testing.T) {
		m := New("a", "b")

		handled, _ := m.HandleKey(keyMsg(tea.KeyRight))
		if handled {
			t.Error("expected an unfocused panel to ignore keys")
		}
		if m.Active() != 0 {
			t.Errorf("expected active unchanged, got %d", m.Active())
		}
	})

	t.Run("unbound keys pass through", func(t *testing.T) {
		m := newTestTabs(t)

		handled, _ := m.HandleKey(runeMsg("x"))
		if handled {
			t.Error("expected unbound keys to pass through")
		}
	})
}

func TestModel_SetLabels(t *testing.T) {
	t.Run("clamps the active index to the new range", func(t *testing.T) {
		m := newTestTabs(t)
		m.Select(2)

		m.SetLabels([]string{"only", "two"})

		if m.Active() != 1 {
			t.Errorf("expected active clamped to 1, got %d", m.Active())
		}
	})

	t.Run("empty labels clear the active index", func(t *testing.T) {
		m := newTestTabs(t)

		m.SetLabels(nil)

		if m.Active() != -1 {
			t.Errorf("expected active -1, got %d", m.Active())
		}
	})

	t.Run("labels snapshot is decoupled", func(t *testing.T) {
		m := newTestTabs(t)

		labels := m.Labels()
		labels[0] = "mutated"

		if m.ActiveLabel() != "One" {
			t.Errorf("expected the widget labels untouched, got %q", m.ActiveLabel())
		}
	})
}

func TestModel_View(t *testing.T) {
	t.Run("renders every label", func(t *testing.T) {
		m := newTestTabs(t)

		view := m.View()
		for _, label := range m.Labels() {
			if !strings.Contains(view, label) {
				t.Errorf("expected %q in the tab bar", label)
			}
		}
	})

	t.Run("renders content beneath the bar", func(t *testing.T) {
		m := newTestTabs(t)
		m.SetContent("page body")

		view := m.View()
		if !strings.Contains(view, "page body") {
			t.Error("expected the content area")
		}
		if !strings.Contains(view, "─") {
			t.Error("expected a frame around the content")
		}
	})

	t.Run("no tabs renders nothing", func(t *testing.T) {
		m := New()
		if m.View() != "" {
			t.Errorf("expected an empty view, got %q", m.View())
		}
	})
}

package keyspec

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected string
		wantErr  bool
	}{
		{name: "plain rune", spec: "j", expected: "j"},
		{name: "uppercase rune is preserved", spec: "G", expected: "G"},
		{name: "punctuation rune", spec: "/", expected: "/"},
		{name: "special key", spec: "enter", expected: "enter"},
		{name: "alias return", spec: "return", expected: "enter"},
		{name: "alias escape", spec: "escape", expected: "esc"},
		{name: "alias pageup", spec: "pageup", expected: "pgup"},
		{name: "space becomes a literal blank", spec: "space", expected: " "},
		{name: "ctrl letter", spec: "ctrl+r", expected: "ctrl+r"},
		{name: "ctrl arrow", spec: "ctrl+up", expected: "ctrl+up"},
		{name: "shift tab", spec: "shift+tab", expected: "shift+tab"},
		{name: "alt rune", spec: "alt+x", expected: "alt+x"},
		{name: "alt special", spec: "alt+enter", expected: "alt+enter"},
		{name: "alt ctrl letter", spec: "alt+ctrl+a", expected: "alt+ctrl+a"},
		{name: "ctrl alt letter normalizes order", spec: "ctrl+alt+a", expected: "alt+ctrl+a"},
		{name: "function key", spec: "f5", expected: "f5"},
		{name: "alt function key", spec: "alt+f12", expected: "alt+f12"},
		{name: "empty spec", spec: "", wantErr: true},
		{name: "unknown name", spec: "bogus", wantErr: true},
		{name: "dangling modifier", spec: "ctrl+", wantErr: true},
		{name: "shift with rune", spec: "shift+a", wantErr: true},
		{name: "shift with special", spec: "shift+enter", wantErr: true},
		{name: "ctrl with digit", spec: "ctrl+1", wantErr: true},
		{name: "ctrl with enter", spec: "ctrl+enter", wantErr: true},
		{name: "ctrl with space", spec: "ctrl+space", wantErr: true},
		{name: "function key out of range", spec: "f21", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %q", tt.spec, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.spec, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %q, expected %q", tt.spec, got, tt.expected)
			}
		})
	}
}

func TestParse_CanonicalFormsMatchKeyMsgs(t *testing.T) {
	tests := []struct {
		name string
		spec string
		msg  tea.KeyMsg
	}{
		{
			name: "space binding matches a space key",
			spec: "space",
			msg:  tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		},
		{
			name: "ctrl binding matches the ctrl key type",
			spec: "ctrl+r",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlR},
		},
		{
			name: "rune binding matches the rune",
			spec: "j",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}},
		},
		{
			name: "shift tab binding matches the shift tab key type",
			spec: "shift+tab",
			msg:  tea.KeyMsg{Type: tea.KeyShiftTab},
		},
		{
			name: "alt rune binding matches the alt flag",
			spec: "alt+x",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.spec, err)
			}

			b := key.NewBinding(key.WithKeys(canonical))
			if !key.Matches(tt.msg, b) {
				t.Errorf("expected %q binding to match %v", tt.spec, tt.msg)
			}
		})
	}
}

func TestBinding(t *testing.T) {
	t.Run("builds a binding from several specs", func(t *testing.T) {
		b, err := Binding("scroll up", "up", "k")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		up := tea.KeyMsg{Type: tea.KeyUp}
		k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
		if !key.Matches(up, b) || !key.Matches(k, b) {
			t.Error("expected binding to match both specs")
		}
	})

	t.Run("help shows the first spec", func(t *testing.T) {
		b, err := Binding("quit", "ctrl+q", "q")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Help().Key != "ctrl+q" {
			t.Errorf("expected help key %q, got %q", "ctrl+q", b.Help().Key)
		}
		if b.Help().Desc != "quit" {
			t.Errorf("expected help desc %q, got %q", "quit", b.Help().Desc)
		}
	})

	t.Run("rejects an invalid spec", func(t *testing.T) {
		if _, err := Binding("nope", "ctrl+enter"); err == nil {
			t.Error("expected error for invalid spec")
		}
	})

	t.Run("rejects an empty spec list", func(t *testing.T) {
		if _, err := Binding("nothing"); err == nil {
			t.Error("expected error for missing specs")
		}
	})
}

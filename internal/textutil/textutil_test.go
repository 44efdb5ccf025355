package textutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "options",
			maxLen:   10,
			expected: "options",
		},
		{
			name:     "exact length unchanged",
			input:    "label",
			maxLen:   5,
			expected: "label",
		},
		{
			name:     "long string truncated",
			input:    "a very long option label",
			maxLen:   8,
			expected: "a ver...",
		},
		{
			name:     "tiny maxLen returns ellipsis",
			input:    "label",
			maxLen:   3,
			expected: "...",
		},
		{
			name:     "zero maxLen returns ellipsis",
			input:    "label",
			maxLen:   0,
			expected: "...",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			maxLen:   10,
			expected: "",
		},
		{
			name:     "unicode counted by runes",
			input:    "日本語テスト",
			maxLen:   5,
			expected: "日本...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	t.Run("plain string truncated to width", func(t *testing.T) {
		got := TruncateANSI("first option label", 10)
		if w := lipgloss.Width(got); w > 10 {
			t.Errorf("result width %d exceeds 10", w)
		}
		if got != "first o..." {
			t.Errorf("expected %q, got %q", "first o...", got)
		}
	})

	t.Run("styled string stays within width", func(t *testing.T) {
		got := TruncateANSI(accent.Render("first option label"), 10)
		if w := lipgloss.Width(got); w > 10 {
			t.Errorf("result width %d exceeds 10", w)
		}
	})

	t.Run("styled string below width unchanged", func(t *testing.T) {
		in := accent.Render("ok")
		if got := TruncateANSI(in, 10); got != in {
			t.Errorf("short styled string was modified: %q", got)
		}
	})

	t.Run("wide characters counted by visual width", func(t *testing.T) {
		got := TruncateANSI("日本語テスト", 8)
		if w := lipgloss.Width(got); w > 8 {
			t.Errorf("result width %d exceeds 8", w)
		}
	})
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
	}{
		{name: "pads short string", input: "ab", width: 6},
		{name: "exact width unchanged", input: "abcdef", width: 6},
		{name: "truncates wide string", input: "abcdefghij", width: 6},
		{name: "pads empty string", input: "", width: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadRight(tt.input, tt.width)
			if w := lipgloss.Width(got); w != tt.width {
				t.Errorf("PadRight(%q, %d) has width %d", tt.input, tt.width, w)
			}
		})
	}

	t.Run("zero width returns empty", func(t *testing.T) {
		if got := PadRight("abc", 0); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

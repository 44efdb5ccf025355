package theme

import (
	"slices"
	"testing"
)

func TestBuiltinPalettesAreComplete(t *testing.T) {
	for _, name := range Builtin() {
		t.Run(name, func(t *testing.T) {
			p := ByName(name)
			if p == nil {
				t.Fatal("ByName returned nil")
			}

			colors := map[string]string{
				"primary":   string(p.Primary),
				"secondary": string(p.Secondary),
				"warning":   string(p.Warning),
				"error":     string(p.Error),
				"muted":     string(p.Muted),
				"surface":   string(p.Surface),
				"text":      string(p.Text),
				"border":    string(p.Border),
			}
			for role, color := range colors {
				if !hexColorRegex.MatchString(color) {
					t.Errorf("role %s has non-hex color %q", role, color)
				}
			}
		})
	}
}

func TestByNameFallsBackToDefault(t *testing.T) {
	got := ByName("no-such-theme")
	want := DefaultPalette()
	if *got != *want {
		t.Errorf("unknown name should yield the default palette, got %+v", got)
	}
}

func TestByNamePrefersCustomTheme(t *testing.T) {
	ClearCustom()
	t.Cleanup(ClearCustom)

	f := &File{
		Name:    "Ocean",
		Version: "1",
		Colors: Colors{
			Primary:   "#001122",
			Secondary: "#102030",
			Warning:   "#332211",
			Error:     "#EE0000",
			Muted:     "#555555",
			Surface:   "#000000",
			Text:      "#FFFFFF",
			Border:    "#888888",
		},
	}
	Register("ocean", f)

	p := ByName("ocean")
	if string(p.Primary) != "#001122" {
		t.Errorf("expected custom primary #001122, got %s", p.Primary)
	}
}

func TestValid(t *testing.T) {
	ClearCustom()
	t.Cleanup(ClearCustom)

	if !Valid(NameDefault) {
		t.Error("default must be valid")
	}
	if !Valid(NameNord) {
		t.Error("nord must be valid")
	}
	if Valid("no-such-theme") {
		t.Error("unknown name reported valid")
	}

	Register("custom-one", &File{Name: "Custom One", Version: "1"})
	if !Valid("custom-one") {
		t.Error("registered custom theme reported invalid")
	}
}

func TestNamesIncludesBuiltinAndCustom(t *testing.T) {
	ClearCustom()
	t.Cleanup(ClearCustom)

	Register("zebra", &File{Name: "Zebra", Version: "1"})

	names := Names()
	for _, builtin := range Builtin() {
		if !slices.Contains(names, builtin) {
			t.Errorf("Names() missing built-in %q", builtin)
		}
	}
	if !slices.Contains(names, "zebra") {
		t.Error("Names() missing registered custom theme")
	}
}

func TestThemeStyles(t *testing.T) {
	th := Default()

	if th.Name() != NameDefault {
		t.Errorf("Name() = %q, want %q", th.Name(), NameDefault)
	}
	if th.Palette() == nil {
		t.Fatal("Palette() returned nil")
	}

	// Highlight must invert: palette text on primary background.
	hl := th.Highlight()
	if !hl.GetBold() {
		t.Error("Highlight() should be bold")
	}

	// New with an unknown name still yields a usable theme.
	unknown := New("no-such-theme")
	if unknown.Palette() == nil {
		t.Fatal("New with unknown name returned nil palette")
	}
	if *unknown.Palette() != *DefaultPalette() {
		t.Error("New with unknown name should fall back to the default palette")
	}
}

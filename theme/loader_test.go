package theme

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func validColors() Colors {
	return Colors{
		Primary:   "#A78BFA",
		Secondary: "#10B981",
		Warning:   "#F59E0B",
		Error:     "#F87171",
		Muted:     "#9CA3AF",
		Surface:   "#1F2937",
		Text:      "#F9FAFB",
		Border:    "#6B7280",
	}
}

func TestFileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*File)
		wantErr error
	}{
		{
			name:   "valid minimal theme",
			mutate: func(*File) {},
		},
		{
			name:    "missing name",
			mutate:  func(f *File) { f.Name = "" },
			wantErr: errors.New("theme name is required"),
		},
		{
			name:    "missing version",
			mutate:  func(f *File) { f.Version = "" },
			wantErr: errors.New("theme version is required"),
		},
		{
			name:    "unsupported version",
			mutate:  func(f *File) { f.Version = "2" },
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "missing required color",
			mutate:  func(f *File) { f.Colors.Surface = "" },
			wantErr: ErrMissingColor,
		},
		{
			name:    "malformed hex color",
			mutate:  func(f *File) { f.Colors.Primary = "purple" },
			wantErr: ErrInvalidColor,
		},
		{
			name:    "short hex without hash",
			mutate:  func(f *File) { f.Colors.Border = "ABC" },
			wantErr: ErrInvalidColor,
		},
		{
			name:   "three digit hex accepted",
			mutate: func(f *File) { f.Colors.Border = "#ABC" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &File{Name: "Test", Version: "1", Colors: validColors()}
			tt.mutate(f)

			err := f.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			// Sentinel errors are matched with Is; message-only cases by substring.
			switch tt.wantErr {
			case ErrUnsupportedVersion, ErrMissingColor, ErrInvalidColor:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error %v does not wrap %v", err, tt.wantErr)
				}
			default:
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Errorf("error %q does not mention %q", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads a valid theme", func(t *testing.T) {
		f := &File{Name: "Loaded", Version: "1", Colors: validColors()}
		data, err := yaml.Marshal(f)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		path := filepath.Join(dir, "loaded.yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if got.Name != "Loaded" {
			t.Errorf("Name = %q, want %q", got.Name, "Loaded")
		}
		if got.Colors.Primary != "#A78BFA" {
			t.Errorf("Primary = %q, want #A78BFA", got.Colors.Primary)
		}
	})

	t.Run("rejects unparseable yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("expected an error for malformed yaml")
		}
	})

	t.Run("rejects invalid theme content", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("name: X\nversion: \"1\"\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadFile(path); !errors.Is(err, ErrMissingColor) {
			t.Errorf("expected ErrMissingColor, got %v", err)
		}
	})

	t.Run("missing file reports read error", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

func TestToPalette(t *testing.T) {
	f := &File{Name: "Test", Version: "1", Colors: validColors()}
	p := f.ToPalette()

	if string(p.Primary) != "#A78BFA" {
		t.Errorf("Primary = %s, want #A78BFA", p.Primary)
	}
	if string(p.Border) != "#6B7280" {
		t.Errorf("Border = %s, want #6B7280", p.Border)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	prev := SetDirFunc(func() string { return dir })
	t.Cleanup(func() { SetDirFunc(prev) })
	ClearCustom()
	t.Cleanup(ClearCustom)

	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	valid, err := yaml.Marshal(&File{Name: "Sunrise", Version: "1", Colors: validColors()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	write("sunrise.yaml", string(valid))
	write("broken.yaml", "{nope")
	write("default.yaml", string(valid)) // shadows a built-in, must be rejected
	write("notes.txt", "not a theme")

	loaded, errs := Discover()

	if !slices.Contains(loaded, "sunrise") {
		t.Errorf("expected sunrise to load, got %v", loaded)
	}
	if slices.Contains(loaded, "default") {
		t.Error("built-in shadow should not load")
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors (broken + shadow), got %d: %v", len(errs), errs)
	}
	if !IsCustom("sunrise") {
		t.Error("sunrise should be registered after discovery")
	}
}

func TestExport(t *testing.T) {
	ClearCustom()
	t.Cleanup(ClearCustom)

	t.Run("built-in exports round-trip", func(t *testing.T) {
		data, err := Export(NameNord)
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}

		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			t.Fatalf("exported yaml does not parse: %v", err)
		}
		if err := f.Validate(); err != nil {
			t.Errorf("exported theme does not validate: %v", err)
		}
		if f.Colors.Primary != string(NordPalette().Primary) {
			t.Errorf("exported primary %q differs from palette", f.Colors.Primary)
		}
	})

	t.Run("custom theme exports its definition", func(t *testing.T) {
		f := &File{Name: "Mine", Version: "1", Colors: validColors()}
		Register("mine", f)

		data, err := Export("mine")
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}
		var got File
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("exported yaml does not parse: %v", err)
		}
		if got.Name != "Mine" {
			t.Errorf("Name = %q, want Mine", got.Name)
		}
	})
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	prev := SetDirFunc(func() string { return dir })
	t.Cleanup(func() { SetDirFunc(prev) })

	f := &File{Name: "Saved", Version: "1", Colors: validColors()}
	if err := Save("saved", f); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFile(filepath.Join(dir, "saved.yaml"))
	if err != nil {
		t.Fatalf("saved theme does not load: %v", err)
	}
	if loaded.Name != "Saved" {
		t.Errorf("Name = %q, want Saved", loaded.Name)
	}
}

package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// File represents a custom theme definition loaded from YAML.
type File struct {
	// Name is the theme's display name (e.g., "Gruvbox Light")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the palette
	Colors Colors `yaml:"colors"`
}

// Colors contains the color definitions for a theme. All eight roles are
// required and must be hex format (#RRGGBB or #RGB).
type Colors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`
}

// Loader errors. LoadFile wraps these so callers can classify failures with
// errors.Is without string matching.
var (
	ErrInvalidColor       = errors.New("invalid color")
	ErrMissingColor       = errors.New("missing required color")
	ErrUnsupportedVersion = errors.New("unsupported theme version")
)

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadFile loads and validates a theme from a YAML file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &f, nil
}

// Validate checks that the theme file is well-formed.
func (f *File) Validate() error {
	if f.Name == "" {
		return errors.New("theme name is required")
	}

	if f.Version == "" {
		return errors.New("theme version is required")
	}

	if f.Version != "1" {
		return fmt.Errorf("%w: %s (supported: 1)", ErrUnsupportedVersion, f.Version)
	}

	required := map[string]string{
		"primary":   f.Colors.Primary,
		"secondary": f.Colors.Secondary,
		"warning":   f.Colors.Warning,
		"error":     f.Colors.Error,
		"muted":     f.Colors.Muted,
		"surface":   f.Colors.Surface,
		"text":      f.Colors.Text,
		"border":    f.Colors.Border,
	}

	for name, color := range required {
		if color == "" {
			return fmt.Errorf("%w: %s", ErrMissingColor, name)
		}
		if !hexColorRegex.MatchString(color) {
			return fmt.Errorf("%w: %s = %s (expected #RGB or #RRGGBB)", ErrInvalidColor, name, color)
		}
	}

	return nil
}

// ToPalette converts the theme file to a Palette.
func (f *File) ToPalette() *Palette {
	return &Palette{
		Primary:   lipgloss.Color(f.Colors.Primary),
		Secondary: lipgloss.Color(f.Colors.Secondary),
		Warning:   lipgloss.Color(f.Colors.Warning),
		Error:     lipgloss.Color(f.Colors.Error),
		Muted:     lipgloss.Color(f.Colors.Muted),
		Surface:   lipgloss.Color(f.Colors.Surface),
		Text:      lipgloss.Color(f.Colors.Text),
		Border:    lipgloss.Color(f.Colors.Border),
	}
}

// customThemes stores registered custom themes. The watcher registers from
// its own goroutine, so access is mutex-guarded.
var (
	customMu     sync.RWMutex
	customThemes = make(map[string]*File)
)

// Register registers a custom theme under the given name, replacing any
// previous registration.
func Register(name string, f *File) {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[name] = f
}

// Unregister removes a custom theme registration.
func Unregister(name string) {
	customMu.Lock()
	defer customMu.Unlock()
	delete(customThemes, name)
}

// CustomTheme returns a registered custom theme, or nil if not found.
func CustomTheme(name string) *File {
	customMu.RLock()
	defer customMu.RUnlock()
	return customThemes[name]
}

// CustomNames returns the names of all registered custom themes.
func CustomNames() []string {
	customMu.RLock()
	defer customMu.RUnlock()

	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsCustom reports whether name is a registered custom theme.
func IsCustom(name string) bool {
	customMu.RLock()
	defer customMu.RUnlock()
	_, ok := customThemes[name]
	return ok
}

// ClearCustom removes all registered custom themes. Primarily used for
// testing.
func ClearCustom() {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes = make(map[string]*File)
}

// dirFn returns the themes directory. Overridable in tests.
var dirFn = defaultDir

// defaultDir returns the default themes directory path.
func defaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teaset", "themes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".teaset", "themes")
	}
	return filepath.Join(home, ".config", "teaset", "themes")
}

// Dir returns the directory custom themes are discovered from.
func Dir() string {
	return dirFn()
}

// SetDirFunc sets the function used to determine the themes directory and
// returns the previous one. Primarily useful for testing.
func SetDirFunc(fn func() string) func() string {
	prev := dirFn
	dirFn = fn
	return prev
}

// Discover scans the themes directory and registers every valid theme it
// finds. The theme name is the file name without its extension. Invalid
// files are skipped and reported in the returned error slice; a theme file
// may not shadow a built-in palette name.
func Discover() ([]string, []error) {
	dir := Dir()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, []error{fmt.Errorf("creating themes directory: %w", err)}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		f, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		themeName := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")

		if slices.Contains(Builtin(), themeName) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme %q", name, themeName))
			continue
		}

		Register(themeName, f)
		loaded = append(loaded, themeName)
	}

	return loaded, errs
}

// Export serializes a theme to YAML, usable as a starting point for a
// custom theme file. Custom themes export their registered definition;
// built-in names export their palette.
func Export(name string) ([]byte, error) {
	if custom := CustomTheme(name); custom != nil {
		return yaml.Marshal(custom)
	}

	f := paletteToFile(name, ByName(name))
	return yaml.Marshal(f)
}

// Save writes a theme file into the themes directory as <name>.yaml.
func Save(name string, f *File) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling theme: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, name+".yaml"), data, 0o644); err != nil {
		return fmt.Errorf("writing theme file: %w", err)
	}

	return nil
}

// paletteToFile converts a Palette to a File for export.
func paletteToFile(name string, p *Palette) *File {
	return &File{
		Name:        name,
		Description: fmt.Sprintf("Exported from built-in theme %q", name),
		Version:     "1",
		Colors: Colors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Warning:   string(p.Warning),
			Error:     string(p.Error),
			Muted:     string(p.Muted),
			Surface:   string(p.Surface),
			Text:      string(p.Text),
			Border:    string(p.Border),
		},
	}
}

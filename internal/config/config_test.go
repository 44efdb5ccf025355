package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/evertile/teaset/theme"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.TUI.Theme != theme.NameDefault {
		t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, theme.NameDefault)
	}
	if cfg.TUI.Filter != "fuzzy" {
		t.Errorf("TUI.Filter = %q, want %q", cfg.TUI.Filter, "fuzzy")
	}
	if !cfg.TUI.Mouse {
		t.Error("TUI.Mouse should be true by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.File != "" {
		t.Errorf("Logging.File = %q, want empty", cfg.Logging.File)
	}

	if cfg.Paths.ThemesDir != "" {
		t.Errorf("Paths.ThemesDir = %q, want empty", cfg.Paths.ThemesDir)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults load without a config file", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		SetDefaults()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.TUI.Theme != theme.NameDefault {
			t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, theme.NameDefault)
		}
		if !cfg.TUI.Mouse {
			t.Error("TUI.Mouse should default to true")
		}
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		SetDefaults()

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := []byte("tui:\n  theme: nord\n  mouse: false\nkeys:\n  quit: ctrl+x\n")
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatalf("writing config file: %v", err)
		}

		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			t.Fatalf("ReadInConfig() error = %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.TUI.Theme != "nord" {
			t.Errorf("TUI.Theme = %q, want %q", cfg.TUI.Theme, "nord")
		}
		if cfg.TUI.Mouse {
			t.Error("TUI.Mouse should be false from the config file")
		}
		if cfg.TUI.Filter != "fuzzy" {
			t.Errorf("TUI.Filter = %q, want the default %q", cfg.TUI.Filter, "fuzzy")
		}
		if cfg.Keys["quit"] != "ctrl+x" {
			t.Errorf("Keys[quit] = %q, want %q", cfg.Keys["quit"], "ctrl+x")
		}
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		SetDefaults()
		viper.Set("logging.level", "verbose")

		_, err := Load()
		if err == nil {
			t.Fatal("expected a validation error")
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("falls back to defaults on invalid config", func(t *testing.T) {
		viper.Reset()
		defer viper.Reset()
		SetDefaults()
		viper.Set("logging.level", "verbose")

		cfg := Get()
		if cfg.Logging.Level != "info" {
			t.Errorf("Logging.Level = %q, want the default %q", cfg.Logging.Level, "info")
		}
	})
}

func TestConfigDir(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

		want := filepath.Join("/tmp/xdg", "teaset")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to the home config directory", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}
		want := filepath.Join(home, ".config", "teaset")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "teaset", "config.yaml")
	if got := ConfigFile(); got != want {
		t.Errorf("ConfigFile() = %q, want %q", got, want)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evertile/teaset/internal/config"
	"github.com/evertile/teaset/internal/gallery"
	"github.com/evertile/teaset/logging"
	"github.com/evertile/teaset/theme"
)

var (
	galleryTheme    string
	galleryFilter   string
	galleryNoMouse  bool
	galleryLogFile  string
	galleryLogLevel string
)

func init() {
	rootCmd.Flags().StringVar(&galleryTheme, "theme", "", "color theme (see 'teaset themes')")
	rootCmd.Flags().StringVar(&galleryFilter, "filter", "", "combobox filter method (contains, fuzzy, startsWith, startsWithPerTerm)")
	rootCmd.Flags().BoolVar(&galleryNoMouse, "no-mouse", false, "disable mouse capture")
	rootCmd.Flags().StringVar(&galleryLogFile, "log-file", "", "write diagnostics to this file")
	rootCmd.Flags().StringVar(&galleryLogLevel, "log-level", "", "minimum log level (debug, info, warn, error)")
}

func runGallery(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyGalleryFlags(cmd, cfg)

	if cfg.Paths.ThemesDir != "" {
		theme.SetDirFunc(func() string { return cfg.Paths.ThemesDir })
	}

	// The gallery owns the terminal, so diagnostics only go to a file.
	logger := logging.NopLogger()
	if cfg.Logging.File != "" {
		logger, err = logging.NewFile(cfg.Logging.File, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = logger.Close() }()
	}

	app, err := gallery.New(gallery.Config{
		Theme:     cfg.TUI.Theme,
		Filter:    cfg.TUI.Filter,
		Mouse:     cfg.TUI.Mouse,
		ThemesDir: cfg.Paths.ThemesDir,
		Keys:      cfg.Keys,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to build gallery: %w", err)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("gallery error: %w", err)
	}
	return nil
}

// applyGalleryFlags lets explicitly set flags override the config file.
func applyGalleryFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("theme") {
		cfg.TUI.Theme = galleryTheme
	}
	if cmd.Flags().Changed("filter") {
		cfg.TUI.Filter = galleryFilter
	}
	if galleryNoMouse {
		cfg.TUI.Mouse = false
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.File = galleryLogFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = galleryLogLevel
	}
}

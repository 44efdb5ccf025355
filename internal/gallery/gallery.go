// Package gallery implements the teaset demo application: a tabbed tour of
// every widget with live theme switching, mouse support, and hot reload of
// custom theme files.
package gallery

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/evertile/teaset/logging"
	"github.com/evertile/teaset/theme"
)

// themeReloadMsg carries a theme watcher event into the Update loop.
type themeReloadMsg struct {
	event theme.Event
}

// App wraps the Bubble Tea program running the gallery.
type App struct {
	model     Model
	program   *tea.Program
	logger    *logging.Logger
	mouse     bool
	themesDir string
}

// New builds the gallery application. Custom themes are discovered up front
// so they appear in the theme selector from the first frame.
func New(cfg Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	names, errs := theme.Discover()
	for _, err := range errs {
		logger.Warn("skipping custom theme", "error", err)
	}
	if len(names) > 0 {
		logger.Info("custom themes discovered", "count", len(names))
	}

	model, err := NewModel(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		model:     model,
		logger:    logger,
		mouse:     cfg.Mouse,
		themesDir: cfg.ThemesDir,
	}, nil
}

// Run starts the program and blocks until it exits.
func (a *App) Run() error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	a.program = tea.NewProgram(a.model, opts...)

	// Forward SIGINT/SIGTERM as a quit so the terminal is restored.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		a.program.Send(tea.Quit())
	}()

	// Theme hot reload runs for the life of the program. A watcher failure
	// only costs live reload, so it is logged rather than fatal.
	done := make(chan struct{})
	watcher, err := theme.NewWatcher(a.themesDir, a.logger)
	if err != nil {
		a.logger.Warn("theme hot reload disabled", "error", err)
	} else {
		watcher.Start()
		go func() {
			for {
				select {
				case e := <-watcher.Events():
					a.program.Send(themeReloadMsg{event: e})
				case <-done:
					return
				}
			}
		}()
	}

	_, err = a.program.Run()

	signal.Stop(sigCh)
	close(done)
	if watcher != nil {
		_ = watcher.Close()
	}
	return err
}

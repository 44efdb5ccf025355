package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/evertile/teaset/logging"
)

// Event reports a change to a custom theme file. When Err is non-nil the
// file changed but failed to load; when Removed is true the theme's file
// was deleted and its registration dropped.
type Event struct {
	Name    string
	Removed bool
	Err     error
}

// Watcher watches the themes directory and keeps the custom theme registry
// in sync with it, emitting an Event per change so an embedding program can
// re-style live. Editors fire several filesystem events per save, so events
// are debounced before processing.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
	events  chan Event
	logger  *logging.Logger

	stopCh    chan struct{}
	closeOnce sync.Once
}

// NewWatcher creates a watcher over dir, creating the directory if needed.
// An empty dir watches the default themes directory. A nil logger disables
// diagnostics.
func NewWatcher(dir string, logger *logging.Logger) (*Watcher, error) {
	if dir == "" {
		dir = Dir()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating themes directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching themes directory: %w", err)
	}

	return &Watcher{
		watcher: fsw,
		dir:     dir,
		events:  make(chan Event, 16),
		logger:  logger.WithComponent("theme"),
		stopCh:  make(chan struct{}),
	}, nil
}

// Events returns the channel theme change events are delivered on.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops the watcher and releases its filesystem resources.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stopCh)
		err = w.watcher.Close()
	})
	return err
}

// loop processes filesystem events with debouncing.
func (w *Watcher) loop() {
	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	pending := make(map[string]fsnotify.Event)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isThemeFile(event.Name) {
				continue
			}

			pending[event.Name] = event
			debounce.Reset(50 * time.Millisecond)

		case <-debounce.C:
			for _, event := range pending {
				w.handle(event)
			}
			pending = make(map[string]fsnotify.Event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)
		}
	}
}

// handle processes one debounced theme file event.
func (w *Watcher) handle(event fsnotify.Event) {
	name := themeName(event.Name)

	if slices.Contains(Builtin(), name) {
		w.logger.Warn("theme file shadows built-in theme, ignored", "theme", name)
		return
	}

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		Unregister(name)
		w.logger.Info("custom theme removed", "theme", name)
		w.emit(Event{Name: name, Removed: true})
		return
	}

	f, err := LoadFile(event.Name)
	if err != nil {
		w.logger.Warn("custom theme failed to load", "theme", name, "error", err)
		w.emit(Event{Name: name, Err: err})
		return
	}

	Register(name, f)
	w.logger.Info("custom theme loaded", "theme", name)
	w.emit(Event{Name: name})
}

// emit delivers an event without blocking the watch loop.
func (w *Watcher) emit(e Event) {
	select {
	case w.events <- e:
	default:
		w.logger.Warn("theme event dropped, consumer not keeping up", "theme", e.Name)
	}
}

func isThemeFile(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// themeName derives the registry name from a theme file path.
func themeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
}

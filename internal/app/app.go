// Package app wires the command palette components together and manages
// the application lifecycle: the command registry, the visibility bus,
// execution history, plugin loading, and shortcut configuration.
package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/dshills/cmdpal/internal/bus"
	"github.com/dshills/cmdpal/internal/command"
	"github.com/dshills/cmdpal/internal/config"
	"github.com/dshills/cmdpal/internal/input/key"
	"github.com/dshills/cmdpal/internal/plugin"
)

// Options configures the application.
type Options struct {
	// ShortcutsPath is the path to the shortcut override file.
	ShortcutsPath string

	// PluginPaths are Lua scripts to load on startup.
	PluginPaths []string

	// HistorySize caps the execution history. Zero uses the default.
	HistorySize int

	// LogLevel sets the logging verbosity ("debug", "info", "warn", "error").
	LogLevel string
}

// App coordinates the palette core. It owns the registry, the visibility
// bus, and the execution history, and tracks whether the palette is open.
type App struct {
	mu sync.RWMutex

	registry *command.Registry
	bus      *bus.Bus
	history  *command.History
	plugins  *plugin.Loader
	logger   *Logger

	visible bool

	opts Options
}

// New creates an App with the given options. Shortcut overrides and
// plugins are not loaded until Bootstrap is called.
func New(opts Options) *App {
	size := opts.HistorySize
	if size <= 0 {
		size = command.DefaultHistorySize
	}

	logger := NewLogger(ParseLogLevel(opts.LogLevel), os.Stderr)

	a := &App{
		registry: command.NewRegistry(),
		history:  command.NewHistory(size),
		logger:   logger,
		opts:     opts,
	}

	a.bus = bus.New(bus.WithErrorHandler(func(err *bus.ListenerError) {
		logger.WithComponent("bus").Error("listener panic on %s: %v", err.Signal, err.Recovered)
	}))

	// Track open state from the bus so out-of-band emitters stay in sync.
	a.bus.On(bus.SignalOpen, func() { a.setVisible(true) })
	a.bus.On(bus.SignalClose, func() { a.setVisible(false) })
	a.bus.On(bus.SignalToggle, func() { a.flipVisible() })

	return a
}

// Bootstrap loads configured plugins and applies shortcut overrides.
func (a *App) Bootstrap() error {
	if len(a.opts.PluginPaths) > 0 {
		a.plugins = plugin.NewLoader(a.registry)
		for _, path := range a.opts.PluginPaths {
			if err := a.plugins.LoadFile(path); err != nil {
				return fmt.Errorf("load plugin %s: %w", path, err)
			}
			a.logger.WithComponent("plugin").Info("loaded %s", path)
		}
	}

	if a.opts.ShortcutsPath != "" {
		overrides, err := config.LoadShortcutsFile(a.opts.ShortcutsPath)
		if err != nil {
			return fmt.Errorf("load shortcuts: %w", err)
		}
		skipped, err := config.ApplyShortcuts(a.registry, overrides)
		if err != nil {
			return fmt.Errorf("apply shortcuts: %w", err)
		}
		for _, id := range skipped {
			a.logger.WithComponent("config").Warn("shortcut override for unknown command %q", id)
		}
	}

	return nil
}

// Registry returns the command registry.
func (a *App) Registry() *command.Registry { return a.registry }

// Bus returns the palette visibility bus.
func (a *App) Bus() *bus.Bus { return a.bus }

// History returns the execution history.
func (a *App) History() *command.History { return a.history }

// Logger returns the application logger.
func (a *App) Logger() *Logger { return a.logger }

// Visible reports whether the palette is currently open.
func (a *App) Visible() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.visible
}

// Open emits the open signal.
func (a *App) Open() { a.bus.Open() }

// Close emits the close signal.
func (a *App) Close() { a.bus.Close() }

// Toggle emits the toggle signal.
func (a *App) Toggle() { a.bus.Toggle() }

// Search queries the registry for commands matching the query.
func (a *App) Search(query string) []command.SearchResult {
	return a.registry.Search(query)
}

// HandleShortcut resolves a chord against registered shortcuts and, on a
// hit, dispatches the bound command. It reports whether a command was
// resolved; a resolution followed by a failed dispatch still reports true.
func (a *App) HandleShortcut(chord key.Chord) (bool, error) {
	cmd, ok := a.registry.Resolve(chord)
	if !ok {
		return false, nil
	}
	return true, a.execute(cmd.ID)
}

// ExecuteSelection closes the palette and dispatches the selected command.
// The close is emitted before the dispatch so listeners see the palette
// hidden by the time the command runs.
func (a *App) ExecuteSelection(id string) error {
	if a.Visible() {
		a.bus.Close()
	}
	return a.execute(id)
}

// Shutdown releases resources held by the application.
func (a *App) Shutdown() {
	if a.plugins != nil {
		a.plugins.Close()
	}
}

func (a *App) execute(id string) error {
	if err := a.registry.Dispatch(id); err != nil {
		a.logger.WithComponent("dispatch").Error("command %q: %v", id, err)
		return err
	}
	a.history.Record(id)
	a.logger.WithComponent("dispatch").Debug("executed %q", id)
	return nil
}

func (a *App) setVisible(v bool) {
	a.mu.Lock()
	a.visible = v
	a.mu.Unlock()
}

func (a *App) flipVisible() {
	a.mu.Lock()
	a.visible = !a.visible
	a.mu.Unlock()
}

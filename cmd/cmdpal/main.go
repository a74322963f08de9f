// Package main is a terminal demo host for the cmdpal command palette.
// It registers the built-in command groups, loads any configured Lua
// plugins and shortcut overrides, and drives the palette from tcell key
// events: Ctrl+P toggles the palette, Esc closes it, Enter runs the
// selected command, and chords resolve to shortcuts while it is hidden.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cmdpal/internal/app"
	"github.com/dshills/cmdpal/internal/command"
	"github.com/dshills/cmdpal/internal/factory"
	"github.com/dshills/cmdpal/internal/input/key"
	"github.com/dshills/cmdpal/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application := app.New(opts)
	defer application.Shutdown()

	ui := &ui{app: application}
	registerCommands(application, ui)

	if err := application.Bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	ui.screen = screen
	ui.loop()
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ShortcutsPath, "shortcuts", "", "Path to shortcut override file")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.IntVar(&opts.HistorySize, "history", 0, "Execution history size")
	flag.Func("plugin", "Lua plugin to load (repeatable)", func(path string) error {
		opts.PluginPaths = append(opts.PluginPaths, path)
		return nil
	})
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cmdpal - command palette demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cmdpal [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+P    Toggle the palette\n")
		fmt.Fprintf(os.Stderr, "  Esc       Close the palette\n")
		fmt.Fprintf(os.Stderr, "  Enter     Run the selected command\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Q    Quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("cmdpal %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}

// registerCommands wires the built-in command groups to demo hooks that
// report to the status line.
func registerCommands(a *app.App, ui *ui) {
	status := func(msg string) func() error {
		return func() error {
			ui.setStatus(msg)
			return nil
		}
	}

	var cmds []command.Command
	cmds = append(cmds, factory.File(factory.FileHooks{
		Open:   status("opened a file"),
		Save:   status("saved"),
		SaveAs: status("saved a copy"),
		Export: status("exported"),
	})...)
	cmds = append(cmds, factory.View(factory.ViewHooks{
		ToggleSidebar: status("toggled sidebar"),
		FullScreen:    status("toggled full screen"),
		ZoomIn:        status("zoomed in"),
		ZoomOut:       status("zoomed out"),
	})...)
	cmds = append(cmds, factory.Theme(factory.ThemeHooks{
		Apply:  func(name string) error { ui.setStatus("theme set to " + name); return nil },
		Themes: []string{"dark", "light", "solarized"},
	})...)
	cmds = append(cmds, factory.Session(factory.SessionHooks{
		New: status("started a session"),
	})...)
	cmds = append(cmds, factory.Settings(factory.SettingsHooks{
		Open:        status("opened settings"),
		Keybindings: status("opened keybindings"),
	})...)
	cmds = append(cmds, factory.Help(factory.HelpHooks{
		Docs:  status("opened documentation"),
		About: status("cmdpal " + version),
	})...)

	if err := a.Registry().RegisterAll(cmds); err != nil {
		panic(err)
	}
}

// ui holds the interactive state of the demo host.
type ui struct {
	app    *app.App
	screen tcell.Screen

	query     string
	selection int
	status    string
}

func (u *ui) setStatus(msg string) { u.status = msg }

func (u *ui) loop() {
	for {
		u.draw()

		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if !u.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one key event. It returns false when the host
// should exit.
func (u *ui) handleKey(ev *tcell.EventKey) bool {
	chord := term.Chord(ev)

	switch {
	case chord.Equals(key.MustParse("Ctrl+Q")):
		return false
	case chord.Equals(key.MustParse("Ctrl+P")):
		u.app.Toggle()
		u.resetInput()
		return true
	}

	if !u.app.Visible() {
		handled, err := u.app.HandleShortcut(chord)
		if err != nil {
			u.setStatus(fmt.Sprintf("error: %v", err))
		} else if !handled && !chord.IsZero() {
			u.setStatus("unbound: " + chord.String())
		}
		return true
	}

	switch {
	case chord.Equals(key.NewSpecialChord(key.KeyEscape, key.ModNone)):
		u.app.Close()
		u.resetInput()
	case chord.Equals(key.NewSpecialChord(key.KeyEnter, key.ModNone)):
		u.runSelection()
	case chord.Equals(key.NewSpecialChord(key.KeyUp, key.ModNone)):
		if u.selection > 0 {
			u.selection--
		}
	case chord.Equals(key.NewSpecialChord(key.KeyDown, key.ModNone)):
		u.selection++
	case chord.Equals(key.NewSpecialChord(key.KeyBackspace, key.ModNone)):
		if len(u.query) > 0 {
			u.query = u.query[:len(u.query)-1]
			u.selection = 0
		}
	case chord.Key == key.KeyRune && chord.Modifiers.IsEmpty():
		u.query += string(ev.Rune())
		u.selection = 0
	}
	return true
}

func (u *ui) runSelection() {
	results := u.app.Search(u.query)
	if len(results) == 0 {
		return
	}
	if u.selection >= len(results) {
		u.selection = len(results) - 1
	}
	id := results[u.selection].Command.ID

	if err := u.app.ExecuteSelection(id); err != nil {
		u.setStatus(fmt.Sprintf("error: %v", err))
	}
	u.resetInput()
}

func (u *ui) resetInput() {
	u.query = ""
	u.selection = 0
}

func (u *ui) draw() {
	u.screen.Clear()
	width, height := u.screen.Size()

	styleDefault := tcell.StyleDefault
	styleDim := styleDefault.Foreground(tcell.ColorGray)
	styleSelected := styleDefault.Reverse(true)

	drawText(u.screen, 0, height-1, styleDim, u.status)

	if !u.app.Visible() {
		drawText(u.screen, 0, 0, styleDim, "Ctrl+P opens the palette, Ctrl+Q quits")
		u.screen.Show()
		return
	}

	drawText(u.screen, 0, 0, styleDefault, "> "+u.query)
	u.screen.ShowCursor(len(u.query)+2, 0)

	results := u.app.Search(u.query)
	if u.selection >= len(results) && len(results) > 0 {
		u.selection = len(results) - 1
	}

	maxRows := height - 2
	for i, res := range results {
		if i >= maxRows {
			break
		}
		style := styleDefault
		if i == u.selection {
			style = styleSelected
		}
		line := res.Command.Title
		if !res.Command.Shortcut.IsZero() {
			line += "  (" + res.Command.Shortcut.String() + ")"
		}
		if len(line) > width {
			line = line[:width]
		}
		drawText(u.screen, 2, i+1, style, line)
	}
	u.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

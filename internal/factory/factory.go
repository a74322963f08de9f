// Package factory builds command groups for each feature area of the
// hosting application. A factory takes a configuration struct of named
// callback hooks and returns the commands bound to them; factories are
// producers only and hold no palette state.
//
// Hooks left nil simply produce no command, so a host wires only the
// actions it supports. Availability predicates are shared per feature
// area through the config struct.
package factory

import (
	"github.com/dshills/cmdpal/internal/command"
	"github.com/dshills/cmdpal/internal/input/key"
)

// FileHooks configures the file feature area.
type FileHooks struct {
	Open   func() error
	Save   func() error
	SaveAs func() error
	Export func() error

	// HasDocument gates the save/export commands. Nil means always
	// available.
	HasDocument func() bool
}

// File builds the file commands bound to the given hooks.
func File(h FileHooks) []command.Command {
	var cmds []command.Command

	if h.Open != nil {
		cmds = append(cmds, command.Command{
			ID:       "file.open",
			Title:    "Open File",
			Category: command.CategoryFile,
			Keywords: []string{"load", "browse"},
			Shortcut: key.MustParse("Ctrl+O"),
			Run:      h.Open,
		})
	}
	if h.Save != nil {
		cmds = append(cmds, command.Command{
			ID:        "file.save",
			Title:     "Save File",
			Category:  command.CategoryFile,
			Keywords:  []string{"write", "persist"},
			Shortcut:  key.MustParse("Ctrl+S"),
			Available: h.HasDocument,
			Run:       h.Save,
		})
	}
	if h.SaveAs != nil {
		cmds = append(cmds, command.Command{
			ID:        "file.saveAs",
			Title:     "Save As",
			Category:  command.CategoryFile,
			Keywords:  []string{"write", "copy"},
			Shortcut:  key.MustParse("Ctrl+Shift+S"),
			Available: h.HasDocument,
			Run:       h.SaveAs,
		})
	}
	if h.Export != nil {
		cmds = append(cmds, command.Command{
			ID:        "file.export",
			Title:     "Export",
			Category:  command.CategoryFile,
			Keywords:  []string{"download", "share"},
			Available: h.HasDocument,
			Run:       h.Export,
		})
	}

	return cmds
}

// ViewHooks configures the view feature area.
type ViewHooks struct {
	ToggleSidebar func() error
	FullScreen    func() error
	ZoomIn        func() error
	ZoomOut       func() error
}

// View builds the view commands bound to the given hooks.
func View(h ViewHooks) []command.Command {
	var cmds []command.Command

	if h.ToggleSidebar != nil {
		cmds = append(cmds, command.Command{
			ID:       "view.sidebar",
			Title:    "Toggle Sidebar",
			Category: command.CategoryView,
			Keywords: []string{"panel", "explorer"},
			Shortcut: key.MustParse("Ctrl+B"),
			Run:      h.ToggleSidebar,
		})
	}
	if h.FullScreen != nil {
		cmds = append(cmds, command.Command{
			ID:       "view.fullScreen",
			Title:    "Toggle Full Screen",
			Category: command.CategoryView,
			Shortcut: key.MustParse("F11"),
			Run:      h.FullScreen,
		})
	}
	if h.ZoomIn != nil {
		cmds = append(cmds, command.Command{
			ID:       "view.zoomIn",
			Title:    "Zoom In",
			Category: command.CategoryView,
			Keywords: []string{"larger", "magnify"},
			Run:      h.ZoomIn,
		})
	}
	if h.ZoomOut != nil {
		cmds = append(cmds, command.Command{
			ID:       "view.zoomOut",
			Title:    "Zoom Out",
			Category: command.CategoryView,
			Keywords: []string{"smaller", "shrink"},
			Run:      h.ZoomOut,
		})
	}

	return cmds
}

// ThemeHooks configures the theme feature area. Apply receives the theme
// name chosen by the user.
type ThemeHooks struct {
	Apply func(name string) error

	// Themes lists the selectable theme names; one command is produced
	// per name.
	Themes []string
}

// Theme builds one command per selectable theme.
func Theme(h ThemeHooks) []command.Command {
	if h.Apply == nil {
		return nil
	}

	cmds := make([]command.Command, 0, len(h.Themes))
	for _, name := range h.Themes {
		name := name
		cmds = append(cmds, command.Command{
			ID:       "theme." + name,
			Title:    "Theme: " + name,
			Category: command.CategoryTheme,
			Keywords: []string{"appearance", "color"},
			Run:      func() error { return h.Apply(name) },
		})
	}
	return cmds
}

// SessionHooks configures the session feature area.
type SessionHooks struct {
	New    func() error
	End    func() error
	Rename func() error

	// HasSession gates the end/rename commands.
	HasSession func() bool
}

// Session builds the session commands bound to the given hooks.
func Session(h SessionHooks) []command.Command {
	var cmds []command.Command

	if h.New != nil {
		cmds = append(cmds, command.Command{
			ID:       "session.new",
			Title:    "New Session",
			Category: command.CategorySession,
			Keywords: []string{"start", "create"},
			Shortcut: key.MustParse("Ctrl+N"),
			Run:      h.New,
		})
	}
	if h.End != nil {
		cmds = append(cmds, command.Command{
			ID:        "session.end",
			Title:     "End Session",
			Category:  command.CategorySession,
			Keywords:  []string{"stop", "quit"},
			Available: h.HasSession,
			Run:       h.End,
		})
	}
	if h.Rename != nil {
		cmds = append(cmds, command.Command{
			ID:        "session.rename",
			Title:     "Rename Session",
			Category:  command.CategorySession,
			Available: h.HasSession,
			Run:       h.Rename,
		})
	}

	return cmds
}

// SettingsHooks configures the settings feature area.
type SettingsHooks struct {
	Open         func() error
	Keybindings  func() error
	ResetDefault func() error
}

// Settings builds the settings commands bound to the given hooks.
func Settings(h SettingsHooks) []command.Command {
	var cmds []command.Command

	if h.Open != nil {
		cmds = append(cmds, command.Command{
			ID:       "settings.open",
			Title:    "Open Settings",
			Category: command.CategorySettings,
			Keywords: []string{"preferences", "options"},
			Shortcut: key.MustParse("Ctrl+,"),
			Run:      h.Open,
		})
	}
	if h.Keybindings != nil {
		cmds = append(cmds, command.Command{
			ID:       "settings.keybindings",
			Title:    "Open Keyboard Shortcuts",
			Category: command.CategorySettings,
			Keywords: []string{"keys", "bindings", "shortcuts"},
			Run:      h.Keybindings,
		})
	}
	if h.ResetDefault != nil {
		cmds = append(cmds, command.Command{
			ID:       "settings.reset",
			Title:    "Reset to Defaults",
			Category: command.CategorySettings,
			Run:      h.ResetDefault,
		})
	}

	return cmds
}

// HelpHooks configures the help feature area.
type HelpHooks struct {
	Docs      func() error
	Shortcuts func() error
	About     func() error
}

// Help builds the help commands bound to the given hooks.
func Help(h HelpHooks) []command.Command {
	var cmds []command.Command

	if h.Docs != nil {
		cmds = append(cmds, command.Command{
			ID:       "help.docs",
			Title:    "Open Documentation",
			Category: command.CategoryHelp,
			Keywords: []string{"manual", "guide"},
			Shortcut: key.MustParse("F1"),
			Run:      h.Docs,
		})
	}
	if h.Shortcuts != nil {
		cmds = append(cmds, command.Command{
			ID:       "help.shortcuts",
			Title:    "Show All Shortcuts",
			Category: command.CategoryHelp,
			Keywords: []string{"keys", "bindings"},
			Run:      h.Shortcuts,
		})
	}
	if h.About != nil {
		cmds = append(cmds, command.Command{
			ID:       "help.about",
			Title:    "About",
			Category: command.CategoryHelp,
			Keywords: []string{"version", "info"},
			Run:      h.About,
		})
	}

	return cmds
}

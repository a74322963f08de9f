package plugin

import (
	"testing"

	"github.com/dshills/cmdpal/internal/command"
	"github.com/dshills/cmdpal/internal/input/key"
)

func TestRegisterFromScript(t *testing.T) {
	reg := command.NewRegistry()
	l := NewLoader(reg)
	defer l.Close()

	err := l.LoadString(`
		palette.register{
			id = "tools.hello",
			title = "Say Hello",
			category = "tools",
			keywords = {"greeting", "demo"},
			shortcut = "Ctrl+H",
			run = function() greeted = true end,
		}
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	cmd, err := reg.Get("tools.hello")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if cmd.Title != "Say Hello" {
		t.Errorf("Title = %q, want %q", cmd.Title, "Say Hello")
	}
	if cmd.Category != command.CategoryTools {
		t.Errorf("Category = %v, want tools", cmd.Category)
	}
	if len(cmd.Keywords) != 2 {
		t.Errorf("Keywords = %v, want 2 entries", cmd.Keywords)
	}
	if !cmd.Shortcut.Equals(key.MustParse("ctrl+h")) {
		t.Errorf("Shortcut = %v, want Ctrl+H", cmd.Shortcut)
	}

	// Dispatch runs the Lua handler.
	if err := reg.Dispatch("tools.hello"); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if err := l.LoadString(`assert(greeted, "run handler did not fire")`); err != nil {
		t.Errorf("handler side effect missing: %v", err)
	}
}

func TestScriptValidation(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"missing id", `palette.register{title = "X", run = function() end}`},
		{"missing title", `palette.register{id = "x", run = function() end}`},
		{"missing run", `palette.register{id = "x", title = "X"}`},
		{"unknown category", `palette.register{id = "x", title = "X", category = "nope", run = function() end}`},
		{"bad shortcut", `palette.register{id = "x", title = "X", shortcut = "Hyper+Q", run = function() end}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := command.NewRegistry()
			l := NewLoader(reg)
			defer l.Close()

			if err := l.LoadString(tt.script); err == nil {
				t.Error("LoadString() expected error")
			}
			if reg.Len() != 0 {
				t.Errorf("registry has %d commands after failed script, want 0", reg.Len())
			}
		})
	}
}

func TestScriptAvailability(t *testing.T) {
	reg := command.NewRegistry()
	l := NewLoader(reg)
	defer l.Close()

	err := l.LoadString(`
		enabled = false
		palette.register{
			id = "tools.gated",
			title = "Gated Command",
			run = function() end,
			available = function() return enabled end,
		}
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if got := reg.Search("gated"); len(got) != 0 {
		t.Error("unavailable script command appeared in search results")
	}

	if err := l.LoadString(`enabled = true`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if got := reg.Search("gated"); len(got) != 1 {
		t.Error("script command should appear once its predicate passes")
	}
}

func TestScriptUnregister(t *testing.T) {
	reg := command.NewRegistry()
	l := NewLoader(reg)
	defer l.Close()

	err := l.LoadString(`
		palette.register{id = "tools.tmp", title = "Temp", run = function() end}
		owned = palette.unregister("tools.tmp")
		foreign = palette.unregister("not.ours")
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if reg.Has("tools.tmp") {
		t.Error("command should be gone after palette.unregister")
	}
	if err := l.LoadString(`assert(owned == true and foreign == false)`); err != nil {
		t.Errorf("unregister return values wrong: %v", err)
	}
}

func TestCloseWithdrawsCommands(t *testing.T) {
	reg := command.NewRegistry()
	l := NewLoader(reg)

	err := l.LoadString(`
		palette.register{id = "tools.a", title = "A", run = function() end}
		palette.register{id = "tools.b", title = "B", run = function() end}
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("registry has %d commands, want 2", reg.Len())
	}

	l.Close()
	if reg.Len() != 0 {
		t.Errorf("registry has %d commands after Close, want 0", reg.Len())
	}

	// Loader refuses further scripts once closed.
	if err := l.LoadString(`x = 1`); err == nil {
		t.Error("LoadString() after Close should error")
	}
}

// Package plugin lets Lua scripts contribute palette commands. A script
// receives a global `palette` module:
//
//	palette.register{
//	    id = "tools.wordcount",
//	    title = "Count Words",
//	    category = "tools",
//	    keywords = {"statistics", "text"},
//	    shortcut = "Ctrl+Shift+W",
//	    run = function() ... end,
//	    available = function() return true end,
//	}
//
// Commands registered by a script are tracked so the whole script's
// contribution can be withdrawn when the plugin unloads.
package plugin

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cmdpal/internal/command"
	"github.com/dshills/cmdpal/internal/input/key"
)

// handlerTableKey is the Lua global holding handler functions, keeping
// them referenced so they are not collected.
const handlerTableKey = "_cmdpal_handlers"

// Loader runs Lua scripts against a command registry.
type Loader struct {
	mu       sync.Mutex
	reg      *command.Registry
	state    *lua.LState
	handlers *lua.LTable
	ids      map[string]bool
}

// NewLoader creates a loader that registers script commands into reg.
func NewLoader(reg *command.Registry) *Loader {
	L := lua.NewState()

	l := &Loader{
		reg:      reg,
		state:    L,
		handlers: L.NewTable(),
		ids:      make(map[string]bool),
	}
	L.SetGlobal(handlerTableKey, l.handlers)

	mod := L.NewTable()
	L.SetField(mod, "register", L.NewFunction(l.register))
	L.SetField(mod, "unregister", L.NewFunction(l.unregister))
	L.SetGlobal("palette", mod)

	return l
}

// LoadFile executes a script file.
func (l *Loader) LoadFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == nil {
		return fmt.Errorf("plugin: loader is closed")
	}
	if err := l.state.DoFile(path); err != nil {
		return fmt.Errorf("plugin %s: %w", path, err)
	}
	return nil
}

// LoadString executes script source.
func (l *Loader) LoadString(src string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == nil {
		return fmt.Errorf("plugin: loader is closed")
	}
	if err := l.state.DoString(src); err != nil {
		return fmt.Errorf("plugin: %w", err)
	}
	return nil
}

// CommandIDs returns the IDs of all commands the loader's scripts have
// registered.
func (l *Loader) CommandIDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.ids))
	for id := range l.ids {
		out = append(out, id)
	}
	return out
}

// Close withdraws every script-registered command and releases the Lua
// state. The loader cannot be used afterwards.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == nil {
		return
	}
	for id := range l.ids {
		l.reg.Unregister(id)
	}
	l.ids = make(map[string]bool)
	l.state.Close()
	l.state = nil
	l.handlers = nil
}

// register implements palette.register(opts).
func (l *Loader) register(L *lua.LState) int {
	opts := L.CheckTable(1)

	id := tableString(L, opts, "id")
	title := tableString(L, opts, "title")
	run := L.GetField(opts, "run")

	if id == "" {
		L.ArgError(1, "id is required")
		return 0
	}
	if title == "" {
		L.ArgError(1, "title is required")
		return 0
	}
	if run.Type() != lua.LTFunction {
		L.ArgError(1, "run must be a function")
		return 0
	}

	cmd := command.Command{
		ID:       id,
		Title:    title,
		Category: command.CategoryTools, // default for script commands
		Run:      l.luaAction(id),
	}

	if name := tableString(L, opts, "category"); name != "" {
		cat, ok := command.ParseCategory(name)
		if !ok {
			L.ArgError(1, fmt.Sprintf("unknown category %q", name))
			return 0
		}
		cmd.Category = cat
	}

	if spec := tableString(L, opts, "shortcut"); spec != "" {
		chord, err := key.Parse(spec)
		if err != nil {
			L.ArgError(1, fmt.Sprintf("bad shortcut %q: %v", spec, err))
			return 0
		}
		cmd.Shortcut = chord
	}

	if kw := L.GetField(opts, "keywords"); kw.Type() == lua.LTTable {
		kw.(*lua.LTable).ForEach(func(_, v lua.LValue) {
			if s, ok := v.(lua.LString); ok {
				cmd.Keywords = append(cmd.Keywords, string(s))
			}
		})
	}

	if avail := L.GetField(opts, "available"); avail.Type() == lua.LTFunction {
		l.handlers.RawSetString(id+"/available", avail)
		cmd.Available = l.luaPredicate(id)
	}

	l.handlers.RawSetString(id, run)
	l.ids[id] = true

	if err := l.reg.Register(cmd); err != nil {
		l.handlers.RawSetString(id, lua.LNil)
		delete(l.ids, id)
		L.RaiseError("register: %v", err)
		return 0
	}
	return 0
}

// unregister implements palette.unregister(id). Returns true if this
// loader owned the command.
func (l *Loader) unregister(L *lua.LState) int {
	id := L.CheckString(1)

	if !l.ids[id] {
		L.Push(lua.LFalse)
		return 1
	}

	l.handlers.RawSetString(id, lua.LNil)
	l.handlers.RawSetString(id+"/available", lua.LNil)
	delete(l.ids, id)
	l.reg.Unregister(id)

	L.Push(lua.LTrue)
	return 1
}

// luaAction builds the Go callback that invokes the script's run function.
func (l *Loader) luaAction(id string) command.Action {
	return func() error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if l.state == nil {
			return fmt.Errorf("plugin: command %q: loader is closed", id)
		}

		fn := l.state.GetField(l.handlers, id)
		if fn.Type() != lua.LTFunction {
			return fmt.Errorf("plugin: command %q: handler not found", id)
		}

		l.state.Push(fn)
		if err := l.state.PCall(0, 0, nil); err != nil {
			return fmt.Errorf("plugin: command %q: %w", id, err)
		}
		return nil
	}
}

// luaPredicate builds the availability callback backed by the script's
// available function. Script errors count as unavailable.
func (l *Loader) luaPredicate(id string) command.Predicate {
	return func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()

		if l.state == nil {
			return false
		}

		fn := l.state.GetField(l.handlers, id+"/available")
		if fn.Type() != lua.LTFunction {
			return true
		}

		l.state.Push(fn)
		if err := l.state.PCall(0, 1, nil); err != nil {
			return false
		}
		ret := l.state.Get(-1)
		l.state.Pop(1)
		return lua.LVAsBool(ret)
	}
}

// tableString reads a string field from a Lua table.
func tableString(L *lua.LState, tbl *lua.LTable, field string) string {
	v := L.GetField(tbl, field)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

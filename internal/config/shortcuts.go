// Package config loads user configuration for the palette. The only
// config surface the core owns is the shortcut override file, a JSON
// document remapping command shortcuts by ID:
//
//	{
//	  "shortcuts": {
//	    "file.save": "Ctrl+Alt+S",
//	    "view.sidebar": ""
//	  }
//	}
//
// An empty string clears the command's shortcut. Specs are accepted in any
// form the key parser understands and stored canonically.
package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/cmdpal/internal/command"
	"github.com/dshills/cmdpal/internal/input/key"
)

// ShortcutOverride is one remapping entry.
type ShortcutOverride struct {
	// CommandID names the command being remapped.
	CommandID string

	// Chord is the new shortcut; the zero chord clears the binding.
	Chord key.Chord
}

// LoadShortcuts parses override entries from a JSON document. Entries keep
// the document's order so overrides apply deterministically.
func LoadShortcuts(data []byte) ([]ShortcutOverride, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("shortcut overrides: invalid JSON")
	}

	var overrides []ShortcutOverride
	var parseErr error

	gjson.GetBytes(data, "shortcuts").ForEach(func(k, v gjson.Result) bool {
		spec := v.String()
		if spec == "" {
			overrides = append(overrides, ShortcutOverride{CommandID: k.String()})
			return true
		}

		chord, err := key.Parse(spec)
		if err != nil {
			parseErr = fmt.Errorf("shortcut override for %q: %w", k.String(), err)
			return false
		}
		overrides = append(overrides, ShortcutOverride{
			CommandID: k.String(),
			Chord:     chord,
		})
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return overrides, nil
}

// LoadShortcutsFile reads and parses an override file. A missing file is
// not an error; it simply yields no overrides.
func LoadShortcutsFile(path string) ([]ShortcutOverride, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading shortcut overrides: %w", err)
	}
	return LoadShortcuts(data)
}

// ApplyShortcuts re-registers each overridden command with its new
// shortcut. Overrides naming unknown command IDs are skipped and
// reported; the remaining overrides still apply.
func ApplyShortcuts(reg *command.Registry, overrides []ShortcutOverride) (skipped []string, err error) {
	for _, o := range overrides {
		cmd, getErr := reg.Get(o.CommandID)
		if getErr != nil {
			skipped = append(skipped, o.CommandID)
			continue
		}
		cmd.Shortcut = o.Chord
		if regErr := reg.Register(cmd); regErr != nil {
			return skipped, fmt.Errorf("applying override for %q: %w", o.CommandID, regErr)
		}
	}
	return skipped, nil
}

// SetShortcut patches a single override into the JSON document, preserving
// all other content, and returns the updated document. The chord spelling
// is validated and canonicalized first; an empty spelling records a
// cleared binding.
func SetShortcut(data []byte, commandID, spec string) ([]byte, error) {
	if len(data) == 0 {
		data = []byte("{}")
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("shortcut overrides: invalid JSON")
	}

	canonical := ""
	if spec != "" {
		chord, err := key.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("shortcut override for %q: %w", commandID, err)
		}
		canonical = chord.String()
	}

	updated, err := sjson.SetBytes(data, "shortcuts."+escapePath(commandID), canonical)
	if err != nil {
		return nil, fmt.Errorf("writing shortcut override: %w", err)
	}
	return updated, nil
}

// escapePath escapes dots in command IDs so sjson treats the whole ID as
// one object key instead of a nested path.
func escapePath(id string) string {
	out := make([]byte, 0, len(id))
	for i := 0; i < len(id); i++ {
		if id[i] == '.' {
			out = append(out, '\\')
		}
		out = append(out, id[i])
	}
	return string(out)
}

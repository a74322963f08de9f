package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into a canonical Chord.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P", "shift+ctrl+p"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
//
// Modifier order and letter case do not affect the result: "Ctrl+Shift+S",
// "shift+ctrl+s" and "<C-S-s>" all parse to the same chord.
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	// Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Modifier+key format (Ctrl+S, Alt+F4)
	if strings.Contains(spec, "+") && len([]rune(spec)) > 1 {
		return parseModifierStyle(spec)
	}

	// Single character or key name
	return parseSingle(spec)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc".
func parseVimStyle(inner string) (Chord, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Chord{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	keyPart := parts[len(parts)-1]

	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d": // D is Vim's notation for Command/Meta
			mods = mods.With(ModMeta)
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Chord, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Chord{}, ErrInvalidSpec
	}

	// A trailing literal "+" key, as in "Ctrl++", splits into two empty
	// parts. A lone trailing "+" with nothing after it, as in "Ctrl+",
	// names no key at all.
	if parts[len(parts)-1] == "" {
		if len(parts) < 3 || parts[len(parts)-2] != "" {
			return Chord{}, fmt.Errorf("%w: missing key in %q", ErrInvalidSpec, spec)
		}
		parts = parts[:len(parts)-1]
		parts[len(parts)-1] = "+"
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(strings.TrimSpace(parts[len(parts)-1]), mods)
}

// parseSingle parses a single character or key name.
func parseSingle(spec string) (Chord, error) {
	if k := KeyFromName(spec); k != KeyNone {
		return NewSpecialChord(k, ModNone), nil
	}
	if strings.EqualFold(spec, "space") {
		return NewRuneChord(' ', ModNone), nil
	}

	runes := []rune(spec)
	if len(runes) == 1 {
		return NewRuneChord(runes[0], ModNone), nil
	}

	return Chord{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Chord, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Chord{}, ErrInvalidSpec
	}

	lowerKey := strings.ToLower(keyPart)

	// Vim aliases for characters that clash with the notation itself.
	switch lowerKey {
	case "space":
		return NewRuneChord(' ', mods), nil
	case "lt":
		return NewRuneChord('<', mods), nil
	case "gt":
		return NewRuneChord('>', mods), nil
	case "bar":
		return NewRuneChord('|', mods), nil
	case "bslash":
		return NewRuneChord('\\', mods), nil
	}

	if k := KeyFromName(lowerKey); k != KeyNone {
		return NewSpecialChord(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneChord(unicode.ToLower(runes[0]), mods), nil
	}

	return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Chord {
	chord, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return chord
}

// NormalizeSpec parses and re-formats a key specification to its canonical
// string form.
func NormalizeSpec(spec string) (string, error) {
	chord, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return chord.String(), nil
}

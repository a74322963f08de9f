package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Chord is a single key combination: one key plus zero or more modifiers.
// A zero Chord (Key == KeyNone) represents "no shortcut".
type Chord struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune chords.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneChord creates a chord for a character key.
func NewRuneChord(r rune, mods Modifier) Chord {
	return Chord{Key: KeyRune, Rune: r, Modifiers: mods}.Normalize()
}

// NewSpecialChord creates a chord for a special key.
func NewSpecialChord(key Key, mods Modifier) Chord {
	return Chord{Key: key, Modifiers: mods}
}

// IsZero returns true if the chord is unset.
func (c Chord) IsZero() bool {
	return c.Key == KeyNone
}

// IsRune returns true if this is a character chord.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// Normalize returns the canonical form of the chord. Letter case is folded
// so that equivalent physical combinations always compare equal; the shifted
// variant of a letter is expressed only through ModShift.
func (c Chord) Normalize() Chord {
	if c.Key == KeyRune {
		c.Rune = unicode.ToLower(c.Rune)
	}
	return c
}

// Equals returns true if two chords represent the same key combination
// after normalization.
func (c Chord) Equals(other Chord) bool {
	a, b := c.Normalize(), other.Normalize()
	return a.Key == b.Key && a.Rune == b.Rune && a.Modifiers == b.Modifiers
}

// String returns the canonical string representation, e.g. "Ctrl+S",
// "Ctrl+Shift+P", "Enter", "a". Two equivalent chords always produce the
// same string, so it can serve as a map key.
func (c Chord) String() string {
	if c.IsZero() {
		return ""
	}

	n := c.Normalize()

	var keyName string
	switch {
	case n.Key == KeyRune:
		switch {
		case n.Rune == ' ':
			keyName = "Space"
		case unicode.IsLetter(n.Rune):
			keyName = strings.ToUpper(string(n.Rune))
		default:
			keyName = string(n.Rune)
		}
	default:
		keyName = n.Key.String()
	}

	mods := n.Modifiers.String()
	if mods == "" {
		return keyName
	}
	return mods + "+" + keyName
}

// GoString implements fmt.GoStringer for debugging.
func (c Chord) GoString() string {
	return fmt.Sprintf("Chord{Key: %s, Rune: %q, Modifiers: %s}",
		c.Key.String(), c.Rune, c.Modifiers.String())
}

// Package key provides the keyboard chord model used for command shortcuts.
//
// A Chord is a single key combination (one key plus modifiers). Chords are
// normalized so that equivalent physical combinations always compare equal:
// modifier order does not matter and letter case is folded. Parse accepts
// both "Ctrl+Shift+P" style and Vim-style "<C-S-p>" specifications.
//
//	chord := key.MustParse("ctrl+s")
//	chord.Equals(key.MustParse("Ctrl+S")) // true
//	chord.String()                        // "Ctrl+S"
package key

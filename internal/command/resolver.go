package command

import (
	"fmt"

	"github.com/dshills/cmdpal/internal/input/key"
)

// Resolve maps a key combination to at most one available command. The
// incoming chord is normalized to the same canonical form used at
// registration, so modifier order and letter case never affect lookup.
//
// When several registered commands share a canonical shortcut, the one
// registered most recently wins: later registrations represent the most
// specific active feature context, so collisions across feature modules
// loaded in sequence resolve deterministically. Re-registering a command
// counts as a new registration for this purpose.
//
// Resolve never invokes the command. Invocation is a separate explicit
// step (Dispatch) so callers can intercept, e.g. to close the palette
// first, without double-firing.
func (r *Registry) Resolve(chord key.Chord) (Command, bool) {
	if chord.IsZero() {
		return Command{}, false
	}
	chord = chord.Normalize()

	entries := r.snapshot()

	var best *entry
	for i := range entries {
		e := &entries[i]
		if e.cmd.Shortcut.IsZero() || !e.cmd.Shortcut.Equals(chord) {
			continue
		}
		if !e.cmd.IsAvailable() {
			continue
		}
		if best == nil || e.seq > best.seq {
			best = e
		}
	}

	if best == nil {
		return Command{}, false
	}
	return best.cmd, true
}

// Dispatch looks up a command by ID and invokes its Run callback exactly
// once. Any error from the callback is returned unmodified; a failing
// callback cannot corrupt registry state because dispatch writes nothing.
func (r *Registry) Dispatch(id string) error {
	cmd, err := r.Get(id)
	if err != nil {
		return err
	}
	if !cmd.IsAvailable() {
		return fmt.Errorf("dispatch %q: %w", id, ErrUnavailable)
	}
	return cmd.Run()
}

package command

import "sync"

// entry wraps a stored command with its registration bookkeeping.
type entry struct {
	cmd Command

	// seq is the recency sequence number, bumped on every Register call
	// including replacements. Shortcut collisions resolve to the highest
	// seq (last-registration-wins).
	seq uint64
}

// Registry is the authoritative store of all commands, keyed by unique ID.
// It preserves registration order for deterministic enumeration and
// category grouping.
//
// The registry is process-wide state: it is created once at application
// start and survives the palette UI being shown and hidden. All methods
// are safe for concurrent use; reads may run concurrently with each other
// but are serialized against mutations.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]*entry
	order []*entry
	seq   uint64
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]*entry),
	}
}

// Register inserts or replaces a command by ID. Replacing keeps the
// command's original position in registration order (a hot-reloading
// feature module does not reshuffle the palette) but counts as the most
// recent registration for shortcut collision purposes.
func (r *Registry) Register(cmd Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.registerLocked(cmd)
	return nil
}

// registerLocked inserts without validating. Caller must hold the write
// lock and have validated cmd.
func (r *Registry) registerLocked(cmd Command) {
	cmd.Shortcut = cmd.Shortcut.Normalize()
	r.seq++

	if existing, ok := r.byID[cmd.ID]; ok {
		existing.cmd = cmd
		existing.seq = r.seq
		return
	}

	e := &entry{cmd: cmd, seq: r.seq}
	r.byID[cmd.ID] = e
	r.order = append(r.order, e)
}

// RegisterAll registers a batch of commands in input order, all-or-nothing:
// the whole batch is validated first, and if any command fails the registry
// is left untouched and the returned ValidationError names the offender.
func (r *Registry) RegisterAll(cmds []Command) error {
	for i := range cmds {
		if err := cmds[i].Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range cmds {
		r.registerLocked(cmds[i])
	}
	return nil
}

// Unregister removes the command if present. Removing an unknown ID is a
// no-op, not an error.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)

	for i, e := range r.order {
		if e.cmd.ID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the command for an ID, or a NotFoundError.
func (r *Registry) Get(id string) (Command, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return Command{}, &NotFoundError{ID: id}
	}
	return e.cmd, nil
}

// Has checks if a command exists.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

// All returns a snapshot of all registered commands in registration order.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Command, len(r.order))
	for i, e := range r.order {
		result[i] = e.cmd
	}
	return result
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// snapshot returns the ordered entries under the read lock. Entry values
// are copied so callers can score and sort without holding the lock.
func (r *Registry) snapshot() []entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entry, len(r.order))
	for i, e := range r.order {
		result[i] = *e
	}
	return result
}

package command

import "sync"

// History records recently dispatched command IDs in most-recently-used
// order. It is kept outside the Registry so that dispatch itself writes no
// registry state and search ordering stays deterministic; hosts that want
// recency-aware UI record dispatches explicitly.
type History struct {
	mu       sync.Mutex
	items    []string
	maxItems int
}

// DefaultHistorySize is the history capacity used when none is given.
const DefaultHistorySize = 100

// NewHistory creates a history with the given capacity.
func NewHistory(maxItems int) *History {
	if maxItems <= 0 {
		maxItems = DefaultHistorySize
	}
	return &History{
		items:    make([]string, 0, maxItems),
		maxItems: maxItems,
	}
}

// Record notes a command dispatch. A repeated ID moves to the front.
func (h *History) Record(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, item := range h.items {
		if item == id {
			h.items = append(h.items[:i], h.items[i+1:]...)
			break
		}
	}

	h.items = append([]string{id}, h.items...)

	if len(h.items) > h.maxItems {
		h.items = h.items[:h.maxItems]
	}
}

// Recent returns the most recently dispatched command IDs.
func (h *History) Recent(limit int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if limit <= 0 || limit > len(h.items) {
		limit = len(h.items)
	}

	result := make([]string, limit)
	copy(result, h.items[:limit])
	return result
}

// Position returns the position of a command in history (0 = most recent).
// Returns -1 if not found.
func (h *History) Position(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, item := range h.items {
		if item == id {
			return i
		}
	}
	return -1
}

// Clear removes all history entries.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = h.items[:0]
}

// Len returns the number of recorded IDs.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}

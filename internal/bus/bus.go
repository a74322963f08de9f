// Package bus implements the palette visibility bus: a minimal
// publish/subscribe channel carrying the open, close and toggle signals so
// that presentation and business logic stay decoupled. The bus holds no
// command state and carries no payload.
package bus

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Signal is one of the three palette visibility notifications.
type Signal uint8

const (
	// SignalOpen requests that the palette be shown.
	SignalOpen Signal = iota

	// SignalClose requests that the palette be hidden.
	SignalClose

	// SignalToggle requests that the palette visibility be flipped.
	SignalToggle

	signalCount // sentinel, keep last
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case SignalOpen:
		return "open"
	case SignalClose:
		return "close"
	case SignalToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// IsValid returns true for the three defined signals.
func (s Signal) IsValid() bool {
	return s < signalCount
}

// Listener is a zero-argument visibility callback.
type Listener func()

// Subscription identifies one registered listener so it can be removed
// later. Go functions are not comparable, so removal goes through the
// handle rather than listener identity.
type Subscription struct {
	signal Signal
	id     uint64
}

// Signal returns the signal the subscription listens for.
func (s Subscription) Signal() Signal {
	return s.signal
}

// Bus errors.
var (
	// ErrNilListener is returned when a nil listener is registered.
	ErrNilListener = errors.New("bus: listener cannot be nil")

	// ErrInvalidSignal is returned for a signal outside the closed set.
	ErrInvalidSignal = errors.New("bus: invalid signal")

	// ErrSubscriptionNotFound is returned when removing an unknown
	// subscription.
	ErrSubscriptionNotFound = errors.New("bus: subscription not found")
)

// ListenerError reports a panic raised inside a listener during emission.
// It is routed to the bus's error handler and never propagated to the
// emitter.
type ListenerError struct {
	// Signal is the signal being emitted when the listener failed.
	Signal Signal

	// Recovered is the value recovered from the listener's panic.
	Recovered any
}

// Error implements the error interface.
func (e *ListenerError) Error() string {
	return fmt.Sprintf("bus: listener panic during %s: %v", e.Signal, e.Recovered)
}

// ErrorHandler receives listener failures. Handlers must not panic.
type ErrorHandler func(err *ListenerError)

// Option configures a Bus.
type Option func(*Bus)

// WithErrorHandler replaces the default error handler, which logs via the
// standard logger.
func WithErrorHandler(h ErrorHandler) Option {
	return func(b *Bus) {
		if h != nil {
			b.errHandler = h
		}
	}
}

type entry struct {
	id uint64
	fn Listener
}

// Bus dispatches visibility signals to registered listeners. Listeners for
// a signal run synchronously in registration order; one listener's failure
// never prevents the remaining listeners in the same emission from running.
type Bus struct {
	mu         sync.RWMutex
	next       uint64
	listeners  [signalCount][]entry
	errHandler ErrorHandler
}

// New creates a visibility bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		errHandler: func(err *ListenerError) {
			log.Printf("%v", err)
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// On registers a listener for a signal and returns its subscription handle.
func (b *Bus) On(sig Signal, fn Listener) (Subscription, error) {
	if !sig.IsValid() {
		return Subscription{}, ErrInvalidSignal
	}
	if fn == nil {
		return Subscription{}, ErrNilListener
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	b.listeners[sig] = append(b.listeners[sig], entry{id: b.next, fn: fn})
	return Subscription{signal: sig, id: b.next}, nil
}

// Off removes a previously registered listener.
func (b *Bus) Off(sub Subscription) error {
	if !sub.signal.IsValid() {
		return ErrInvalidSignal
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.listeners[sub.signal]
	for i, e := range entries {
		if e.id == sub.id {
			b.listeners[sub.signal] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Emit invokes every currently-registered listener for the signal,
// synchronously, in registration order. Listener panics are recovered,
// handed to the error handler, and never reach the caller.
func (b *Bus) Emit(sig Signal) {
	if !sig.IsValid() {
		return
	}

	b.mu.RLock()
	entries := make([]entry, len(b.listeners[sig]))
	copy(entries, b.listeners[sig])
	handler := b.errHandler
	b.mu.RUnlock()

	for _, e := range entries {
		b.invoke(sig, e.fn, handler)
	}
}

// invoke runs one listener with panic isolation.
func (b *Bus) invoke(sig Signal, fn Listener, handler ErrorHandler) {
	defer func() {
		if r := recover(); r != nil {
			handler(&ListenerError{Signal: sig, Recovered: r})
		}
	}()
	fn()
}

// Open emits SignalOpen.
func (b *Bus) Open() { b.Emit(SignalOpen) }

// Close emits SignalClose.
func (b *Bus) Close() { b.Emit(SignalClose) }

// Toggle emits SignalToggle.
func (b *Bus) Toggle() { b.Emit(SignalToggle) }

// ListenerCount returns the number of listeners for a signal.
func (b *Bus) ListenerCount(sig Signal) int {
	if !sig.IsValid() {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[sig])
}

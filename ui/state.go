// Package ui provides the core State type for reactive bindings.
//
// State[T] wraps a value and notifies bindings when it changes.
//
// Thread Safety Rules:
//   - Get() is safe to call from any goroutine
//   - Set() must only be called from the document's event loop
//
// Example usage:
//
//	open := ui.NewState(false)
//	open.Bind(func(v bool) {
//	    label.SetText(fmt.Sprintf("open: %v", v))
//	})
//	open.Update(func(v bool) bool { return !v })
package ui

import (
	"sync"

	"github.com/grindlemire/go-popover/internal/debug"
)

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// Dependency is anything an effect can re-run on.
type Dependency interface {
	Watch(fn func()) Unbind
}

// State wraps a value and notifies bindings when it changes.
type State[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
}

// binding represents a registered callback that fires when state changes.
type binding[T any] struct {
	fn     func(T)
	active bool
}

var _ Dependency = (*State[int])(nil)

// NewState creates a new state with the given initial value.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the current value. Thread-safe for reading from any goroutine.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all bindings, in registration order.
// Every Set notifies, even when the value is unchanged.
func (s *State[T]) Set(v T) {
	debug.Log("State.Set: setting value to %v", v)
	s.mu.Lock()
	s.value = v
	// Drop unbound bindings so they don't accumulate.
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	s.mu.Unlock()

	for _, b := range active {
		// A binding earlier in the list may unbind a later one.
		s.mu.RLock()
		live := b.active
		s.mu.RUnlock()
		if live {
			b.fn(v)
		}
	}
}

// Update applies a function to the current value and sets the result.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers a function to be called with the new value on every Set.
// Returns an Unbind handle to remove the binding.
func (s *State[T]) Bind(fn func(T)) Unbind {
	s.mu.Lock()
	b := &binding[T]{fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// Watch registers fn to be called on every Set, ignoring the value.
func (s *State[T]) Watch(fn func()) Unbind {
	return s.Bind(func(T) { fn() })
}

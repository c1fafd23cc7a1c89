package ui

import (
	"errors"
	"fmt"
)

// ErrNoProvider is the cause of every MissingProviderError.
var ErrNoProvider = errors.New("ui: no provider in scope")

// MissingProviderError is the panic value raised by Context.Must when no
// enclosing scope provides the context.
type MissingProviderError struct {
	Context string
}

func (e *MissingProviderError) Error() string {
	return fmt.Sprintf("ui: context %q used outside of its provider", e.Context)
}

func (e *MissingProviderError) Unwrap() error {
	return ErrNoProvider
}

// Context passes a typed value from a scope to all of its descendants
// without threading it through every Node.
type Context[T any] struct {
	name string
}

// NewContext creates a context. The name only appears in error messages.
func NewContext[T any](name string) *Context[T] {
	return &Context[T]{name: name}
}

// Provide makes v visible to o and every scope nested inside it.
// A nested Provide shadows outer ones.
func (c *Context[T]) Provide(o *Owner, v T) {
	o.setValue(c, v)
}

// Lookup returns the value from the nearest providing scope.
// ok is false when no scope provides the context.
func (c *Context[T]) Lookup(o *Owner) (v T, ok bool) {
	if o == nil {
		return v, false
	}
	raw, found := o.lookup(c)
	if !found {
		return v, false
	}
	return raw.(T), true
}

// Must returns the value from the nearest providing scope and panics with a
// *MissingProviderError when there is none.
func (c *Context[T]) Must(o *Owner) T {
	v, ok := c.Lookup(o)
	if !ok {
		panic(&MissingProviderError{Context: c.name})
	}
	return v
}

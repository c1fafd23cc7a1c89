package ui

import (
	"sync"

	"github.com/grindlemire/go-popover/dom"
)

// RefTarget receives the element a Node rendered to, and nil when the
// element's scope is disposed.
type RefTarget interface {
	Set(el *dom.Element)
}

// Ref is a reference to an Element, set when the element is attached and
// cleared when its scope is disposed. Thread-safe.
type Ref struct {
	mu    sync.RWMutex
	value *dom.Element
}

// NewRef creates a new empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// Set stores the element in this ref.
func (r *Ref) Set(v *dom.Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
}

// El returns the referenced element, or nil if not yet set.
func (r *Ref) El() *dom.Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref has been set to a non-nil element.
func (r *Ref) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value != nil
}

// RefFunc adapts a function to RefTarget.
type RefFunc func(el *dom.Element)

// Set calls f(el).
func (f RefFunc) Set(el *dom.Element) {
	f(el)
}

// MergeRefs combines several targets into one, so a single element can be
// owned by more than one behavior. Nil targets are skipped.
func MergeRefs(refs ...RefTarget) RefFunc {
	return func(el *dom.Element) {
		for _, r := range refs {
			if isNilTarget(r) {
				continue
			}
			r.Set(el)
		}
	}
}

func isNilTarget(r RefTarget) bool {
	switch t := r.(type) {
	case nil:
		return true
	case *Ref:
		return t == nil
	case RefFunc:
		return t == nil
	}
	return false
}

// WithRef captures the element in r when it is attached.
func WithRef(r RefTarget) dom.Option {
	return func(e *dom.Element) {
		if isNilTarget(r) {
			e.SetRef(nil)
			return
		}
		e.SetRef(r.Set)
	}
}

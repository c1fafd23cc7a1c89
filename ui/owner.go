package ui

import (
	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/internal/debug"
)

// Owner is a render scope. It holds context values visible to descendant
// scopes and the cleanups registered while rendering inside it.
type Owner struct {
	parent   *Owner
	doc      *dom.Document
	children []*Owner
	values   map[any]any
	cleanups []func()
	disposed bool
}

// NewOwner creates a root Owner bound to doc.
func NewOwner(doc *dom.Document) *Owner {
	if doc == nil {
		panic("ui: nil document in NewOwner")
	}
	return &Owner{doc: doc}
}

// Child creates a scope nested inside o. It is disposed with o.
func (o *Owner) Child() *Owner {
	c := &Owner{parent: o, doc: o.doc}
	o.children = append(o.children, c)
	return c
}

// Parent returns the enclosing scope, or nil for a root.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// Document returns the document this scope renders into.
func (o *Owner) Document() *dom.Document {
	return o.doc
}

// Disposed reports whether Dispose has run.
func (o *Owner) Disposed() bool {
	return o.disposed
}

// OnCleanup registers fn to run when o is disposed. Cleanups run in reverse
// registration order. Registering on a disposed Owner runs fn immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed {
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

// Dispose tears down child scopes (last created first), then runs this
// scope's cleanups. Every cleanup runs even if an earlier one panics; the
// first panic is re-raised once all of them have run.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	debug.Log("Owner.Dispose: children=%d cleanups=%d", len(o.children), len(o.cleanups))

	var first any
	run := func(fn func()) {
		defer func() {
			if r := recover(); r != nil && first == nil {
				first = r
			}
		}()
		fn()
	}

	children := o.children
	o.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		run(children[i].Dispose)
	}

	cleanups := o.cleanups
	o.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		run(cleanups[i])
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	if first != nil {
		panic(first)
	}
}

func (o *Owner) removeChild(c *Owner) {
	for i, other := range o.children {
		if other == c {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

func (o *Owner) setValue(key, value any) {
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

func (o *Owner) lookup(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

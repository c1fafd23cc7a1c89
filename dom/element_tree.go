package dom

// AppendChild appends children to this Element, detaching each from its
// previous parent first.
func (e *Element) AppendChild(children ...*Element) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = e
		e.children = append(e.children, child)
		child.setDocRecursive(e.doc)
	}
	e.MarkDirty()
}

// RemoveChild removes a child from this Element, keeping sibling order.
// Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c != child {
			continue
		}
		e.MarkDirty()
		e.children = append(e.children[:i], e.children[i+1:]...)
		child.detach()
		return true
	}
	return false
}

// RemoveAllChildren removes all children from this Element.
func (e *Element) RemoveAllChildren() {
	if len(e.children) == 0 {
		return
	}
	e.MarkDirty()
	children := e.children
	e.children = nil
	for _, child := range children {
		child.detach()
	}
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Document returns the owning document, or nil if the element is detached.
func (e *Element) Document() *Document {
	return e.doc
}

// IsConnected reports whether the element is attached to a document.
func (e *Element) IsConnected() bool {
	return e.doc != nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// QueryAll returns the descendants of e (not e itself) that satisfy match,
// in document order.
func (e *Element) QueryAll(match func(*Element) bool) []*Element {
	var out []*Element
	e.walkDescendants(func(el *Element) {
		if match(el) {
			out = append(out, el)
		}
	})
	return out
}

// Query returns the first descendant that satisfies match, or nil.
func (e *Element) Query(match func(*Element) bool) *Element {
	var found *Element
	e.walkDescendants(func(el *Element) {
		if found == nil && match(el) {
			found = el
		}
	})
	return found
}

// Closest returns the nearest ancestor-or-self that satisfies match, or nil.
func (e *Element) Closest(match func(*Element) bool) *Element {
	for n := e; n != nil; n = n.parent {
		if match(n) {
			return n
		}
	}
	return nil
}

// ByID matches elements with the given id.
func ByID(id string) func(*Element) bool {
	return func(e *Element) bool {
		return e.id == id
	}
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*Element) bool {
	return func(e *Element) bool {
		return e.tag == tag
	}
}

func (e *Element) walkDescendants(fn func(*Element)) {
	for _, child := range e.children {
		fn(child)
		child.walkDescendants(fn)
	}
}

func (e *Element) detach() {
	doc := e.doc
	e.parent = nil
	if doc != nil && doc.active != nil && e.Contains(doc.active) {
		doc.active.Blur()
	}
	e.setDocRecursive(nil)
}

func (e *Element) setDocRecursive(doc *Document) {
	e.doc = doc
	for _, child := range e.children {
		child.setDocRecursive(doc)
	}
}

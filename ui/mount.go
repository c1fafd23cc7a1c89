package ui

import "github.com/grindlemire/go-popover/dom"

// Root is a Node mounted into a document body.
type Root struct {
	doc   *dom.Document
	owner *Owner
	el    *dom.Element
}

// Mount renders n into doc's body and flushes the document.
func Mount(doc *dom.Document, n Node) *Root {
	o := NewOwner(doc)
	el := render(o, n)
	if el != nil {
		doc.Body().AppendChild(el)
	}
	doc.Flush()
	return &Root{doc: doc, owner: o, el: el}
}

// Element returns the mounted root element, or nil if n rendered nothing.
func (r *Root) Element() *dom.Element {
	return r.el
}

// Owner returns the root scope.
func (r *Root) Owner() *Owner {
	return r.owner
}

// Unmount disposes the root scope, removes the element and flushes.
// Cleanups run even if one of them panics; the element is removed either way.
func (r *Root) Unmount() {
	defer r.doc.Flush()
	defer func() {
		if r.el != nil {
			r.doc.Body().RemoveChild(r.el)
		}
	}()
	r.owner.Dispose()
}

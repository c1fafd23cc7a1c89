package dom

import "github.com/grindlemire/go-popover/internal/debug"

// IsFocusable reports whether the element can receive focus: form controls
// and anything carrying a tabindex attribute.
func (e *Element) IsFocusable() bool {
	switch e.tag {
	case "input", "button", "select", "textarea":
		return true
	}
	return e.HasAttr("tabindex")
}

// IsTabbable reports whether Tab navigation can land on the element.
func (e *Element) IsTabbable() bool {
	if !e.IsFocusable() {
		return false
	}
	if v, ok := e.Attr("tabindex"); ok && len(v) > 0 && v[0] == '-' {
		return false
	}
	return true
}

// IsFocused returns whether this element currently has focus.
func (e *Element) IsFocused() bool {
	return e.focused
}

// Focus makes this element the document's active element.
// Detached elements cannot take focus; the call is a no-op.
func (e *Element) Focus() {
	doc := e.doc
	if doc == nil {
		debug.Log("Element.Focus: tag=%s id=%q detached, ignoring", e.tag, e.id)
		return
	}
	if doc.active == e {
		return
	}
	if prev := doc.active; prev != nil {
		prev.Blur()
	}
	debug.Log("Element.Focus: tag=%s id=%q", e.tag, e.id)
	doc.active = e
	e.focused = true
	if e.onFocus != nil {
		e.onFocus(e)
	}
}

// Blur removes focus from this element if it has it.
func (e *Element) Blur() {
	if !e.focused {
		return
	}
	e.focused = false
	if e.doc != nil && e.doc.active == e {
		e.doc.active = nil
	}
	if e.onBlur != nil {
		e.onBlur(e)
	}
}

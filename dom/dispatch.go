package dom

import "github.com/grindlemire/go-popover/internal/debug"

// Click dispatches a click on el: the nearest ancestor-or-self with a click
// handler runs it. The document is flushed afterwards. Returns true if a
// handler ran.
func (d *Document) Click(el *Element) bool {
	if el == nil || el.doc != d {
		return false
	}
	handled := d.dispatchClick(el)
	d.Flush()
	return handled
}

// ClickAt hit-tests (x, y) and clicks the element found there.
func (d *Document) ClickAt(x, y float64) bool {
	target := d.ElementAt(x, y)
	debug.Log("Document.ClickAt: x=%v y=%v target=%v", x, y, target != nil)
	if target == nil {
		return false
	}
	return d.Click(target)
}

func (d *Document) dispatchClick(el *Element) bool {
	for n := el; n != nil; n = n.parent {
		if n.onClick != nil {
			debug.Log("Document.dispatchClick: tag=%s id=%q", n.tag, n.id)
			n.onClick(n)
			return true
		}
	}
	return false
}

// PressKey dispatches a keydown. The event goes to the focused element and
// bubbles through its ancestors, then to document listeners in registration
// order. Unless a handler called PreventDefault, the default action runs:
// Tab and Shift+Tab move focus through tabbable elements in document order,
// Enter and Space click the focused element. The document is flushed
// afterwards. Returns true if the default action was prevented.
func (d *Document) PressKey(ev KeyEvent) bool {
	target := d.active
	if target == nil {
		target = d.body
	}
	ev.Target = target
	e := &ev
	debug.Log("Document.PressKey: key=%s mod=%d target=%s", ev.Key, ev.Mod, target.tag)

	for n := target; n != nil && !e.propagationStopped; n = n.parent {
		if n.onKeyDown != nil {
			n.onKeyDown(n, e)
		}
	}

	if !e.propagationStopped {
		// Listeners may remove themselves (or others) while running.
		listeners := make([]*keyListener, len(d.listeners))
		copy(listeners, d.listeners)
		for _, l := range listeners {
			if l.active {
				l.fn(e)
			}
			if e.propagationStopped {
				break
			}
		}
	}

	if !e.defaultPrevented {
		d.defaultKeyAction(e)
	}
	d.Flush()
	return e.defaultPrevented
}

func (d *Document) defaultKeyAction(ev *KeyEvent) {
	switch {
	case ev.Key == KeyTab && ev.Mod.Has(ModShift):
		d.moveFocus(-1)
	case ev.Key == KeyTab:
		d.moveFocus(1)
	case ev.IsActivation() && d.active != nil:
		d.dispatchClick(d.active)
	}
}

// Tabbables returns every tabbable element in document order.
func (d *Document) Tabbables() []*Element {
	return d.body.QueryAll((*Element).IsTabbable)
}

// moveFocus moves focus by step through the tab order. Stepping past either
// end leaves the document with no active element.
func (d *Document) moveFocus(step int) {
	order := d.Tabbables()
	if len(order) == 0 {
		return
	}
	idx := -1
	for i, el := range order {
		if el == d.active {
			idx = i
			break
		}
	}

	var next int
	switch {
	case idx == -1 && step > 0:
		next = 0
	case idx == -1:
		next = len(order) - 1
	default:
		next = idx + step
	}

	if next < 0 || next >= len(order) {
		if d.active != nil {
			d.active.Blur()
		}
		return
	}
	order[next].Focus()
}

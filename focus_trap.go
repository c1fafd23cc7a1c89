package popover

import (
	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/internal/debug"
	"github.com/grindlemire/go-popover/ui"
)

// focusSelector lists what the trap treats as focusable: "input, button,
// [tabindex]". Other form controls are not included.
func focusSelector(e *dom.Element) bool {
	switch e.Tag() {
	case "input", "button":
		return true
	}
	return e.HasAttr("tabindex")
}

// UseFocusTrap keeps forward Tab inside an element while o is mounted.
// Attach the returned ref to the element.
//
// Once the element is committed its first focusable descendant takes focus.
// A Tab pressed on the last focusable descendant moves focus back to the
// first instead of leaving. Shift+Tab is left alone, and focus is not
// restored anywhere when o is disposed.
func UseFocusTrap(o *ui.Owner) *ui.Ref {
	ref := ui.NewRef()

	ui.Effect(o, func() ui.Cleanup {
		root := ref.El()
		if root == nil || !root.IsConnected() {
			return nil
		}
		doc := root.Document()

		if first := root.Query(focusSelector); first != nil {
			first.Focus()
		}

		remove := doc.AddKeyDownListener(func(ev *dom.KeyEvent) {
			if ev.Key != dom.KeyTab || ev.Mod.Has(dom.ModShift) {
				return
			}
			items := root.QueryAll(focusSelector)
			if len(items) == 0 {
				return
			}
			if doc.ActiveElement() != items[len(items)-1] {
				return
			}
			debug.Log("popover.UseFocusTrap: wrapping to first of %d", len(items))
			ev.PreventDefault()
			items[0].Focus()
		})
		return ui.Cleanup(remove)
	})

	return ref
}

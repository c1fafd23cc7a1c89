package popover

import (
	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/internal/debug"
	"github.com/grindlemire/go-popover/ui"
)

// Trigger wraps one child element. Activating it measures the element,
// records that geometry as the anchor and toggles the panel.
//
// The click handler and ref injected into child replace any it declared.
func Trigger(child ui.Node) ui.Node {
	return ui.NodeFunc(func(o *ui.Owner) *dom.Element {
		s := mustScope(o, "Trigger")
		ref := ui.NewRef()

		onClick := func(*dom.Element) {
			el := ref.El()
			if el == nil {
				return
			}
			rect := el.BoundingClientRect()
			debug.Log("popover.Trigger: anchor=%+v", rect)
			s.SetAnchorRect(rect)
			s.Toggle()
		}
		return ui.Augment(child, ui.Props{OnClick: onClick, Ref: ref}).Render(o)
	})
}

package popover

import (
	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/ui"
)

// Close wraps one child element. Activating it closes the panel.
//
// The click handler injected into child replaces any it declared.
func Close(child ui.Node) ui.Node {
	return ui.NodeFunc(func(o *ui.Owner) *dom.Element {
		s := mustScope(o, "Close")
		return ui.Augment(child, ui.Props{
			OnClick: func(*dom.Element) { s.SetOpen(false) },
		}).Render(o)
	})
}

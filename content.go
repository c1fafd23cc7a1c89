package popover

import (
	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/internal/debug"
	"github.com/grindlemire/go-popover/ui"
)

// panelPadding keeps panel content clear of the frame drawn around it.
const panelPadding = 16

// Content renders children in a floating panel while the popover is open,
// and nothing while it is closed. The panel is mounted fresh on every open.
func Content(children ...ui.Node) ui.Node {
	return ui.NodeFunc(func(o *ui.Owner) *dom.Element {
		s := mustScope(o, "Content")
		return ui.Show(s.open, panel(s, children)).Render(o)
	})
}

// panel is the positioned element behind Content. It places itself after
// every layout that follows an anchor change and traps focus while mounted.
func panel(s *Scope, children []ui.Node) ui.Node {
	return ui.NodeFunc(func(o *ui.Owner) *dom.Element {
		placeRef := ui.NewRef()
		trapRef := UseFocusTrap(o)

		ui.LayoutEffect(o, func() ui.Cleanup {
			el := placeRef.El()
			if el == nil || !el.IsConnected() {
				return nil
			}
			viewportHeight := el.Document().Viewport().Height
			c := Place(s.AnchorRect(), el.BoundingClientRect(), s.Placement(), viewportHeight)
			debug.Log("popover.panel: placed at left=%v top=%v", c.Left, c.Top)
			el.SetOffset(c.Left, c.Top)
			return nil
		}, s.anchor)

		return ui.H("dialog",
			dom.WithAttr("open", ""),
			dom.WithPosition(dom.PositionFixed),
			dom.WithMargin(0),
			dom.WithPadding(panelPadding),
			ui.WithRef(ui.MergeRefs(placeRef, trapRef)),
			children,
		).Render(o)
	})
}

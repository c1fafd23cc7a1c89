package ui

import "github.com/grindlemire/go-popover/dom"

// Props are the handlers Augment injects into a child element.
type Props struct {
	OnClick func(*dom.Element)
	Ref     RefTarget
}

// Augment renders exactly one child and injects p into its root element.
//
// Injected props replace what the child already declared: a child OnClick
// or ref set through WithRef is overwritten, not chained. Callers that need
// both should combine them before handing the child over (MergeRefs for refs).
func Augment(child Node, p Props) Node {
	return NodeFunc(func(o *Owner) *dom.Element {
		el := child.Render(o)
		if el == nil {
			return nil
		}
		if p.OnClick != nil {
			el.SetOnClick(p.OnClick)
		}
		if !isNilTarget(p.Ref) {
			el.SetRef(p.Ref.Set)
		}
		return el
	})
}

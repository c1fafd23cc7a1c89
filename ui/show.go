package ui

import (
	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/internal/debug"
)

// Show renders child only while when is true. Each time when turns true the
// child is rendered fresh inside a new scope; when it turns false that scope
// is disposed and the child's elements are removed.
//
// Show renders to an empty "slot" element that holds the child while mounted.
func Show(when *State[bool], child Node) Node {
	return NodeFunc(func(o *Owner) *dom.Element {
		slot := dom.New("slot")
		var mounted *Owner

		mount := func() {
			if mounted != nil {
				return
			}
			debug.Log("Show: mounting child")
			mounted = o.Child()
			if el := render(mounted, child); el != nil {
				slot.AppendChild(el)
			}
		}
		unmount := func() {
			if mounted == nil {
				return
			}
			debug.Log("Show: unmounting child")
			scope := mounted
			mounted = nil
			defer slot.RemoveAllChildren()
			scope.Dispose()
		}

		unbind := when.Bind(func(v bool) {
			if v {
				mount()
			} else {
				unmount()
			}
		})
		o.OnCleanup(func() {
			unbind()
			unmount()
		})

		if when.Get() {
			mount()
		}
		return slot
	})
}

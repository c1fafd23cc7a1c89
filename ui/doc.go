// Package ui provides the composition runtime used to build widgets on top of
// a dom.Document.
//
// A Node is a declaration: rendering it inside an Owner produces a
// *dom.Element. Owners form a tree mirroring component nesting; they carry
// context values and the cleanups of everything created while rendering.
// Disposing an Owner releases its subtree: effects are torn down, refs are
// cleared and listeners registered by effects are removed.
//
// Example:
//
//	open := ui.NewState(false)
//	root := ui.Mount(doc, ui.Div(
//	    ui.Button("toggle", dom.WithOnClick(func(*dom.Element) {
//	        open.Update(func(v bool) bool { return !v })
//	    })),
//	    ui.Show(open, ui.Text("hello")),
//	))
//	defer root.Unmount()
package ui

// Package popover provides a disclosure widget: a trigger toggles a floating
// panel anchored below it, flipped above when it would overflow the viewport.
// While the panel is open, forward Tab wraps focus inside it.
//
// Popover, Trigger, Content and Close compose around caller markup:
//
//	popover.Popover(
//	    popover.Trigger(ui.Button("Settings")),
//	    popover.Content(
//	        ui.Input(),
//	        popover.Close(ui.Button("Done")),
//	    ),
//	)
//
// Each Popover owns an independent Scope. Sub-parts find it through the
// render scope, so they can sit at any depth below their Popover.
package popover

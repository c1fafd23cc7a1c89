package popover

import (
	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/internal/debug"
	"github.com/grindlemire/go-popover/ui"
)

// Scope is the state one Popover shares with its Trigger, Content and Close.
type Scope struct {
	open      *ui.State[bool]
	anchor    *ui.State[dom.Rect]
	placement Placement
}

var scopeContext = ui.NewContext[*Scope]("popover")

func newScope(p Placement) *Scope {
	return &Scope{
		open:      ui.NewState(false),
		anchor:    ui.NewState(dom.Rect{}),
		placement: p,
	}
}

// UseScope returns the scope of the nearest enclosing Popover.
// It panics with a *UsageError when there is none.
func UseScope(o *ui.Owner) *Scope {
	return mustScope(o, "UseScope")
}

func mustScope(o *ui.Owner, op string) *Scope {
	s, ok := scopeContext.Lookup(o)
	if !ok {
		panic(&UsageError{Op: op})
	}
	return s
}

// IsOpen reports whether the panel is open.
func (s *Scope) IsOpen() bool {
	return s.open.Get()
}

// SetOpen opens or closes the panel.
func (s *Scope) SetOpen(open bool) {
	debug.Log("popover.Scope.SetOpen: %v", open)
	s.open.Set(open)
}

// Toggle flips the open flag.
func (s *Scope) Toggle() {
	s.SetOpen(!s.IsOpen())
}

// Placement returns the preferred placement. It never changes.
func (s *Scope) Placement() Placement {
	return s.placement
}

// AnchorRect returns the trigger geometry measured on the last activation,
// or the zero Rect before the first.
func (s *Scope) AnchorRect() dom.Rect {
	return s.anchor.Get()
}

// SetAnchorRect records the trigger geometry.
func (s *Scope) SetAnchorRect(r dom.Rect) {
	s.anchor.Set(r)
}

// OnOpenChange calls fn with the new value whenever the open flag is set.
func (s *Scope) OnOpenChange(fn func(bool)) ui.Unbind {
	return s.open.Bind(fn)
}

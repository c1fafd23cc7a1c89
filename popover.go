package popover

import (
	"fmt"

	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/ui"
)

// Option configures a Popover.
type Option func(*config)

type config struct {
	placement Placement
	onScope   func(*Scope)
}

// WithPlacement sets the preferred placement. The default is BottomCenter.
func WithPlacement(p Placement) Option {
	return func(c *config) {
		c.placement = p
	}
}

// WithScope hands the popover's Scope to fn when it is rendered, for callers
// that drive the popover from outside its subtree.
func WithScope(fn func(*Scope)) Option {
	return func(c *config) {
		c.onScope = fn
	}
}

// Popover declares a popover. Arguments are Options, ui.Nodes and []ui.Node;
// the nodes are rendered inside a "div" with a data-popover attribute, and
// every Trigger, Content and Close among their descendants shares this
// popover's Scope.
func Popover(args ...any) ui.Node {
	var (
		cfg      config
		children []ui.Node
	)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Option:
			v(&cfg)
		case ui.Node:
			children = append(children, v)
		case []ui.Node:
			children = append(children, v...)
		default:
			panic(fmt.Sprintf("popover.Popover: unsupported argument type %T", arg))
		}
	}

	return ui.NodeFunc(func(o *ui.Owner) *dom.Element {
		s := newScope(cfg.placement)
		if cfg.onScope != nil {
			cfg.onScope(s)
		}
		inner := o.Child()
		scopeContext.Provide(inner, s)
		return ui.H("div", dom.WithAttr("data-popover", s.placement.String()), children).Render(inner)
	})
}

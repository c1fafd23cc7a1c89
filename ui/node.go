package ui

import (
	"fmt"

	"github.com/grindlemire/go-popover/dom"
)

// Node is a declaration that renders to an element inside an Owner.
type Node interface {
	Render(o *Owner) *dom.Element
}

// NodeFunc adapts a function to Node.
type NodeFunc func(o *Owner) *dom.Element

// Render calls f(o).
func (f NodeFunc) Render(o *Owner) *dom.Element {
	return f(o)
}

type elementNode struct {
	tag      string
	opts     []dom.Option
	children []Node
}

// H declares an element. Arguments may be dom.Option, Node, []Node or string
// (text content); nil arguments are skipped. Any other type panics.
func H(tag string, args ...any) Node {
	n := &elementNode{tag: tag}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case dom.Option:
			n.opts = append(n.opts, v)
		case Node:
			n.children = append(n.children, v)
		case []Node:
			n.children = append(n.children, v...)
		case string:
			n.opts = append(n.opts, dom.WithText(v))
		default:
			panic(fmt.Sprintf("ui.H(%q): unsupported argument type %T", tag, arg))
		}
	}
	return n
}

// Render creates a fresh element and renders its children into it.
func (n *elementNode) Render(o *Owner) *dom.Element {
	el := dom.New(n.tag, n.opts...)
	for _, child := range n.children {
		if ce := render(o, child); ce != nil {
			el.AppendChild(ce)
		}
	}
	return el
}

// Div declares a div element.
func Div(args ...any) Node {
	return H("div", args...)
}

// Button declares a button element.
func Button(args ...any) Node {
	return H("button", args...)
}

// Input declares an input element.
func Input(args ...any) Node {
	return H("input", args...)
}

// Text declares a span holding s.
func Text(s string) Node {
	return H("span", dom.WithText(s))
}

// render renders n in o and binds the element's ref to o's lifetime.
func render(o *Owner, n Node) *dom.Element {
	if n == nil {
		return nil
	}
	el := n.Render(o)
	if el == nil {
		return nil
	}
	if ref := el.Ref(); ref != nil {
		ref(el)
		o.OnCleanup(func() { ref(nil) })
	}
	return el
}

// Package snapshot draws a laid-out document as a character grid.
//
// One cell covers one character of the document's text metrics, so an 8x16
// pixel cell maps a default-metrics document onto a terminal 1:1.
package snapshot

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-popover/dom"
)

// Capture paints doc into a grid sized to its viewport. In-flow elements are
// painted first in document order, then each fixed-position layer on top.
// Panels ("dialog") get a rounded frame on their outer edge.
func Capture(doc *dom.Document) *Grid {
	m := doc.TextMetrics()
	vp := doc.Viewport()
	p := &painter{
		grid:   NewGrid(int(vp.Width/m.CharWidth), int(vp.Height/m.LineHeight)),
		m:      m,
		active: doc.ActiveElement(),
		frame:  CharsOf(lipgloss.RoundedBorder()),
	}

	var layers []*dom.Element
	p.paint(doc.Body(), &layers)
	for i := 0; i < len(layers); i++ {
		p.paint(layers[i], &layers)
	}
	return p.grid
}

type painter struct {
	grid   *Grid
	m      dom.TextMetrics
	active *dom.Element
	frame  BorderChars
}

// cells converts a pixel rect to a cell box.
func (p *painter) cells(r dom.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.Left / p.m.CharWidth))
	y = int(math.Floor(r.Top / p.m.LineHeight))
	w = int(math.Ceil(r.Right()/p.m.CharWidth)) - x
	h = int(math.Ceil(r.Bottom()/p.m.LineHeight)) - y
	return x, y, w, h
}

// paint draws el and its in-flow descendants. Fixed-position descendants are
// appended to layers instead.
func (p *painter) paint(el *dom.Element, layers *[]*dom.Element) {
	rect := el.BoundingClientRect()
	x, y, w, h := p.cells(rect)

	if el.Tag() == "dialog" {
		p.grid.Fill(x, y, w, h, Cell{Rune: ' ', Kind: KindPanel})
		p.grid.Box(x, y, w, h, p.frame, KindBorder)
	}

	if label, kind, ok := p.label(el); ok {
		tx := int(math.Floor((rect.Left + el.Padding()) / p.m.CharWidth))
		ty := int(math.Floor((rect.Top + el.Padding()) / p.m.LineHeight))
		p.grid.SetString(tx, ty, label, kind)
	}

	for _, child := range el.Children() {
		if child.Position() == dom.PositionFixed {
			*layers = append(*layers, child)
			continue
		}
		p.paint(child, layers)
	}
}

// label returns the text drawn for el.
func (p *painter) label(el *dom.Element) (string, Kind, bool) {
	kind := KindText
	if el.IsFocusable() {
		kind = KindControl
	}
	if el == p.active {
		kind = KindFocus
	}

	switch el.Tag() {
	case "button":
		return "[" + el.Text() + "]", kind, true
	case "input":
		text := []rune(el.Text())
		for len(text) < inputWidth {
			text = append(text, '_')
		}
		return string(text), kind, true
	}
	if el.Text() == "" {
		return "", kind, false
	}
	return el.Text(), kind, true
}

// inputWidth matches the intrinsic width dom gives an empty input.
const inputWidth = 20

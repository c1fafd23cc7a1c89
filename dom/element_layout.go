package dom

import "unicode/utf8"

// TextMetrics converts text into pixel sizes.
type TextMetrics struct {
	CharWidth  float64
	LineHeight float64
}

// DefaultTextMetrics matches a terminal cell of 8x16 pixels.
var DefaultTextMetrics = TextMetrics{CharWidth: 8, LineHeight: 16}

// inputChars is the intrinsic width of an empty input, in characters.
const inputChars = 20

// BoundingClientRect returns the element's border box in viewport coordinates
// as of the last layout pass. Detached elements report a zero Rect.
func (e *Element) BoundingClientRect() Rect {
	if e.doc == nil {
		return Rect{}
	}
	return e.rect
}

// measure computes the outer size of e and every descendant, bottom-up.
func (e *Element) measure(m TextMetrics) Size {
	var content Size
	add := func(s Size) {
		if e.direction == Row {
			if content.Width > 0 {
				content.Width += e.gap
			}
			content.Width += s.Width
			content.Height = max(content.Height, s.Height)
			return
		}
		if content.Height > 0 {
			content.Height += e.gap
		}
		content.Height += s.Height
		content.Width = max(content.Width, s.Width)
	}

	if ts := e.textSize(m); ts.Width > 0 || ts.Height > 0 {
		add(ts)
	}
	for _, child := range e.children {
		s := child.measure(m)
		if child.position == PositionFixed {
			continue
		}
		add(Size{Width: s.Width + 2*child.margin, Height: s.Height + 2*child.margin})
	}

	size := Size{
		Width:  content.Width + 2*e.padding,
		Height: content.Height + 2*e.padding,
	}
	if e.width > 0 {
		size.Width = e.width
	}
	if e.height > 0 {
		size.Height = e.height
	}
	e.measured = size
	return size
}

func (e *Element) textSize(m TextMetrics) Size {
	chars := utf8.RuneCountInString(e.text)
	switch {
	case e.tag == "input" && chars < inputChars:
		chars = inputChars
	case e.tag == "button":
		chars += 2 // brackets around the label
	case chars == 0:
		return Size{}
	}
	return Size{Width: float64(chars) * m.CharWidth, Height: m.LineHeight}
}

// place positions the children of e inside e.rect, top-down.
// measure must have run first.
func (e *Element) place(m TextMetrics) {
	x := e.rect.Left + e.padding
	y := e.rect.Top + e.padding
	advance := func(s Size) {
		if e.direction == Row {
			x += s.Width + e.gap
		} else {
			y += s.Height + e.gap
		}
	}

	if ts := e.textSize(m); ts.Width > 0 || ts.Height > 0 {
		advance(ts)
	}
	for _, child := range e.children {
		s := child.measured
		if child.position == PositionFixed {
			child.rect = NewRect(child.offsetX+child.margin, child.offsetY+child.margin, s.Width, s.Height)
			child.place(m)
			continue
		}
		child.rect = NewRect(x+child.margin, y+child.margin, s.Width, s.Height)
		child.place(m)
		advance(Size{Width: s.Width + 2*child.margin, Height: s.Height + 2*child.margin})
	}
}

// elementAt returns the deepest in-flow element under (x, y), skipping
// fixed-position subtrees which are hit-tested as separate layers.
func (e *Element) elementAt(x, y float64) *Element {
	if !e.rect.Contains(x, y) {
		return nil
	}
	for i := len(e.children) - 1; i >= 0; i-- {
		child := e.children[i]
		if child.position == PositionFixed {
			continue
		}
		if hit := child.elementAt(x, y); hit != nil {
			return hit
		}
	}
	return e
}

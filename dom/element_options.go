package dom

import "strconv"

// Option configures an Element.
type Option func(*Element)

// WithID sets the element id.
func WithID(id string) Option {
	return func(e *Element) {
		e.id = id
	}
}

// WithText sets the text content.
func WithText(text string) Option {
	return func(e *Element) {
		e.text = text
	}
}

// WithWidth sets a fixed width in pixels.
func WithWidth(px float64) Option {
	return func(e *Element) {
		e.width = px
	}
}

// WithHeight sets a fixed height in pixels.
func WithHeight(px float64) Option {
	return func(e *Element) {
		e.height = px
	}
}

// WithSize sets both width and height in pixels.
func WithSize(width, height float64) Option {
	return func(e *Element) {
		e.width = width
		e.height = height
	}
}

// WithDirection sets the axis children are stacked along.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.direction = d
	}
}

// WithGap sets the space between in-flow children.
func WithGap(px float64) Option {
	return func(e *Element) {
		e.gap = px
	}
}

// WithPadding sets the padding on all four sides.
func WithPadding(px float64) Option {
	return func(e *Element) {
		e.padding = px
	}
}

// WithMargin sets the margin on all four sides.
func WithMargin(px float64) Option {
	return func(e *Element) {
		e.margin = px
	}
}

// WithPosition sets how the element takes part in layout.
func WithPosition(p Position) Option {
	return func(e *Element) {
		e.position = p
	}
}

// WithOffset sets the fixed-position offset from the viewport origin.
func WithOffset(left, top float64) Option {
	return func(e *Element) {
		e.offsetX = left
		e.offsetY = top
	}
}

// WithAttr sets an attribute.
func WithAttr(name, value string) Option {
	return func(e *Element) {
		e.SetAttr(name, value)
	}
}

// WithTabIndex sets the tabindex attribute. Any tabindex makes the element
// focusable; a negative one keeps it out of Tab order.
func WithTabIndex(n int) Option {
	return func(e *Element) {
		e.SetAttr("tabindex", strconv.Itoa(n))
	}
}

// WithOnClick sets the click handler.
func WithOnClick(fn func(*Element)) Option {
	return func(e *Element) {
		e.onClick = fn
	}
}

// WithOnKeyDown sets the keydown handler.
func WithOnKeyDown(fn func(*Element, *KeyEvent)) Option {
	return func(e *Element) {
		e.onKeyDown = fn
	}
}

// WithOnFocus sets the focus handler.
func WithOnFocus(fn func(*Element)) Option {
	return func(e *Element) {
		e.onFocus = fn
	}
}

// WithOnBlur sets the blur handler.
func WithOnBlur(fn func(*Element)) Option {
	return func(e *Element) {
		e.onBlur = fn
	}
}

package dom

// Direction specifies the axis children are stacked along.
type Direction int

const (
	// Column stacks children top to bottom (default).
	Column Direction = iota
	// Row stacks children left to right.
	Row
)

// Position specifies how an element takes part in layout.
type Position int

const (
	// PositionStatic places the element in normal flow (default).
	PositionStatic Position = iota
	// PositionFixed removes the element from flow and places it at its
	// offset relative to the viewport origin.
	PositionFixed
)

// Element is a node in a Document tree.
type Element struct {
	// Tree structure
	tag      string
	id       string
	attrs    map[string]string
	text     string
	children []*Element
	parent   *Element
	doc      *Document

	// Layout properties (0 width/height = intrinsic)
	width     float64
	height    float64
	direction Direction
	gap       float64
	padding   float64
	margin    float64
	position  Position
	offsetX   float64
	offsetY   float64

	// Layout results
	measured Size
	rect     Rect

	// Focus
	focused bool
	onFocus func(*Element)
	onBlur  func(*Element)

	// Event handlers
	onClick   func(*Element)
	onKeyDown func(*Element, *KeyEvent)

	// Reference capture, invoked by the composition layer on attach/detach.
	ref func(*Element)
}

// New creates a new Element with the given tag and options.
// By default an Element sizes to its content and stacks children in a column.
func New(tag string, opts ...Option) *Element {
	e := &Element{tag: tag}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// ID returns the element's id, or "" if none was set.
func (e *Element) ID() string {
	return e.id
}

// Text returns the text content.
func (e *Element) Text() string {
	return e.text
}

// SetText updates the text content.
func (e *Element) SetText(content string) {
	e.text = content
	e.MarkDirty()
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttr removes an attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// Padding returns the inner spacing on every side, in pixels.
func (e *Element) Padding() float64 {
	return e.padding
}

// Position returns how the element takes part in layout.
func (e *Element) Position() Position {
	return e.position
}

// Offset returns the fixed-position offset from the viewport origin.
func (e *Element) Offset() (left, top float64) {
	return e.offsetX, e.offsetY
}

// SetOffset moves a fixed-position element. The change is applied on the
// next layout pass.
func (e *Element) SetOffset(left, top float64) {
	if e.offsetX == left && e.offsetY == top {
		return
	}
	e.offsetX = left
	e.offsetY = top
	e.MarkDirty()
}

// Ref returns the reference-capture callback, or nil.
func (e *Element) Ref() func(*Element) {
	return e.ref
}

// SetRef replaces the reference-capture callback.
func (e *Element) SetRef(fn func(*Element)) {
	e.ref = fn
}

// OnClick returns the click handler, or nil.
func (e *Element) OnClick() func(*Element) {
	return e.onClick
}

// SetOnClick replaces the click handler.
func (e *Element) SetOnClick(fn func(*Element)) {
	e.onClick = fn
}

// SetOnKeyDown replaces the keydown handler.
// The handler receives the element as its first parameter (self-inject).
func (e *Element) SetOnKeyDown(fn func(*Element, *KeyEvent)) {
	e.onKeyDown = fn
}

// SetOnFocus sets a handler that's called when this element gains focus.
func (e *Element) SetOnFocus(fn func(*Element)) {
	e.onFocus = fn
}

// SetOnBlur sets a handler that's called when this element loses focus.
func (e *Element) SetOnBlur(fn func(*Element)) {
	e.onBlur = fn
}

// MarkDirty schedules a layout pass on the owning document.
// Detached elements have nothing to lay out.
func (e *Element) MarkDirty() {
	if e.doc != nil {
		e.doc.dirty = true
	}
}

package dom

import (
	"github.com/grindlemire/go-popover/internal/debug"
)

// maxFlushPasses bounds layout/callback iterations in one Flush.
const maxFlushPasses = 16

// Document owns an element tree, the viewport and the active element.
type Document struct {
	body     *Element
	viewport Size
	metrics  TextMetrics
	active   *Element

	listeners      []*keyListener
	nextListenerID uint64

	layoutQueue []func()
	commitQueue []func()
	dirty       bool
	flushing    bool
}

type keyListener struct {
	id     uint64
	fn     func(*KeyEvent)
	active bool
}

// DocumentOption configures a Document.
type DocumentOption func(*Document)

// WithViewport sets the viewport size in pixels.
func WithViewport(width, height float64) DocumentOption {
	return func(d *Document) {
		d.viewport = Size{Width: width, Height: height}
	}
}

// WithTextMetrics overrides the text measurement used by layout.
func WithTextMetrics(m TextMetrics) DocumentOption {
	return func(d *Document) {
		d.metrics = m
	}
}

// NewDocument creates an empty document with a body element.
// The default viewport is 800x600 pixels.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{
		viewport: Size{Width: 800, Height: 600},
		metrics:  DefaultTextMetrics,
		dirty:    true,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.body = New("body")
	d.body.doc = d
	return d
}

// Body returns the root element.
func (d *Document) Body() *Element {
	return d.body
}

// Viewport returns the current viewport size.
func (d *Document) Viewport() Size {
	return d.viewport
}

// SetViewport resizes the viewport and flushes.
func (d *Document) SetViewport(width, height float64) {
	d.viewport = Size{Width: width, Height: height}
	d.dirty = true
	d.Flush()
}

// TextMetrics returns the text measurement used by layout.
func (d *Document) TextMetrics() TextMetrics {
	return d.metrics
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Element {
	return d.active
}

// AddKeyDownListener registers fn for every keydown dispatched on the
// document. The returned function removes the listener; calling it more than
// once is safe.
func (d *Document) AddKeyDownListener(fn func(*KeyEvent)) (remove func()) {
	d.nextListenerID++
	l := &keyListener{id: d.nextListenerID, fn: fn, active: true}
	d.listeners = append(d.listeners, l)
	debug.Log("Document.AddKeyDownListener: id=%d total=%d", l.id, len(d.listeners))

	return func() {
		if !l.active {
			return
		}
		l.active = false
		for i, other := range d.listeners {
			if other == l {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				break
			}
		}
		debug.Log("Document.removeKeyDownListener: id=%d total=%d", l.id, len(d.listeners))
	}
}

// ListenerCount returns the number of registered keydown listeners.
func (d *Document) ListenerCount() int {
	return len(d.listeners)
}

// AfterLayout queues fn to run after the next layout pass, before commit
// callbacks. Callbacks that change geometry trigger another layout pass.
func (d *Document) AfterLayout(fn func()) {
	d.layoutQueue = append(d.layoutQueue, fn)
}

// AfterCommit queues fn to run once layout has settled.
func (d *Document) AfterCommit(fn func()) {
	d.commitQueue = append(d.commitQueue, fn)
}

// Flush runs layout and queued callbacks until the tree settles.
// Calls made while a flush is already running return immediately; the work
// they would do is picked up by the running flush.
func (d *Document) Flush() {
	if d.flushing {
		return
	}
	d.flushing = true
	defer func() { d.flushing = false }()

	for pass := 0; pass < maxFlushPasses; pass++ {
		if !d.dirty && len(d.layoutQueue) == 0 && len(d.commitQueue) == 0 {
			return
		}
		if d.dirty {
			d.layout()
		}
		if len(d.layoutQueue) > 0 {
			queue := d.layoutQueue
			d.layoutQueue = nil
			for _, fn := range queue {
				fn()
			}
			continue
		}
		queue := d.commitQueue
		d.commitQueue = nil
		for _, fn := range queue {
			fn()
		}
	}
	debug.Log("Document.Flush: tree did not settle after %d passes", maxFlushPasses)
}

func (d *Document) layout() {
	d.body.measure(d.metrics)
	d.body.measured = d.viewport
	d.body.rect = NewRect(0, 0, d.viewport.Width, d.viewport.Height)
	d.body.place(d.metrics)
	d.dirty = false
}

// ElementAt returns the deepest element under (x, y). Fixed-position layers
// are tested first, topmost (last in document order) wins.
func (d *Document) ElementAt(x, y float64) *Element {
	fixed := d.body.QueryAll(func(e *Element) bool {
		return e.position == PositionFixed
	})
	for i := len(fixed) - 1; i >= 0; i-- {
		if hit := fixed[i].elementAt(x, y); hit != nil {
			return hit
		}
	}
	return d.body.elementAt(x, y)
}

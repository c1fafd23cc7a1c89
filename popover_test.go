package popover

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/ui"
)

// scene mounts one popover whose trigger sits at (100, 100):
//
//	trigger  "Open"   48x16
//	panel    f0 input, f1 button, close button, 192x80 with padding
type scene struct {
	doc   *dom.Document
	root  *ui.Root
	scope *Scope
}

func newScene(t *testing.T, docOpts []dom.DocumentOption, opts ...any) *scene {
	t.Helper()
	s := &scene{doc: dom.NewDocument(docOpts...)}
	args := append([]any{WithScope(func(sc *Scope) { s.scope = sc })}, opts...)
	args = append(args,
		Trigger(ui.Button(dom.WithID("trigger"), "Open")),
		Content(
			ui.Input(dom.WithID("f0")),
			ui.Button(dom.WithID("f1"), "b"),
			Close(ui.Button(dom.WithID("close"), "Close")),
		),
	)
	s.root = ui.Mount(s.doc, ui.Div(dom.WithPadding(100), Popover(args...)))
	if s.scope == nil {
		t.Fatal("scope was not handed out")
	}
	return s
}

func (s *scene) el(id string) *dom.Element {
	return s.doc.Body().Query(dom.ByID(id))
}

func (s *scene) panel() *dom.Element {
	return s.doc.Body().Query(dom.ByTag("dialog"))
}

func (s *scene) activeID() string {
	if a := s.doc.ActiveElement(); a != nil {
		return a.ID()
	}
	return ""
}

func TestPopover_InitiallyClosed(t *testing.T) {
	s := newScene(t, nil)

	if s.scope.IsOpen() {
		t.Error("popover should start closed")
	}
	if s.panel() != nil {
		t.Error("no panel should render while closed")
	}
	if s.scope.AnchorRect() != (dom.Rect{}) {
		t.Errorf("AnchorRect() = %+v, want zero rect before the first activation", s.scope.AnchorRect())
	}
	if s.doc.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0 while closed", s.doc.ListenerCount())
	}
}

func TestPopover_TriggerOpensPlacedPanel(t *testing.T) {
	s := newScene(t, nil)

	s.doc.Click(s.el("trigger"))

	if !s.scope.IsOpen() {
		t.Fatal("trigger should open the popover")
	}
	if want := dom.NewRect(100, 100, 48, 16); s.scope.AnchorRect() != want {
		t.Errorf("AnchorRect() = %+v, want %+v", s.scope.AnchorRect(), want)
	}
	p := s.panel()
	if p == nil {
		t.Fatal("panel should render while open")
	}
	if !p.HasAttr("open") || p.Position() != dom.PositionFixed {
		t.Error("panel should be an open, fixed-position dialog")
	}
	if want := dom.NewRect(28, 126, 192, 80); p.BoundingClientRect() != want {
		t.Errorf("panel rect = %+v, want %+v", p.BoundingClientRect(), want)
	}
	if got := s.activeID(); got != "f0" {
		t.Errorf("active element = %q, want f0", got)
	}
	if s.doc.ListenerCount() != 1 {
		t.Errorf("ListenerCount() = %d, want 1 while open", s.doc.ListenerCount())
	}
}

func TestPopover_FlipsAboveNearViewportBottom(t *testing.T) {
	s := newScene(t, []dom.DocumentOption{dom.WithViewport(800, 200)})

	s.doc.Click(s.el("trigger"))

	if want := dom.NewRect(28, 10, 192, 80); s.panel().BoundingClientRect() != want {
		t.Errorf("panel rect = %+v, want %+v", s.panel().BoundingClientRect(), want)
	}
}

func TestPopover_StateMachine(t *testing.T) {
	type tc struct {
		clicks     []string
		wantOpen   bool
		wantAnchor dom.Rect
	}

	triggerRect := dom.NewRect(100, 100, 48, 16)

	tests := map[string]tc{
		"trigger opens":          {clicks: []string{"trigger"}, wantOpen: true, wantAnchor: triggerRect},
		"trigger twice closes":   {clicks: []string{"trigger", "trigger"}, wantOpen: false, wantAnchor: triggerRect},
		"close closes":           {clicks: []string{"trigger", "close"}, wantOpen: false, wantAnchor: triggerRect},
		"reopen after close":     {clicks: []string{"trigger", "close", "trigger"}, wantOpen: true, wantAnchor: triggerRect},
		"three toggles end open": {clicks: []string{"trigger", "trigger", "trigger"}, wantOpen: true, wantAnchor: triggerRect},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newScene(t, nil)
			for _, id := range tt.clicks {
				if !s.doc.Click(s.el(id)) {
					t.Fatalf("click on %q was not handled", id)
				}
			}
			if s.scope.IsOpen() != tt.wantOpen {
				t.Errorf("IsOpen() = %v, want %v", s.scope.IsOpen(), tt.wantOpen)
			}
			if (s.panel() != nil) != tt.wantOpen {
				t.Errorf("panel rendered = %v, want %v", s.panel() != nil, tt.wantOpen)
			}
			if s.scope.AnchorRect() != tt.wantAnchor {
				t.Errorf("AnchorRect() = %+v, want %+v", s.scope.AnchorRect(), tt.wantAnchor)
			}
			wantListeners := 0
			if tt.wantOpen {
				wantListeners = 1
			}
			if s.doc.ListenerCount() != wantListeners {
				t.Errorf("ListenerCount() = %d, want %d", s.doc.ListenerCount(), wantListeners)
			}
		})
	}
}

func TestPopover_CloseKeepsAnchor(t *testing.T) {
	s := newScene(t, nil)
	s.doc.Click(s.el("trigger"))
	s.scope.SetAnchorRect(dom.NewRect(300, 500, 100, 20))
	s.doc.Flush()

	s.doc.Click(s.el("close"))

	if want := dom.NewRect(300, 500, 100, 20); s.scope.AnchorRect() != want {
		t.Errorf("AnchorRect() after close = %+v, want %+v", s.scope.AnchorRect(), want)
	}
}

func TestPopover_CloseDoesNotRestoreFocus(t *testing.T) {
	s := newScene(t, nil)
	s.doc.Click(s.el("trigger"))
	s.el("close").Focus()

	s.doc.PressKey(dom.KeyEvent{Key: dom.KeyEnter})

	if s.scope.IsOpen() {
		t.Fatal("Enter on the close button should close the popover")
	}
	if got := s.activeID(); got != "" {
		t.Errorf("active element = %q, want none", got)
	}
}

func TestPopover_KeyboardActivation(t *testing.T) {
	s := newScene(t, nil)
	s.el("trigger").Focus()

	s.doc.PressKey(dom.KeyEvent{Key: dom.KeyRune, Rune: ' '})

	if !s.scope.IsOpen() {
		t.Error("Space on the trigger should open the popover")
	}
	if got := s.activeID(); got != "f0" {
		t.Errorf("active element = %q, want f0", got)
	}
}

func TestPopover_AnchorChangeReplacesPanel(t *testing.T) {
	s := newScene(t, nil)
	s.doc.Click(s.el("trigger"))

	s.scope.SetAnchorRect(dom.NewRect(300, 500, 100, 20))
	s.doc.Flush()

	if want := dom.NewRect(254, 410, 192, 80); s.panel().BoundingClientRect() != want {
		t.Errorf("panel rect = %+v, want %+v", s.panel().BoundingClientRect(), want)
	}
}

func TestPopover_SetOpenWithoutMeasurement(t *testing.T) {
	s := newScene(t, nil)

	s.scope.SetOpen(true)
	s.doc.Flush()

	if want := dom.NewRect(10, 10, 192, 80); s.panel().BoundingClientRect() != want {
		t.Errorf("panel rect = %+v, want %+v", s.panel().BoundingClientRect(), want)
	}
}

func TestPopover_PlacementOption(t *testing.T) {
	s := newScene(t, nil, WithPlacement(BottomRight))
	s.doc.Click(s.el("trigger"))

	if s.scope.Placement() != BottomRight {
		t.Errorf("Placement() = %v, want BottomRight", s.scope.Placement())
	}
	if v, _ := s.root.Element().Children()[0].Attr("data-popover"); v != "bottom-right" {
		t.Errorf("data-popover = %q, want bottom-right", v)
	}
	if want := dom.NewRect(28, 126, 192, 80); s.panel().BoundingClientRect() != want {
		t.Errorf("panel rect = %+v, want the bottom-center position %+v", s.panel().BoundingClientRect(), want)
	}
}

func TestPopover_OnOpenChange(t *testing.T) {
	s := newScene(t, nil)
	var got []bool
	unbind := s.scope.OnOpenChange(func(open bool) { got = append(got, open) })

	s.doc.Click(s.el("trigger"))
	s.doc.Click(s.el("close"))
	unbind()
	s.doc.Click(s.el("trigger"))

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("changes = %v, want [true false]", got)
	}
}

func TestPopover_UnmountWhileOpenReleasesListener(t *testing.T) {
	s := newScene(t, nil)
	s.doc.Click(s.el("trigger"))

	s.root.Unmount()

	if s.doc.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0 after unmount", s.doc.ListenerCount())
	}
	if len(s.doc.Body().Children()) != 0 {
		t.Error("body should be empty after unmount")
	}
}

func TestPopover_IndependentInstances(t *testing.T) {
	doc := dom.NewDocument()
	var a, b *Scope
	ui.Mount(doc, ui.Div(dom.WithDirection(dom.Row), dom.WithGap(200),
		Popover(WithScope(func(s *Scope) { a = s }),
			Trigger(ui.Button(dom.WithID("a"), "A")),
			Content(ui.Button(dom.WithID("a-item"), "a")),
		),
		Popover(WithScope(func(s *Scope) { b = s }),
			Trigger(ui.Button(dom.WithID("b"), "B")),
			Content(ui.Button(dom.WithID("b-item"), "b")),
		),
	))
	byID := func(id string) *dom.Element { return doc.Body().Query(dom.ByID(id)) }

	doc.Click(byID("a"))
	if !a.IsOpen() || b.IsOpen() {
		t.Fatalf("after opening A: a=%v b=%v, want true false", a.IsOpen(), b.IsOpen())
	}
	if byID("b-item") != nil {
		t.Error("B's content should not render")
	}

	doc.Click(byID("b"))
	if !a.IsOpen() || !b.IsOpen() {
		t.Fatalf("after opening B: a=%v b=%v, want both open", a.IsOpen(), b.IsOpen())
	}
	if a.AnchorRect() == b.AnchorRect() {
		t.Error("each popover should record its own anchor")
	}
	if doc.ListenerCount() != 2 {
		t.Errorf("ListenerCount() = %d, want 2", doc.ListenerCount())
	}

	doc.Click(byID("a"))
	if a.IsOpen() || !b.IsOpen() {
		t.Errorf("after closing A: a=%v b=%v, want false true", a.IsOpen(), b.IsOpen())
	}
	if doc.ListenerCount() != 1 {
		t.Errorf("ListenerCount() = %d, want 1", doc.ListenerCount())
	}
}

func TestPopover_Nested(t *testing.T) {
	doc := dom.NewDocument()
	var outer, inner *Scope
	ui.Mount(doc, ui.Div(
		Popover(WithScope(func(s *Scope) { outer = s }),
			Trigger(ui.Button(dom.WithID("outer"), "Outer")),
			Content(
				Popover(WithScope(func(s *Scope) { inner = s }),
					Trigger(ui.Button(dom.WithID("inner"), "Inner")),
					Content(Close(ui.Button(dom.WithID("inner-close"), "x"))),
				),
				Close(ui.Button(dom.WithID("outer-close"), "Done")),
			),
		),
	))
	byID := func(id string) *dom.Element { return doc.Body().Query(dom.ByID(id)) }

	doc.Click(byID("outer"))
	if inner == nil || inner == outer {
		t.Fatal("the nested popover should get its own scope")
	}
	doc.Click(byID("inner"))
	if !outer.IsOpen() || !inner.IsOpen() {
		t.Fatalf("outer=%v inner=%v, want both open", outer.IsOpen(), inner.IsOpen())
	}

	doc.Click(byID("inner-close"))
	if !outer.IsOpen() || inner.IsOpen() {
		t.Errorf("after inner close: outer=%v inner=%v, want true false", outer.IsOpen(), inner.IsOpen())
	}

	doc.Click(byID("outer-close"))
	if outer.IsOpen() {
		t.Error("outer close should close the outer popover")
	}
	if doc.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", doc.ListenerCount())
	}
}

func TestSubParts_OutsidePopoverPanic(t *testing.T) {
	type tc struct {
		node   ui.Node
		wantOp string
	}

	tests := map[string]tc{
		"Trigger": {node: Trigger(ui.Button("x")), wantOp: "Trigger"},
		"Content": {node: Content(ui.Button("x")), wantOp: "Content"},
		"Close":   {node: Close(ui.Button("x")), wantOp: "Close"},
		"UseScope": {
			node: ui.NodeFunc(func(o *ui.Owner) *dom.Element {
				UseScope(o)
				return dom.New("div")
			}),
			wantOp: "UseScope",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok {
					t.Fatal("expected an error panic")
				}
				var usage *UsageError
				if !errors.As(err, &usage) || usage.Op != tt.wantOp {
					t.Errorf("panic = %v, want UsageError for %s", err, tt.wantOp)
				}
				if !errors.Is(err, ErrOutsidePopover) {
					t.Error("panic should unwrap to ErrOutsidePopover")
				}
			}()
			ui.Mount(dom.NewDocument(), tt.node)
		})
	}
}

func TestPopover_UnsupportedArgumentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Popover with a string argument did not panic")
		}
	}()
	Popover("label")
}

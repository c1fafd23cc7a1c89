package main

import (
	"fmt"
	"strings"

	popover "github.com/grindlemire/go-popover"
	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/internal/config"
	"github.com/grindlemire/go-popover/internal/snapshot"
	"github.com/grindlemire/go-popover/ui"
)

// scene is the sample page: two independent popovers, each with a text
// input and a close button in its panel.
type scene struct {
	doc    *dom.Document
	root   *ui.Root
	scopes []*popover.Scope
}

const sceneSize = 2

func newScene(cfg *config.Config) (*scene, error) {
	side, err := cfg.PlacementValue()
	if err != nil {
		return nil, err
	}

	s := &scene{
		doc:    dom.NewDocument(dom.WithViewport(cfg.Viewport.Width, cfg.Viewport.Height)),
		scopes: make([]*popover.Scope, sceneSize),
	}

	items := make([]ui.Node, 0, sceneSize)
	for i := range sceneSize {
		n := i + 1
		items = append(items, popover.Popover(
			popover.WithPlacement(side),
			popover.WithScope(func(sc *popover.Scope) { s.scopes[i] = sc }),
			popover.Trigger(ui.Button(dom.WithID(fmt.Sprintf("trigger-%d", n)), "show popover")),
			popover.Content(
				ui.Input(dom.WithID(fmt.Sprintf("input-%d", n))),
				popover.Close(ui.Button(dom.WithID(fmt.Sprintf("close-%d", n)), "close")),
			),
		))
	}

	// Padding and gap are multiples of the line height so triggers start on
	// whole terminal rows.
	s.root = ui.Mount(s.doc, ui.Div(dom.WithPadding(16), dom.WithGap(16), items))
	return s, nil
}

func (s *scene) el(id string) *dom.Element {
	return s.doc.Body().Query(dom.ByID(id))
}

func (s *scene) click(id string) {
	if el := s.el(id); el != nil {
		s.doc.Click(el)
	}
}

func (s *scene) press(ev dom.KeyEvent) {
	s.doc.PressKey(ev)
}

// status summarizes each popover and the focused element on one line.
func (s *scene) status() string {
	parts := make([]string, 0, len(s.scopes)+1)
	for i, sc := range s.scopes {
		state := "closed"
		if sc.IsOpen() {
			state = "open"
		}
		parts = append(parts, fmt.Sprintf("popover %d: %s", i+1, state))
	}
	focus := "none"
	if a := s.doc.ActiveElement(); a != nil {
		focus = a.ID()
	}
	parts = append(parts, "focus: "+focus)
	return strings.Join(parts, " | ")
}

// view renders the document, styled unless plain is set.
func (s *scene) view(plain bool) string {
	g := snapshot.Capture(s.doc)
	if plain {
		return g.String()
	}
	return g.Render(snapshot.DefaultStyles())
}

package ui

import (
	"testing"

	"github.com/grindlemire/go-popover/dom"
)

func TestRef(t *testing.T) {
	r := NewRef()
	if r.IsSet() || r.El() != nil {
		t.Fatal("new ref should be empty")
	}
	el := dom.New("div")
	r.Set(el)
	if !r.IsSet() || r.El() != el {
		t.Error("ref should hold the element after Set")
	}
	r.Set(nil)
	if r.IsSet() {
		t.Error("ref should be empty after Set(nil)")
	}
}

func TestMergeRefs(t *testing.T) {
	type tc struct {
		targets func(a, b *Ref, seen *[]*dom.Element) []RefTarget
		wantA   bool
		wantB   bool
		wantFn  int
	}

	tests := map[string]tc{
		"fans out to every target": {
			targets: func(a, b *Ref, seen *[]*dom.Element) []RefTarget {
				return []RefTarget{a, b, RefFunc(func(el *dom.Element) { *seen = append(*seen, el) })}
			},
			wantA:  true,
			wantB:  true,
			wantFn: 1,
		},
		"skips nil targets": {
			targets: func(a, b *Ref, seen *[]*dom.Element) []RefTarget {
				var nilRef *Ref
				var nilFn RefFunc
				return []RefTarget{nil, nilRef, a, nilFn}
			},
			wantA: true,
		},
		"no targets": {
			targets: func(a, b *Ref, seen *[]*dom.Element) []RefTarget { return nil },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, b := NewRef(), NewRef()
			var seen []*dom.Element
			merged := MergeRefs(tt.targets(a, b, &seen)...)

			el := dom.New("dialog")
			merged.Set(el)

			if a.IsSet() != tt.wantA {
				t.Errorf("a.IsSet() = %v, want %v", a.IsSet(), tt.wantA)
			}
			if b.IsSet() != tt.wantB {
				t.Errorf("b.IsSet() = %v, want %v", b.IsSet(), tt.wantB)
			}
			if len(seen) != tt.wantFn {
				t.Errorf("func target called %d times, want %d", len(seen), tt.wantFn)
			}
		})
	}
}

func TestWithRef_SetOnRenderClearedOnDispose(t *testing.T) {
	doc := dom.NewDocument()
	r := NewRef()

	root := Mount(doc, Div(Button(WithRef(r), "ok")))
	if !r.IsSet() || r.El().Tag() != "button" {
		t.Fatalf("ref = %v, want the button", r.El())
	}
	if !r.El().IsConnected() {
		t.Error("ref element should be connected after Mount")
	}

	root.Unmount()
	if r.IsSet() {
		t.Error("ref should be cleared on unmount")
	}
}

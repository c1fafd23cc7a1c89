package popover

import (
	"fmt"

	"github.com/grindlemire/go-popover/dom"
)

// ViewportMargin is the gap, in pixels, kept between the panel and its
// anchor, and between the panel and the viewport edges.
const ViewportMargin = 10.0

// Placement is the preferred side of the anchor to open the panel on.
type Placement int

const (
	// BottomCenter centers the panel below the anchor.
	BottomCenter Placement = iota
	// BottomLeft is accepted but currently placed like BottomCenter.
	BottomLeft
	// BottomRight is accepted but currently placed like BottomCenter.
	BottomRight
)

var placementNames = map[Placement]string{
	BottomCenter: "bottom-center",
	BottomLeft:   "bottom-left",
	BottomRight:  "bottom-right",
}

// String returns the placement name.
func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

// ParsePlacement parses a name produced by Placement.String.
func ParsePlacement(s string) (Placement, error) {
	for p, name := range placementNames {
		if name == s {
			return p, nil
		}
	}
	return BottomCenter, fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
}

// Coords is a panel's top-left corner in viewport pixels.
type Coords struct {
	Left float64
	Top  float64
}

// Place computes where a panel of the given size opens relative to anchor.
//
// The panel sits ViewportMargin below the anchor, horizontally centered on it
// and clamped to ViewportMargin from the left edge. If its bottom would come
// within ViewportMargin of viewportHeight it flips above the anchor instead.
// There is no right-edge clamp and the flipped position is not re-checked.
// Only the panel's size is read, and every side currently shares the
// bottom-center rule.
func Place(anchor, panel dom.Rect, side Placement, viewportHeight float64) Coords {
	switch side {
	case BottomCenter:
		fallthrough
	default:
		return placeBottomCenter(anchor, panel, viewportHeight)
	}
}

func placeBottomCenter(anchor, panel dom.Rect, viewportHeight float64) Coords {
	top := anchor.Top + anchor.Height + ViewportMargin
	left := max(anchor.Left+anchor.Width/2-panel.Width/2, ViewportMargin)

	if top+panel.Height > viewportHeight-ViewportMargin {
		top = anchor.Top - ViewportMargin - panel.Height
	}
	return Coords{Left: left, Top: top}
}

package snapshot

import "strings"

// Kind classifies what a cell shows, so a renderer can style it.
type Kind uint8

const (
	KindBlank   Kind = iota // nothing painted
	KindText                // plain text
	KindControl             // focusable element label
	KindFocus               // the active element's label
	KindPanel               // panel background
	KindBorder              // panel frame
)

// Cell is one character of a snapshot.
type Cell struct {
	Rune rune
	Kind Kind
}

var blank = Cell{Rune: ' ', Kind: KindBlank}

// Grid is a fixed-size 2D array of cells, row major.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a blank grid. Negative sizes are treated as zero.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Width returns the grid width in columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in rows.
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Cell returns the cell at (x, y), or a blank cell out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	if !g.inBounds(x, y) {
		return blank
	}
	return g.cells[y*g.width+x]
}

// Set writes a cell. Writes out of bounds are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// SetString writes s starting at (x, y), clipped to the grid.
// Returns the number of columns consumed.
func (g *Grid) SetString(x, y int, s string, kind Kind) int {
	n := 0
	for _, r := range s {
		g.Set(x+n, y, Cell{Rune: r, Kind: kind})
		n++
	}
	return n
}

// Fill sets every cell of the box to c.
func (g *Grid) Fill(x, y, w, h int, c Cell) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			g.Set(col, row, c)
		}
	}
}

// Box draws a frame of the given size with its top-left corner at (x, y).
// Boxes smaller than 2x2 are not drawn.
func (g *Grid) Box(x, y, w, h int, chars BorderChars, kind Kind) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		g.Set(col, y, Cell{Rune: chars.Top, Kind: kind})
		g.Set(col, bottom, Cell{Rune: chars.Bottom, Kind: kind})
	}
	for row := y + 1; row < bottom; row++ {
		g.Set(x, row, Cell{Rune: chars.Left, Kind: kind})
		g.Set(right, row, Cell{Rune: chars.Right, Kind: kind})
	}
	g.Set(x, y, Cell{Rune: chars.TopLeft, Kind: kind})
	g.Set(right, y, Cell{Rune: chars.TopRight, Kind: kind})
	g.Set(x, bottom, Cell{Rune: chars.BottomLeft, Kind: kind})
	g.Set(right, bottom, Cell{Rune: chars.BottomRight, Kind: kind})
}

// Row returns row y as plain text.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[y*g.width : (y+1)*g.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the grid as plain text, one line per row, with trailing
// spaces and trailing blank lines removed.
func (g *Grid) String() string {
	lines := make([]string, g.usedRows())
	for y := range lines {
		lines[y] = strings.TrimRight(g.Row(y), " ")
	}
	return strings.Join(lines, "\n")
}

// usedRows returns the number of rows up to and including the last row with
// a painted cell.
func (g *Grid) usedRows() int {
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			if g.Cell(x, y).Kind != KindBlank {
				return y + 1
			}
		}
	}
	return 0
}

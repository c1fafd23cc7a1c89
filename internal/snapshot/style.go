package snapshot

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BorderChars holds the characters used to frame a panel.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// CharsOf converts a lipgloss border into single runes. Empty edges fall
// back to a space.
func CharsOf(b lipgloss.Border) BorderChars {
	first := func(s string) rune {
		for _, r := range s {
			return r
		}
		return ' '
	}
	return BorderChars{
		TopLeft:     first(b.TopLeft),
		Top:         first(b.Top),
		TopRight:    first(b.TopRight),
		Left:        first(b.Left),
		Right:       first(b.Right),
		BottomLeft:  first(b.BottomLeft),
		Bottom:      first(b.Bottom),
		BottomRight: first(b.BottomRight),
	}
}

// Styles maps each cell kind to a lipgloss style.
type Styles struct {
	Text    lipgloss.Style
	Control lipgloss.Style
	Focus   lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
}

var (
	primary     = lipgloss.Color("212")
	muted       = lipgloss.Color("241")
	panelBg     = lipgloss.Color("235")
	borderColor = lipgloss.Color("240")
)

// DefaultStyles returns the palette used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Control: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")),
		Focus: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(primary).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Foreground(muted).
			Background(panelBg),
		Border: lipgloss.NewStyle().
			Foreground(borderColor).
			Background(panelBg),
	}
}

func (s Styles) forKind(k Kind) (lipgloss.Style, bool) {
	switch k {
	case KindText:
		return s.Text, true
	case KindControl:
		return s.Control, true
	case KindFocus:
		return s.Focus, true
	case KindPanel:
		return s.Panel, true
	case KindBorder:
		return s.Border, true
	}
	return lipgloss.Style{}, false
}

// Render returns the grid with each run of same-kind cells styled.
// Blank cells are left unstyled and trailing blank rows are dropped.
func (g *Grid) Render(s Styles) string {
	lines := make([]string, g.usedRows())
	for y := range lines {
		var (
			line strings.Builder
			run  strings.Builder
			kind Kind
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := s.forKind(kind); ok {
				line.WriteString(st.Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < g.width; x++ {
			c := g.Cell(x, y)
			if c.Kind != kind {
				flush()
				kind = c.Kind
			}
			run.WriteRune(c.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/internal/debug"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the sample page in the terminal",
		Long: `Open the sample page in the terminal.

Click a trigger or focus it and press Enter or Space. Tab and Shift+Tab move
focus; q or ctrl+c quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Logging.File == "" {
				// stderr belongs to the terminal UI.
				debug.SetLogger(zerolog.Nop())
			}

			s, err := newScene(a.cfg)
			if err != nil {
				return err
			}
			defer s.root.Unmount()

			p := tea.NewProgram(newModel(s),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

// model hosts a scene inside a bubbletea program. One terminal cell maps to
// one character of the document's text metrics.
type model struct {
	scene *scene
}

func newModel(s *scene) *model {
	return &model{scene: s}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		if ev, ok := keyEvent(msg); ok {
			m.scene.press(ev)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		x, y := m.cellCenter(msg.X, msg.Y)
		m.scene.doc.ClickAt(x, y)

	case tea.WindowSizeMsg:
		mt := m.scene.doc.TextMetrics()
		// The last row is the status line.
		rows := max(msg.Height-1, 1)
		m.scene.doc.SetViewport(float64(msg.Width)*mt.CharWidth, float64(rows)*mt.LineHeight)
	}
	return m, nil
}

func (m *model) View() string {
	return m.scene.view(false) + "\n" + statusStyle.Render(m.scene.status()+" | q to quit")
}

// cellCenter converts a terminal cell to the document point at its center.
func (m *model) cellCenter(col, row int) (x, y float64) {
	mt := m.scene.doc.TextMetrics()
	return (float64(col) + 0.5) * mt.CharWidth, (float64(row) + 0.5) * mt.LineHeight
}

// keyEvent translates a bubbletea key into a document keydown.
func keyEvent(msg tea.KeyMsg) (dom.KeyEvent, bool) {
	var ev dom.KeyEvent
	if msg.Alt {
		ev.Mod |= dom.ModAlt
	}

	switch msg.Type {
	case tea.KeyTab:
		ev.Key = dom.KeyTab
	case tea.KeyShiftTab:
		ev.Key = dom.KeyTab
		ev.Mod |= dom.ModShift
	case tea.KeyEnter:
		ev.Key = dom.KeyEnter
	case tea.KeySpace:
		ev.Key, ev.Rune = dom.KeyRune, ' '
	case tea.KeyEsc:
		ev.Key = dom.KeyEscape
	case tea.KeyBackspace:
		ev.Key = dom.KeyBackspace
	case tea.KeyUp:
		ev.Key = dom.KeyUp
	case tea.KeyDown:
		ev.Key = dom.KeyDown
	case tea.KeyLeft:
		ev.Key = dom.KeyLeft
	case tea.KeyRight:
		ev.Key = dom.KeyRight
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return ev, false
		}
		ev.Key, ev.Rune = dom.KeyRune, msg.Runes[0]
	default:
		// Tab and Enter share codes with ctrl+i and ctrl+m and are matched above.
		if msg.Type < tea.KeyCtrlA || msg.Type > tea.KeyCtrlZ {
			return ev, false
		}
		ev.Key, ev.Rune = dom.KeyRune, 'a'+rune(msg.Type-tea.KeyCtrlA)
		ev.Mod |= dom.ModCtrl
	}
	return ev, true
}

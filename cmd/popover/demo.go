package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-popover/dom"
)

// demoStep is one scripted interaction.
type demoStep struct {
	title string
	do    func(*scene)
}

var demoSteps = []demoStep{
	{title: "initial page"},
	{title: "click the first trigger", do: func(s *scene) { s.click("trigger-1") }},
	{title: "tab to the close button", do: func(s *scene) { s.press(dom.KeyEvent{Key: dom.KeyTab}) }},
	{title: "tab wraps to the input", do: func(s *scene) { s.press(dom.KeyEvent{Key: dom.KeyTab}) }},
	{title: "click the second trigger", do: func(s *scene) { s.click("trigger-2") }},
	{title: "close the first popover", do: func(s *scene) { s.click("close-1") }},
	{title: "tab, then enter on close", do: func(s *scene) {
		s.press(dom.KeyEvent{Key: dom.KeyTab})
		s.press(dom.KeyEvent{Key: dom.KeyEnter})
	}},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newDemoCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print snapshots of a scripted session with two popovers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newScene(a.cfg)
			if err != nil {
				return err
			}
			defer s.root.Unmount()
			return runDemo(cmd.OutOrStdout(), s, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print without colors")
	return cmd
}

func runDemo(w io.Writer, s *scene, plain bool) error {
	for i, step := range demoSteps {
		if step.do != nil {
			step.do(s)
		}

		title := fmt.Sprintf("%d. %s", i+1, step.title)
		status := s.status()
		if !plain {
			title = titleStyle.Render(title)
			status = statusStyle.Render(status)
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n\n", title, s.view(plain), status); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	popover "github.com/grindlemire/go-popover"
	"github.com/grindlemire/go-popover/dom"
	"github.com/grindlemire/go-popover/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlaceCmd(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "popover.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[viewport]\nheight = 300\n"), 0o644))

	type tc struct {
		args    []string
		want    string
		wantErr error
	}

	tests := map[string]tc{
		"worked example": {
			args: []string{"place", "--anchor", "100,50,80,20", "--panel", "120,40", "--viewport-height", "800"},
			want: "left=80 top=80\n",
		},
		"viewport height from defaults": {
			args: []string{"place", "--anchor", "100,500,80,20", "--panel", "120,100"},
			want: "left=80 top=390\n",
		},
		"viewport height from config file": {
			args: []string{"--config", cfgPath, "place", "--anchor", "100,200,80,20", "--panel", "120,100"},
			want: "left=80 top=90\n",
		},
		"explicit placement": {
			args: []string{"place", "--anchor", "0,0,20,20", "--panel", "100,20", "--placement", "bottom-left"},
			want: "left=10 top=30\n",
		},
		"unknown placement": {
			args:    []string{"place", "--anchor", "0,0,20,20", "--panel", "100,20", "--placement", "top"},
			wantErr: popover.ErrUnknownPlacement,
		},
		"short anchor": {
			args: []string{"place", "--anchor", "0,0,20", "--panel", "100,20"},
		},
		"missing panel": {
			args: []string{"place", "--anchor", "0,0,20,20"},
		},
		"bad log level": {
			args: []string{"--log-level", "loud", "place", "--anchor", "0,0,20,20", "--panel", "1,1"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.want == "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDemoCmd_Plain(t *testing.T) {
	out, err := execute(t, "demo", "--plain")
	require.NoError(t, err)

	for _, want := range []string{
		"1. initial page",
		"[show popover]",
		"╭",
		"popover 1: open | popover 2: closed | focus: input-1",
		"popover 1: open | popover 2: closed | focus: close-1",
		"popover 1: open | popover 2: open | focus: input-2",
		"popover 1: closed | popover 2: closed | focus: none",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, len(demoSteps), strings.Count(out, "focus: "))
}

func TestRootCmd_LogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "popover.log")
	cfgPath := filepath.Join(dir, "popover.toml")
	cfg := "[logging]\nfile = \"" + filepath.ToSlash(logPath) + "\"\nlevel = \"debug\"\nformat = \"json\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := execute(t, "--config", cfgPath, "place", "--anchor", "100,50,80,20", "--panel", "120,40", "--viewport-height", "800")
	require.NoError(t, err)
	assert.Equal(t, "left=80 top=80\n", out)

	_, err = os.Stat(logPath)
	assert.NoError(t, err)
}

func TestKeyEvent(t *testing.T) {
	type tc struct {
		msg    tea.KeyMsg
		want   dom.KeyEvent
		wantOK bool
	}

	tests := map[string]tc{
		"tab":       {msg: tea.KeyMsg{Type: tea.KeyTab}, want: dom.KeyEvent{Key: dom.KeyTab}, wantOK: true},
		"shift tab": {msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: dom.KeyEvent{Key: dom.KeyTab, Mod: dom.ModShift}, wantOK: true},
		"enter":     {msg: tea.KeyMsg{Type: tea.KeyEnter}, want: dom.KeyEvent{Key: dom.KeyEnter}, wantOK: true},
		"space":     {msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: dom.KeyEvent{Key: dom.KeyRune, Rune: ' '}, wantOK: true},
		"escape":    {msg: tea.KeyMsg{Type: tea.KeyEsc}, want: dom.KeyEvent{Key: dom.KeyEscape}, wantOK: true},
		"rune":      {msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, want: dom.KeyEvent{Key: dom.KeyRune, Rune: 'x'}, wantOK: true},
		"alt rune": {
			msg:    tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			want:   dom.KeyEvent{Key: dom.KeyRune, Rune: 'x', Mod: dom.ModAlt},
			wantOK: true,
		},
		"ctrl a":   {msg: tea.KeyMsg{Type: tea.KeyCtrlA}, want: dom.KeyEvent{Key: dom.KeyRune, Rune: 'a', Mod: dom.ModCtrl}, wantOK: true},
		"ctrl z":   {msg: tea.KeyMsg{Type: tea.KeyCtrlZ}, want: dom.KeyEvent{Key: dom.KeyRune, Rune: 'z', Mod: dom.ModCtrl}, wantOK: true},
		"unmapped": {msg: tea.KeyMsg{Type: tea.KeyF1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := keyEvent(tt.msg)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestModel_Update(t *testing.T) {
	s, err := newScene(config.Default())
	require.NoError(t, err)
	m := newModel(s)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 38})
	assert.Equal(t, dom.Size{Width: 800, Height: 592}, s.doc.Viewport())

	// trigger-1 starts at (16, 16), which is cell (2, 1).
	m.Update(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, s.scopes[0].IsOpen())
	assert.Equal(t, "input-1", s.doc.ActiveElement().ID())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "close-1", s.doc.ActiveElement().ID())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, s.scopes[0].IsOpen())

	assert.Contains(t, m.View(), "q to quit")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)
}

package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(Options{
		Game:    config.DefaultFlappyConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 5},
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func TestModelSpaceStartsRun(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})

	if got := m.Game().State().Mode; got != flappy.ModePlaying {
		t.Errorf("mode = %v, want Playing", got)
	}
	if m.input.WasJustPressed(core.ActionJump) {
		t.Error("input frame not cleared after tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce QuitMsg")
	}
	if next.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
	if got := m.Game().State().Mode; got != flappy.ModePlaying {
		t.Errorf("mode after resize = %v, want Playing", got)
	}
}

func TestModelConfigReloadAppliesOnRestart(t *testing.T) {
	m := newTestModel(t)

	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  jump_speed: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	m = update(t, m, ConfigChangedMsg{Path: path})

	if got := m.Game().Config().Physics.JumpSpeed; got != 450 {
		t.Errorf("jump speed before restart = %v, want 450", got)
	}

	m.Game().Step(jumpFrame(), 0)
	for i := 0; i < 600 && m.Game().State().Mode != flappy.ModeGameOver; i++ {
		m.Game().Step(nil, 1.0/60)
	}
	m.Game().Step(restartFrame(), 0)

	if got := m.Game().Config().Physics.JumpSpeed; got != 300 {
		t.Errorf("jump speed after restart = %v, want 300", got)
	}
}

func TestModelConfigReloadIgnoresBadFile(t *testing.T) {
	m := newTestModel(t)
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	m = update(t, m, ConfigChangedMsg{Path: path})
	m.Game().Step(jumpFrame(), 0)
	if got := m.Game().Config().Obstacles.Count; got != 5 {
		t.Errorf("obstacle count = %d, want 5", got)
	}
}

func TestModelViewHasHelp(t *testing.T) {
	m := newTestModel(t)
	if v := m.View(); v == "" {
		t.Error("empty view")
	}
}

func jumpFrame() core.InputFrame {
	f := core.NewInputFrame()
	f.Set(core.ActionJump)
	return f
}

func restartFrame() core.InputFrame {
	f := core.NewInputFrame()
	f.Set(core.ActionRestart)
	return f
}

func TestModelHidesScoreOnStartScreen(t *testing.T) {
	m := newTestModel(t)
	// 24 play rows: the score anchor (160, -290) lands on column 40, row 2
	const col, row = 40, 2

	m.render()
	if got := m.screen.GetCell(col, row).Rune; got == '0' {
		t.Error("score drawn on the start screen")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})
	m.render()
	if got := m.screen.GetCell(col, row).Rune; got != '0' {
		t.Errorf("score cell while playing = %q, want '0'", got)
	}
}

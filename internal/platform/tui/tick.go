// Package tui hosts the flappy simulation in a Bubble Tea terminal UI.
// It handles the frame clock, input mapping, rendering and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ConfigChangedMsg reports that the watched config file was written.
type ConfigChangedMsg struct {
	Path string
}

// ConfigWatchErrMsg carries a watcher failure.
type ConfigWatchErrMsg struct {
	Err error
}

// waitForConfig blocks until the watcher reports a change or an error.
// It returns nil once the watcher is closed.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigWatchErrMsg{Err: err}
		}
	}
}

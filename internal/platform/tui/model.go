package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures a game session.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig

	// Optional collaborators; nil selects the default.
	Dims   flappy.Dimensions
	Logger *log.Logger
	Keys   *KeyMap

	// Watcher reports config edits; reloads are applied at the next restart.
	Watcher *config.Watcher
}

// Model is the Bubble Tea model for a flappy session.
type Model struct {
	game     *flappy.Game
	renderer *Renderer
	sound    *SoundCaption
	screen   *core.Screen
	mapper   *KeyMapper
	help     help.Model
	config   core.RuntimeConfig
	input    core.InputFrame
	watcher  *config.Watcher
	logger   *log.Logger
	quitting bool
}

// NewModel builds the simulation and wraps it in a Bubble Tea model.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dims := opts.Dims
	if dims == nil {
		dims = flappy.DefaultDimensions()
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	renderer := NewRenderer()
	sound := &SoundCaption{}
	game, err := flappy.New(opts.Game, dims,
		flappy.WithSeed(cfg.Seed),
		flappy.WithLogger(logger),
		flappy.WithAnimator(renderer),
		flappy.WithSoundSink(sound),
	)
	if err != nil {
		return Model{}, fmt.Errorf("tui: build game: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:     game,
		renderer: renderer,
		sound:    sound,
		screen:   core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		mapper:   NewKeyMapper(keys),
		help:     h,
		config:   cfg,
		input:    core.NewInputFrame(),
		watcher:  opts.Watcher,
		logger:   logger,
	}, nil
}

// playHeight leaves the last terminal row for the help line.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Game exposes the running simulation.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Init starts the tick loop and, when configured, the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		return m.handleConfigChanged(msg)

	case ConfigWatchErrMsg:
		m.logger.Warn("config watcher error", "error", msg.Err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.mapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.mapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The world is drawn scaled to
// the terminal, so the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the fixed frame time.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.game.State().Mode
	result := m.game.Step(m.input, m.config.FrameDelta())
	if result.Mode != before {
		m.logger.Debug("mode", "from", before, "to", result.Mode, "score", result.Score)
	}

	m.sound.Tick()
	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleConfigChanged reloads the config file and queues it for the next run.
func (m Model) handleConfigChanged(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	cfg, err := config.LoadFlappy(msg.Path)
	if err != nil {
		m.logger.Warn("config reload failed", "path", msg.Path, "error", err)
		return m, waitForConfig(m.watcher)
	}
	if err := m.game.Reconfigure(cfg); err != nil {
		m.logger.Warn("config reload rejected", "path", msg.Path, "error", err)
		return m, waitForConfig(m.watcher)
	}
	m.logger.Info("config reloaded, applies on next restart", "path", msg.Path)
	return m, waitForConfig(m.watcher)
}

// render draws the current frame into the screen buffer.
func (m Model) render() {
	snap := m.game.Snapshot()
	m.renderer.Draw(m.screen, snap)
	if snap.ShowScore {
		m.game.EachScoreGlyph(func(g flappy.Glyph) {
			m.renderer.DrawGlyph(m.screen, snap, g)
		})
	}
	if caption := m.sound.Caption(); caption != "" {
		m.screen.DrawTextColored(1, 0, caption, core.ColorGray)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.mapper.Keys())),
	)
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagWatch   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/W/Up - Start / flap
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

With --watch the config file is watched for edits; a changed file takes
effect at the next restart.

Examples:
  flappy play
  flappy play --seed 7
  flappy play --config ./my-flappy.yaml --watch --log-file flappy.log`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so diagnostics go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return openErr
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "flappy")
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if flagWatch {
		watcher = startWatcher(logger)
		if watcher != nil {
			defer watcher.Close()
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:  logger,
		Watcher: watcher,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// startWatcher watches the config file the game was loaded from. Running on
// the embedded defaults leaves nothing to watch.
func startWatcher(logger *log.Logger) *config.Watcher {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch ignored, no config file in use")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, err)
		return nil
	}
	logger.Info("watching config", "path", w.Path())
	return w
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagFlapHold  int
	flagProfile   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless scripted simulation",
	Long: `Run the simulation without a terminal UI and print a summary.

The bot holds the flap key for --flap-hold ticks every --flap-every ticks,
restarting after each crash. The same seed always gives the same summary.

Examples:
  flappy sim --seed 42
  flappy sim --ticks 36000 --flap-every 20 --log-level debug
  flappy sim --profile cpu`,
	Args:          cobra.NoArgs,
	RunE:          runSim,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 18, "Ticks between flaps")
	simCmd.Flags().IntVar(&flagFlapHold, "flap-hold", 2, "Ticks the flap key stays down")
	simCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a profile: cpu or mem")
}

type simOptions struct {
	Ticks     int
	FlapEvery int
	FlapHold  int
	TickRate  int
	Seed      int64
	Game      config.FlappyConfig
	Logger    *log.Logger
}

type simSummary struct {
	RunID   string
	Ticks   int
	Runs    int
	Best    int
	Flaps   int
	Points  int
	Crashes int
	Skipped uint64
	Final   flappy.State
}

// soundCounter is a SoundSink that tallies effects.
type soundCounter map[flappy.SoundID]int

func (c soundCounter) PlayOnce(id flappy.SoundID) {
	c[id]++
}

func runSimulation(opts simOptions) (simSummary, error) {
	if opts.Ticks < 0 || opts.FlapEvery <= 0 || opts.FlapHold <= 0 {
		return simSummary{}, errors.New("sim: ticks must be >= 0, flap-every and flap-hold > 0")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runID := uuid.NewString()
	logger = logger.With("run", runID)

	sounds := soundCounter{}
	game, err := flappy.New(opts.Game, flappy.DefaultDimensions(),
		flappy.WithSeed(opts.Seed),
		flappy.WithLogger(logger),
		flappy.WithSoundSink(sounds),
	)
	if err != nil {
		return simSummary{}, err
	}

	rt := core.RuntimeConfig{TickRate: opts.TickRate}
	clock := flappy.FixedClock(rt.FrameDelta())
	edges := core.NewEdgeDetector()
	summary := simSummary{RunID: runID}

	prev := game.State()
	for i := 0; i < opts.Ticks; i++ {
		var down []core.Action
		if i%opts.FlapEvery < opts.FlapHold {
			down = append(down, core.ActionJump)
		}

		res := game.Advance(edges.Sample(down...), clock)
		summary.Ticks++

		if res.Mode == flappy.ModePlaying && prev.Mode != flappy.ModePlaying {
			summary.Runs++
			logger.Debug("run started", "tick", res.Tick)
		}
		if res.Mode == flappy.ModeGameOver && prev.Mode != flappy.ModeGameOver {
			logger.Info("run ended", "tick", res.Tick, "score", res.Score)
		}
		summary.Best = max(summary.Best, res.Score)
		prev = flappy.State{Mode: res.Mode, Score: res.Score}
	}

	summary.Flaps = sounds[flappy.SoundFlap]
	summary.Points = sounds[flappy.SoundScore]
	summary.Crashes = sounds[flappy.SoundHit]
	summary.Skipped = game.SkippedTicks()
	summary.Final = game.State()
	return summary, nil
}

// profileOption maps --profile to a pkg/profile mode. An empty name
// disables profiling.
func profileOption(name string) (func(*profile.Profile), error) {
	switch name {
	case "":
		return nil, nil
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfileAllocs, nil
	default:
		return nil, fmt.Errorf("unknown profile %q (want cpu or mem)", name)
	}
}

func runSim(cmd *cobra.Command, _ []string) error {
	mode, err := profileOption(flagProfile)
	if err != nil {
		return err
	}
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "flappy-sim")
	if err != nil {
		return err
	}
	if mode != nil {
		defer profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	summary, err := runSimulation(simOptions{
		Ticks:     flagTicks,
		FlapEvery: flagFlapEvery,
		FlapHold:  flagFlapHold,
		TickRate:  flagFPS,
		Seed:      seed,
		Game:      gameCfg,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run      %s\n", summary.RunID)
	fmt.Fprintf(out, "seed     %d\n", seed)
	fmt.Fprintf(out, "ticks    %d (%s wall)\n", summary.Ticks, time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(out, "runs     %d\n", summary.Runs)
	fmt.Fprintf(out, "best     %d\n", summary.Best)
	fmt.Fprintf(out, "flaps    %d\n", summary.Flaps)
	fmt.Fprintf(out, "points   %d\n", summary.Points)
	fmt.Fprintf(out, "crashes  %d\n", summary.Crashes)
	fmt.Fprintf(out, "final    %s score %d\n", summary.Final.Mode, summary.Final.Score)
	return nil
}

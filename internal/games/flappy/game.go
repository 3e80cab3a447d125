// Package flappy implements the simulation core of a Flappy Bird-style game
// as an entity store driven by a fixed pipeline of systems.
package flappy

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// ErrPoolResize is returned by Reconfigure when the new configuration would
// change the number of obstacles or floor tiles.
var ErrPoolResize = errors.New("flappy: entity counts cannot change at runtime")

// StepResult reports the outcome of one tick.
type StepResult struct {
	Mode    Mode
	Score   int
	Tick    uint64
	Skipped bool // the frame time was not finite and nothing ran
}

// Option customizes a Game.
type Option func(*Context)

// WithLogger sets the logger for diagnostics. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.Log = l
		}
	}
}

// WithSeed seeds the random source used for gap placement and variants.
func WithSeed(seed int64) Option {
	return func(c *Context) {
		c.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source.
func WithRand(r *rand.Rand) Option {
	return func(c *Context) {
		if r != nil {
			c.Rand = r
		}
	}
}

func WithSoundSink(s SoundSink) Option {
	return func(c *Context) {
		if s != nil {
			c.Sound = s
		}
	}
}

func WithAnimator(a Animator) Option {
	return func(c *Context) {
		if a != nil {
			c.Anim = a
		}
	}
}

// Game owns the entity store, the mode state and the system pipeline.
type Game struct {
	ctx       *Context
	scheduler *ecs.Scheduler[*Context]
	skipped   uint64
}

// New builds a game in AwaitingStart with every entity spawned. It fails when
// cfg is invalid or dims cannot size the required sprites.
func New(cfg config.FlappyConfig, dims Dimensions, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := resolveMetrics(dims)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		World:   ecs.NewWorld(),
		State:   &State{Mode: ModeAwaitingStart},
		Config:  cfg,
		Input:   noInput,
		Sound:   nopSound{},
		Anim:    nopAnimator{},
		Rand:    rand.New(rand.NewSource(1)),
		Log:     log.New(io.Discard),
		metrics: m,
	}
	for _, opt := range opts {
		opt(ctx)
	}

	if err := spawn(ctx); err != nil {
		return nil, err
	}

	return &Game{
		ctx: ctx,
		scheduler: ecs.NewScheduler[*Context](
			InputSystem{},
			GravitySystem{},
			PlayerSystem{},
			CollisionSystem{},
			RestartSystem{},
			ObstacleSystem{},
			FloorSystem{},
		),
	}, nil
}

// Step advances the simulation by dt seconds. A negative dt is treated as
// zero; a NaN or infinite dt skips the tick entirely.
func (g *Game) Step(in InputSource, dt float64) StepResult {
	ctx := g.ctx
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		g.skipped++
		ctx.Log.Warn("skipping tick with non-finite frame time", "tick", ctx.Tick, "dt", dt, "skipped", g.skipped)
		return g.result(true)
	}
	if dt < 0 {
		dt = 0
	}
	if in == nil {
		in = noInput
	}

	ctx.Tick++
	ctx.DT = dt
	ctx.Input = in
	g.scheduler.Update(ctx)
	ctx.Input = noInput
	return g.result(false)
}

// Advance is Step with the frame time read from clock.
func (g *Game) Advance(in InputSource, clock Clock) StepResult {
	return g.Step(in, clock.DeltaSeconds())
}

func (g *Game) result(skipped bool) StepResult {
	return StepResult{
		Mode:    g.ctx.State.Mode,
		Score:   g.ctx.State.Score,
		Tick:    g.ctx.Tick,
		Skipped: skipped,
	}
}

// State returns a copy of the mode state.
func (g *Game) State() State {
	return *g.ctx.State
}

// Config returns the configuration the running simulation uses.
func (g *Game) Config() config.FlappyConfig {
	return g.ctx.Config
}

// SkippedTicks counts ticks rejected for a non-finite frame time.
func (g *Game) SkippedTicks() uint64 {
	return g.skipped
}

// Reconfigure queues cfg to take effect at the next restart, so a run in
// progress keeps the physics it started with.
func (g *Game) Reconfigure(cfg config.FlappyConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cur := g.ctx.Config
	if cfg.Obstacles.Count != cur.Obstacles.Count || cfg.Floor.Tiles != cur.Floor.Tiles {
		return fmt.Errorf("%w: obstacles %d -> %d, floor tiles %d -> %d",
			ErrPoolResize, cur.Obstacles.Count, cfg.Obstacles.Count, cur.Floor.Tiles, cfg.Floor.Tiles)
	}
	g.ctx.pending = &cfg
	g.ctx.Log.Debug("config queued for next restart")
	return nil
}

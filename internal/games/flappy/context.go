package flappy

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// Context is handed to every system once per tick. It bundles the entity
// store with the resources the systems read and write.
type Context struct {
	World  *ecs.World
	State  *State
	Config config.FlappyConfig

	Input InputSource
	Sound SoundSink
	Anim  Animator
	Rand  *rand.Rand
	Log   *log.Logger

	// DT is the validated frame time in seconds.
	DT   float64
	Tick uint64

	metrics metrics
	player  ecs.Entity
	pending *config.FlappyConfig
}

func (c *Context) setMode(m Mode) {
	if c.State.Mode == m {
		return
	}
	c.Log.Debug("mode changed", "tick", c.Tick, "from", c.State.Mode, "to", m)
	c.State.Mode = m
}

func (c *Context) justPressed(a core.Action) bool {
	return c.Input.WasJustPressed(a)
}

// playerBox returns the collision box of a player whose sprite sits at pos.
func (c *Context) playerBox(pos Position) core.Rect {
	p := c.Config.Player
	return core.RectAround(pos.X+p.SpriteW/2, pos.Y+p.SpriteH/2, p.CollisionW, p.CollisionH)
}

// gapTop draws the y of an obstacle's gap top uniformly from the gap range.
func (c *Context) gapTop() float64 {
	lo, hi := c.Config.GapRange()
	return lo + c.Rand.Float64()*(hi-lo)
}

func (c *Context) obstacles() []ecs.Entity {
	return ecs.Query(c.World, ObstacleTagComponent.ID(), ObstacleComponent.ID(), PositionComponent.ID())
}

func (c *Context) floorTiles() []ecs.Entity {
	return ecs.Query(c.World, FloorTagComponent.ID(), PositionComponent.ID(), VelocityComponent.ID())
}

// placeObstacles lines the obstacles up to the right of the screen, each
// with a fresh gap and scoring re-armed.
func (c *Context) placeObstacles() {
	o := c.Config.Obstacles
	for i, e := range c.obstacles() {
		pos := ecs.MustGet(c.World, e, PositionComponent)
		pos.X = c.Config.Screen.Size + float64(i)*o.HorizontalSeparation
		pos.Y = c.gapTop()
		ecs.MustGet(c.World, e, ObstacleComponent).CanScore = true
		if vel, ok := ecs.Get(c.World, e, VelocityComponent); ok {
			vel.X, vel.Y = o.Speed, 0
		}
	}
}

// resetPlayer puts the player back at its spawn point at rest.
func (c *Context) resetPlayer() {
	pos := ecs.MustGet(c.World, c.player, PositionComponent)
	vel := ecs.MustGet(c.World, c.player, VelocityComponent)
	pos.X, pos.Y = c.Config.Player.SpawnX, c.Config.Player.SpawnY
	vel.X, vel.Y = 0, 0
}

// applyPending swaps in a configuration queued by Game.Reconfigure.
func (c *Context) applyPending() {
	if c.pending == nil {
		return
	}
	c.Config = *c.pending
	c.pending = nil
	for _, e := range c.floorTiles() {
		ecs.MustGet(c.World, e, VelocityComponent).X = c.Config.Floor.Speed
	}
	c.Log.Info("applied reloaded config", "tick", c.Tick)
}

package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// InputSystem performs the input-driven mode transitions.
type InputSystem struct{}

func (InputSystem) Update(ctx *Context) {
	switch ctx.State.Mode {
	case ModeAwaitingStart:
		if ctx.justPressed(core.ActionJump) {
			ctx.State.Score = 0
			ctx.setMode(ModePlaying)
		}
	case ModeGameOver:
		if ctx.justPressed(core.ActionJump) || ctx.justPressed(core.ActionRestart) {
			ctx.State.Score = 0
			ctx.setMode(ModeRestarting)
		}
	}
}

// GravitySystem accelerates the player downwards while playing.
type GravitySystem struct{}

func (GravitySystem) Update(ctx *Context) {
	if ctx.State.Mode != ModePlaying {
		return
	}
	vel := ecs.MustGet(ctx.World, ctx.player, VelocityComponent)
	vel.Y += ctx.Config.Physics.Gravity * ctx.DT
}

// PlayerSystem integrates the player's position, handles flaps and drives
// the player animation.
type PlayerSystem struct{}

func (PlayerSystem) Update(ctx *Context) {
	switch ctx.State.Mode {
	case ModeAwaitingStart:
		ctx.Anim.AdvanceFrame(AnimPlayer)
	case ModePlaying:
		pos := ecs.MustGet(ctx.World, ctx.player, PositionComponent)
		vel := ecs.MustGet(ctx.World, ctx.player, VelocityComponent)
		pos.Y += vel.Y * ctx.DT
		if ctx.justPressed(core.ActionJump) {
			vel.Y = -ctx.Config.Physics.JumpSpeed
			ctx.Sound.PlayOnce(SoundFlap)
		}
		ctx.Anim.AdvanceFrame(AnimPlayer)
	}
}

// CollisionSystem detects hits and awards points while playing.
type CollisionSystem struct{}

func (CollisionSystem) Update(ctx *Context) {
	if ctx.State.Mode != ModePlaying {
		return
	}

	o := ctx.Config.Obstacles
	box := ctx.playerBox(*ecs.MustGet(ctx.World, ctx.player, PositionComponent))

	hit := false
	for _, e := range ctx.obstacles() {
		pos := ecs.MustGet(ctx.World, e, PositionComponent)
		obstacle := ecs.MustGet(ctx.World, e, ObstacleComponent)
		gap := core.NewRect(pos.X, pos.Y, ctx.metrics.pipeW, o.VerticalGap)

		if !hit && hits(box, gap, o.GapTolerance, o.BoundLine) {
			hit = true
			ctx.Log.Info("player hit", "tick", ctx.Tick, "obstacle_x", pos.X, "player_y", box.Y, "score", ctx.State.Score)
		}

		if obstacle.CanScore && box.Right() > gap.Right() {
			obstacle.CanScore = false
			ctx.State.Score++
			ctx.Sound.PlayOnce(SoundScore)
			ctx.Log.Debug("scored", "tick", ctx.Tick, "score", ctx.State.Score)
		}
	}

	if hit {
		ctx.Sound.PlayOnce(SoundHit)
		ctx.setMode(ModeGameOver)
	}
}

// hits reports whether box collides with the obstacle whose gap is gap.
// The bound line applies even when no obstacle is near.
func hits(box, gap core.Rect, tolerance, boundLine float64) bool {
	inGap := box.Y > gap.Y && box.Bottom() < gap.Bottom()-tolerance
	return (box.OverlapsX(gap) && !inGap) || box.Bottom() > boundLine
}

// RestartSystem rebuilds the run when a restart was requested and hands
// control back to the start screen in the same tick.
type RestartSystem struct{}

func (RestartSystem) Update(ctx *Context) {
	if ctx.State.Mode != ModeRestarting {
		return
	}
	ctx.applyPending()
	ctx.placeObstacles()
	ctx.resetPlayer()
	ctx.Anim.SetVariant(AnimPlayer, ctx.Rand.Intn(ctx.Config.Player.Variants))
	ctx.setMode(ModeAwaitingStart)
}

// ObstacleSystem scrolls obstacles and recycles the ones that left the screen.
type ObstacleSystem struct{}

func (ObstacleSystem) Update(ctx *Context) {
	if ctx.State.Mode != ModePlaying {
		return
	}

	o := ctx.Config.Obstacles
	for _, e := range ctx.obstacles() {
		pos := ecs.MustGet(ctx.World, e, PositionComponent)
		if vel, ok := ecs.Get(ctx.World, e, VelocityComponent); ok {
			pos.X += vel.X * ctx.DT
			pos.Y += vel.Y * ctx.DT
		}
		if pos.X < -ctx.metrics.pipeW {
			pos.X += float64(o.Count) * o.HorizontalSeparation
			pos.Y = ctx.gapTop()
			ecs.MustGet(ctx.World, e, ObstacleComponent).CanScore = true
		}
	}
}

// FloorSystem scrolls the floor tiles everywhere but on the game-over screen.
type FloorSystem struct{}

func (FloorSystem) Update(ctx *Context) {
	if ctx.State.Mode == ModeGameOver {
		return
	}

	span := float64(ctx.Config.Floor.Tiles) * ctx.metrics.floorW
	for _, e := range ctx.floorTiles() {
		pos := ecs.MustGet(ctx.World, e, PositionComponent)
		vel := ecs.MustGet(ctx.World, e, VelocityComponent)
		pos.X += vel.X * ctx.DT
		if pos.X < -ctx.metrics.floorW {
			pos.X += span
		}
	}
}

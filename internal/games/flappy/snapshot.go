package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// ObstacleView is the read-only state of one obstacle.
type ObstacleView struct {
	Position
	CanScore bool
}

// Gap returns the open area of the obstacle.
func (o ObstacleView) Gap(width, gap float64) core.Rect {
	return core.NewRect(o.X, o.Y, width, gap)
}

// Banner is an overlay hint for the renderer.
type Banner int

const (
	BannerNone Banner = iota
	BannerPressStart
	BannerGameOver
)

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Mode   Mode
	Score  int
	Tick   uint64
	Banner Banner

	// ShowScore is false on the start screen.
	ShowScore bool

	Player         Position
	PlayerVelocity Velocity
	PlayerBox      core.Rect
	Tilt           float64

	Obstacles   []ObstacleView
	Floor       []Position
	ScoreAnchor Position

	ScreenSize    float64
	ObstacleWidth float64
	VerticalGap   float64
	FloorWidth    float64
	GlyphSize     float64
}

// Snapshot copies the current world for rendering.
func (g *Game) Snapshot() Snapshot {
	ctx := g.ctx
	cfg := ctx.Config
	pos := *ecs.MustGet(ctx.World, ctx.player, PositionComponent)
	vel := *ecs.MustGet(ctx.World, ctx.player, VelocityComponent)

	s := Snapshot{
		Mode:           ctx.State.Mode,
		Score:          ctx.State.Score,
		Tick:           ctx.Tick,
		Player:         pos,
		PlayerVelocity: vel,
		PlayerBox:      ctx.playerBox(pos),
		Tilt:           PlayerTilt(ctx.State.Mode, vel.Y, ctx.DT),
		ScoreAnchor:    g.scoreAnchor(),
		ScreenSize:     cfg.Screen.Size,
		ObstacleWidth:  ctx.metrics.pipeW,
		VerticalGap:    cfg.Obstacles.VerticalGap,
		FloorWidth:     ctx.metrics.floorW,
		GlyphSize:      cfg.HUD.GlyphSize,
	}

	switch s.Mode {
	case ModeAwaitingStart:
		s.Banner = BannerPressStart
	case ModePlaying:
		s.ShowScore = true
	case ModeGameOver:
		s.Banner = BannerGameOver
		s.ShowScore = true
	}

	for _, e := range ctx.obstacles() {
		s.Obstacles = append(s.Obstacles, ObstacleView{
			Position: *ecs.MustGet(ctx.World, e, PositionComponent),
			CanScore: ecs.MustGet(ctx.World, e, ObstacleComponent).CanScore,
		})
	}
	for _, e := range ctx.floorTiles() {
		s.Floor = append(s.Floor, *ecs.MustGet(ctx.World, e, PositionComponent))
	}
	return s
}

func (g *Game) scoreAnchor() Position {
	e, err := ecs.Single(g.ctx.World, ScoreAnchorTagComponent.ID(), PositionComponent.ID())
	if err != nil {
		return Position{X: g.ctx.Config.HUD.AnchorX, Y: g.ctx.Config.HUD.AnchorY}
	}
	return *ecs.MustGet(g.ctx.World, e, PositionComponent)
}

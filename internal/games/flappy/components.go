package flappy

import "github.com/vovakirdan/tui-flappy/internal/ecs"

// Position is a point in world units. For the player it is the sprite's
// top-left corner; for obstacles it is the left edge at the top of the gap.
type Position struct {
	X, Y float64
}

// Velocity is a rate of change of Position in world units per second.
type Velocity struct {
	X, Y float64
}

// Obstacle carries per-obstacle scoring state.
type Obstacle struct {
	// CanScore is true until the player's box passes the obstacle's right
	// edge; it is re-armed on recycle and on restart.
	CanScore bool
}

type PlayerTag struct{}

type ObstacleTag struct{}

type FloorTag struct{}

// ScoreAnchorTag marks where the score HUD is centred.
type ScoreAnchorTag struct{}

var (
	PositionComponent       = ecs.NewComponentKind[Position]()
	VelocityComponent       = ecs.NewComponentKind[Velocity]()
	ObstacleComponent       = ecs.NewComponentKind[Obstacle]()
	PlayerTagComponent      = ecs.NewComponentKind[PlayerTag]()
	ObstacleTagComponent    = ecs.NewComponentKind[ObstacleTag]()
	FloorTagComponent       = ecs.NewComponentKind[FloorTag]()
	ScoreAnchorTagComponent = ecs.NewComponentKind[ScoreAnchorTag]()
)

package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/ecs"
)

// spawn creates the fixed entity set: one player, the obstacle pool, the
// floor tiles and the score anchor. Nothing is created or destroyed after.
func spawn(ctx *Context) error {
	w := ctx.World
	cfg := ctx.Config

	player := w.CreateEntity()
	if err := addAll(w, player,
		adder(PositionComponent, Position{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY}),
		adder(VelocityComponent, Velocity{}),
		adder(PlayerTagComponent, PlayerTag{}),
	); err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}

	for i := 0; i < cfg.Obstacles.Count; i++ {
		e := w.CreateEntity()
		if err := addAll(w, e,
			adder(PositionComponent, Position{}),
			adder(VelocityComponent, Velocity{X: cfg.Obstacles.Speed}),
			adder(ObstacleComponent, Obstacle{CanScore: true}),
			adder(ObstacleTagComponent, ObstacleTag{}),
		); err != nil {
			return fmt.Errorf("spawn obstacle %d: %w", i, err)
		}
	}

	for i := 0; i < cfg.Floor.Tiles; i++ {
		e := w.CreateEntity()
		if err := addAll(w, e,
			adder(PositionComponent, Position{X: float64(i) * ctx.metrics.floorW, Y: cfg.Floor.Y}),
			adder(VelocityComponent, Velocity{X: cfg.Floor.Speed}),
			adder(FloorTagComponent, FloorTag{}),
		); err != nil {
			return fmt.Errorf("spawn floor tile %d: %w", i, err)
		}
	}

	anchor := w.CreateEntity()
	if err := addAll(w, anchor,
		adder(PositionComponent, Position{X: cfg.HUD.AnchorX, Y: cfg.HUD.AnchorY}),
		adder(ScoreAnchorTagComponent, ScoreAnchorTag{}),
	); err != nil {
		return fmt.Errorf("spawn score anchor: %w", err)
	}

	e, err := ecs.Single(w, PlayerTagComponent.ID(), PositionComponent.ID(), VelocityComponent.ID())
	if err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	ctx.player = e
	ctx.placeObstacles()
	return nil
}

type componentAdder func(w *ecs.World, e ecs.Entity) error

func adder[T any](kind ecs.ComponentKind[T], value T) componentAdder {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, kind, value)
	}
}

func addAll(w *ecs.World, e ecs.Entity, adders ...componentAdder) error {
	for _, add := range adders {
		if err := add(w, e); err != nil {
			return err
		}
	}
	return nil
}

// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid")

// FlappyConfig contains all tunables of the simulation. World units: the
// visible area spans x in [0, Screen.Size] and y in [-Screen.Size, 0], with y
// growing downwards.
type FlappyConfig struct {
	Screen    FlappyScreen    `yaml:"screen"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
	Floor     FlappyFloor     `yaml:"floor"`
	HUD       FlappyHUD       `yaml:"hud"`
}

// FlappyScreen defines the visible world area.
type FlappyScreen struct {
	Size float64 `yaml:"size"`
}

// FlappyPhysics defines the player's vertical physics.
type FlappyPhysics struct {
	Gravity   float64 `yaml:"gravity"`    // Downward acceleration, units/s²
	JumpSpeed float64 `yaml:"jump_speed"` // Upward speed set by a flap, units/s
}

// FlappyObstacles defines the obstacle pool and its placement rule.
type FlappyObstacles struct {
	Count                int     `yaml:"count"`
	HorizontalSeparation float64 `yaml:"horizontal_separation"`
	VerticalGap          float64 `yaml:"vertical_gap"`
	CeilingPadding       float64 `yaml:"ceiling_padding"`
	FloorPadding         float64 `yaml:"floor_padding"`
	Speed                float64 `yaml:"speed"`         // Horizontal velocity (negative = leftward)
	GapTolerance         float64 `yaml:"gap_tolerance"` // Shaved off the bottom of the gap in the hit test
	BoundLine            float64 `yaml:"bound_line"`    // Player box bottom past this line is a hit
}

// FlappyPlayer defines the player's spawn and hitbox.
type FlappyPlayer struct {
	SpawnX     float64 `yaml:"spawn_x"`
	SpawnY     float64 `yaml:"spawn_y"`
	SpriteW    float64 `yaml:"sprite_w"`
	SpriteH    float64 `yaml:"sprite_h"`
	CollisionW float64 `yaml:"collision_w"`
	CollisionH float64 `yaml:"collision_h"`
	Variants   int     `yaml:"variants"` // Number of player animation variants
}

// FlappyFloor defines the scrolling floor tiles.
type FlappyFloor struct {
	Tiles int     `yaml:"tiles"`
	Speed float64 `yaml:"speed"`
	Y     float64 `yaml:"y"`
}

// FlappyHUD defines where the score is drawn.
type FlappyHUD struct {
	AnchorX         float64 `yaml:"anchor_x"`
	AnchorY         float64 `yaml:"anchor_y"`
	GlyphSize       float64 `yaml:"glyph_size"`
	GlyphSeparation float64 `yaml:"glyph_separation"`
}

// GapRange returns the interval the top of an obstacle gap is drawn from.
func (c FlappyConfig) GapRange() (lo, hi float64) {
	return -c.Screen.Size + c.Obstacles.CeilingPadding, -c.Obstacles.VerticalGap - c.Obstacles.FloorPadding
}

// Validate checks the configuration for values the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Screen.Size <= 0:
		return fmt.Errorf("%w: screen.size must be positive, got %v", ErrInvalidConfig, c.Screen.Size)
	case c.Obstacles.Count <= 0:
		return fmt.Errorf("%w: obstacles.count must be positive, got %d", ErrInvalidConfig, c.Obstacles.Count)
	case c.Obstacles.HorizontalSeparation <= 0:
		return fmt.Errorf("%w: obstacles.horizontal_separation must be positive", ErrInvalidConfig)
	case c.Obstacles.VerticalGap <= 0:
		return fmt.Errorf("%w: obstacles.vertical_gap must be positive", ErrInvalidConfig)
	case c.Floor.Tiles <= 0:
		return fmt.Errorf("%w: floor.tiles must be positive, got %d", ErrInvalidConfig, c.Floor.Tiles)
	case c.Player.CollisionW <= 0 || c.Player.CollisionH <= 0:
		return fmt.Errorf("%w: player collision box must be positive", ErrInvalidConfig)
	case c.Player.Variants <= 0:
		return fmt.Errorf("%w: player.variants must be positive", ErrInvalidConfig)
	}

	if lo, hi := c.GapRange(); lo > hi {
		return fmt.Errorf("%w: gap range [%v, %v] is empty, lower the paddings or the gap", ErrInvalidConfig, lo, hi)
	}
	return nil
}

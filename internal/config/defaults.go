package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// Keep in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: FlappyScreen{
			Size: 320,
		},
		Physics: FlappyPhysics{
			Gravity:   1900,
			JumpSpeed: 450,
		},
		Obstacles: FlappyObstacles{
			Count:                5,
			HorizontalSeparation: 150,
			VerticalGap:          110,
			CeilingPadding:       20,
			FloorPadding:         65,
			Speed:                -120,
			GapTolerance:         10,
			BoundLine:            -36,
		},
		Player: FlappyPlayer{
			SpawnX:     50,
			SpawnY:     -160,
			SpriteW:    36,
			SpriteH:    36,
			CollisionW: 20,
			CollisionH: 20,
			Variants:   3,
		},
		Floor: FlappyFloor{
			Tiles: 5,
			Speed: -120,
			Y:     -30,
		},
		HUD: FlappyHUD{
			AnchorX:         160,
			AnchorY:         -290,
			GlyphSize:       36,
			GlyphSeparation: -10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

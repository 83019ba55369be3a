package config

import (
	_ "embed"
)

//go:embed defaults/skeet.yaml
var defaultSkeetYAML []byte

// DefaultSkeetConfig returns the default Skeet configuration.
func DefaultSkeetConfig() SkeetConfig {
	return SkeetConfig{
		Screen: SkeetScreen{
			Width:  600,
			Height: 500,
		},
		Rifle: SkeetRifle{
			Width:    100,
			Height:   20,
			Color:    "red",
			AimStep:  3,
			MinAngle: 0,
			MaxAngle: 90,
		},
		Bullet: SkeetBullet{
			Radius: 3,
			Speed:  10,
			Color:  "olive",
		},
		Targets: SkeetTargets{
			Radius:          20,
			Color:           "orange",
			ReinforcedLives: 3,
			HazardRadius:    15,
			HazardColor:     "bright_blue",
			Standard:        VelocityRange{MinDX: 1, MaxDX: 3, MinDY: -2, MaxDY: 3},
			Reinforced:      VelocityRange{MinDX: 1, MaxDX: 2, MinDY: -2, MaxDY: 2},
		},
		Explosion: SkeetExplosion{
			Radius:     30,
			Wait:       0.25,
			OuterColor: "red",
			InnerColor: "yellow",
		},
		Spawn: SkeetSpawn{
			Chance: 0.02, // one in fifty ticks
			X:      0,
			Weights: SpawnWeights{
				Standard:   1,
				Reinforced: 1,
				Hazard:     1,
			},
		},
		Round: SkeetRound{
			Seconds: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnMultiplier: 1.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "skeet", "skeet_endless":
		return defaultSkeetYAML
	default:
		return nil
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/chrono.yaml
var defaultChronoYAML []byte

// DefaultChronoConfig returns the default game configuration.
func DefaultChronoConfig() ChronoConfig {
	return ChronoConfig{
		Physics: PhysicsConfig{
			Gravity:      60.0,
			MaxFallSpeed: 30.0,
		},
		Rewind: RewindConfig{
			MaxHistoryMS: 6000,
			Speed:        1.5,
		},
		Player: PlayerConfig{
			MoveSpeed:   14.0,
			JumpImpulse: -22.0,
			Width:       2,
			Height:      2,
		},
		Enemy: EnemyConfig{
			SpeedScale:   1.0,
			FreezeMS:     2500,
			FreezeRadius: 12.0,
		},
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// ChronoConfig contains all tunable parameters for the game.
type ChronoConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Rewind  RewindConfig  `yaml:"rewind"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
}

// PhysicsConfig defines the shared physics parameters.
// Positions are in screen cells, velocities in cells per second.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // downward acceleration, cells/s^2
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity
}

// RewindConfig defines the time-rewind tuning.
type RewindConfig struct {
	MaxHistoryMS float64 `yaml:"max_history_ms"` // recorded history window
	Speed        float64 `yaml:"speed"`          // playback speed multiplier
}

// PlayerConfig defines player movement parameters.
type PlayerConfig struct {
	MoveSpeed   float64 `yaml:"move_speed"`   // horizontal speed, cells/s
	JumpImpulse float64 `yaml:"jump_impulse"` // upward velocity on jump (negative = up)
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
}

// EnemyConfig defines patrol enemy parameters.
type EnemyConfig struct {
	SpeedScale   float64 `yaml:"speed_scale"`   // multiplier on per-level patrol speeds
	FreezeMS     float64 `yaml:"freeze_ms"`     // freeze pulse duration
	FreezeRadius float64 `yaml:"freeze_radius"` // freeze pulse reach, cells
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset. Difficulty scales
// the rewind window (less recorded past on hard) and enemy speed.
func ApplyPreset(cfg *ChronoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rewind.MaxHistoryMS = 10000
		cfg.Enemy.SpeedScale = 0.8
	case DifficultyHard:
		cfg.Rewind.MaxHistoryMS = 3000
		cfg.Enemy.SpeedScale = 1.3
	case DifficultyNormal:
		// Config values as loaded.
	}
}

package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// MillisPerTick returns the fixed simulation step in milliseconds.
func (c RuntimeConfig) MillisPerTick() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000.0 / float64(rate)
}

// GameState represents the current state of the game, returned by
// Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Coins collected
	GameOver  bool // Player died (still undoable by rewinding)
	Won       bool // Level complete
	Paused    bool
	Rewinding bool // Time currently flowing backwards
	ElapsedMS int  // Simulated time since level start
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

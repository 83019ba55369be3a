package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is something noteworthy that happened during a tick.
// Fields holds alternating key/value pairs suitable for structured logging.
type Event struct {
	Name   string
	Fields []any
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunStats summarizes a finished run for the scoreboard.
type RunStats struct {
	Shots      int     // Bullets fired
	Hits       int     // Bullets that struck a target
	Destroyed  int     // Scoring targets destroyed
	HazardsHit int     // Hazard targets struck
	BestStreak int     // Longest run of scoring hits without a miss
	Seconds    float64 // Simulated duration of the run
}

// Accuracy returns hits per shot in [0, 1], or 0 when nothing was fired.
func (s RunStats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

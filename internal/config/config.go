// Package config provides YAML-based game configuration loading and
// difficulty management for the skeet range.
package config

// SkeetConfig contains all configuration for the Skeet game.
// World units: the playfield is Screen.Width x Screen.Height with the origin
// at the bottom-left corner and y pointing up.
type SkeetConfig struct {
	Screen     SkeetScreen      `yaml:"screen"`
	Rifle      SkeetRifle       `yaml:"rifle"`
	Bullet     SkeetBullet      `yaml:"bullet"`
	Targets    SkeetTargets     `yaml:"targets"`
	Explosion  SkeetExplosion   `yaml:"explosion"`
	Spawn      SkeetSpawn       `yaml:"spawn"`
	Round      SkeetRound       `yaml:"round"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SkeetScreen defines the world bounds.
type SkeetScreen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SkeetRifle defines the rifle anchored at the origin.
type SkeetRifle struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Color    string  `yaml:"color"`
	AimStep  float64 `yaml:"aim_step"`  // Degrees per aim key press
	MinAngle float64 `yaml:"min_angle"` // Degrees
	MaxAngle float64 `yaml:"max_angle"` // Degrees
}

// SkeetBullet defines bullet parameters.
type SkeetBullet struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // World units per tick
	Color  string  `yaml:"color"`
}

// VelocityRange bounds the uniformly drawn launch velocity of a target.
type VelocityRange struct {
	MinDX float64 `yaml:"min_dx"`
	MaxDX float64 `yaml:"max_dx"`
	MinDY float64 `yaml:"min_dy"`
	MaxDY float64 `yaml:"max_dy"`
}

// SkeetTargets defines the three target variants.
type SkeetTargets struct {
	Radius          float64        `yaml:"radius"`
	Color           string         `yaml:"color"`
	ReinforcedLives int            `yaml:"reinforced_lives"`
	HazardRadius    float64        `yaml:"hazard_radius"`
	HazardColor     string         `yaml:"hazard_color"`
	Standard        VelocityRange  `yaml:"standard"`
	Reinforced      VelocityRange  `yaml:"reinforced"`
	Hazard          *VelocityRange `yaml:"hazard,omitempty"` // nil means same as Standard
}

// HazardVelocity returns the hazard launch range, falling back to Standard.
func (t SkeetTargets) HazardVelocity() VelocityRange {
	if t.Hazard != nil {
		return *t.Hazard
	}
	return t.Standard
}

// SkeetExplosion defines the effect left by a destroyed target.
type SkeetExplosion struct {
	Radius     float64 `yaml:"radius"`
	Wait       float64 `yaml:"wait"` // Seconds before the effect is removed
	OuterColor string  `yaml:"outer_color"`
	InnerColor string  `yaml:"inner_color"`
}

// SkeetSpawn defines the target spawn policy.
type SkeetSpawn struct {
	Chance  float64      `yaml:"chance"` // Probability of a spawn per tick
	X       float64      `yaml:"x"`      // Launch x position
	Weights SpawnWeights `yaml:"weights"`
}

// SpawnWeights are the relative odds of each target variant.
type SpawnWeights struct {
	Standard   float64 `yaml:"standard"`
	Reinforced float64 `yaml:"reinforced"`
	Hazard     float64 `yaml:"hazard"`
}

// Total returns the sum of all weights.
func (w SpawnWeights) Total() float64 {
	return w.Standard + w.Reinforced + w.Hazard
}

// SkeetRound defines how long a round lasts.
type SkeetRound struct {
	Seconds float64 `yaml:"seconds"` // 0 disables the timer
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to target speed at max difficulty
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Added to spawn chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// PresetLabel names a preset for display and storage. The empty preset,
// which keeps the config file's difficulty section, is labelled "config".
func PresetLabel(preset DifficultyPreset) string {
	if preset == "" {
		return "config"
	}
	return string(preset)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

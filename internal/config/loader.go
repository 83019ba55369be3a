package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-skeet/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid skeet config")

// LoadSkeet loads Skeet configuration.
// Search order: customPath -> ~/.arcade/configs/skeet.yaml -> ./configs/skeet.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
// A file that exists but does not parse is an error; the defaults are returned
// alongside it.
func LoadSkeet(customPath string) (SkeetConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSkeetConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSkeet(data)
		if err != nil {
			return DefaultSkeetConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("skeet.yaml"), filepath.Join("configs", "skeet.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := parseSkeet(data)
		if err != nil {
			return DefaultSkeetConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseSkeet(defaultSkeetYAML)
	if err != nil {
		return DefaultSkeetConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSkeet decodes YAML over the hardcoded defaults.
func parseSkeet(data []byte) (SkeetConfig, error) {
	cfg := DefaultSkeetConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySkeetPreset modifies the config based on a difficulty preset.
func ApplySkeetPreset(cfg *SkeetConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Hazards show up more often the harder it gets
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Weights.Hazard = cfg.Spawn.Weights.Hazard / 2
	case DifficultyHard:
		cfg.Spawn.Weights.Hazard = cfg.Spawn.Weights.Hazard * 2
	}
}

// Validate checks every construction precondition of the simulation.
// All problems are reported at once; each wraps ErrInvalidConfig.
func (c SkeetConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	check(c.Rifle.Width > 0 && c.Rifle.Height > 0, "rifle size must be positive, got %vx%v", c.Rifle.Width, c.Rifle.Height)
	check(c.Rifle.AimStep > 0, "rifle.aim_step must be positive, got %v", c.Rifle.AimStep)
	check(c.Rifle.MinAngle <= c.Rifle.MaxAngle, "rifle.min_angle %v exceeds max_angle %v", c.Rifle.MinAngle, c.Rifle.MaxAngle)
	check(c.Bullet.Radius > 0, "bullet.radius must be positive, got %v", c.Bullet.Radius)
	check(c.Bullet.Speed > 0, "bullet.speed must be positive, got %v", c.Bullet.Speed)
	check(c.Targets.Radius > 0, "targets.radius must be positive, got %v", c.Targets.Radius)
	check(c.Targets.HazardRadius > 0, "targets.hazard_radius must be positive, got %v", c.Targets.HazardRadius)
	check(c.Targets.ReinforcedLives >= 1, "targets.reinforced_lives must be at least 1, got %d", c.Targets.ReinforcedLives)
	checkRange := func(name string, r VelocityRange) {
		check(r.MinDX <= r.MaxDX && r.MinDY <= r.MaxDY, "targets.%s velocity range is inverted: %+v", name, r)
	}
	checkRange("standard", c.Targets.Standard)
	checkRange("reinforced", c.Targets.Reinforced)
	checkRange("hazard", c.Targets.HazardVelocity())
	check(c.Explosion.Radius > 0, "explosion.radius must be positive, got %v", c.Explosion.Radius)
	check(c.Explosion.Wait >= 0, "explosion.wait must not be negative, got %v", c.Explosion.Wait)
	check(c.Spawn.Chance >= 0 && c.Spawn.Chance <= 1, "spawn.chance must be within [0, 1], got %v", c.Spawn.Chance)
	w := c.Spawn.Weights
	check(w.Standard >= 0 && w.Reinforced >= 0 && w.Hazard >= 0, "spawn.weights must not be negative, got %+v", w)
	check(w.Total() > 0, "spawn.weights must not all be zero")
	check(c.Round.Seconds >= 0, "round.seconds must not be negative, got %v", c.Round.Seconds)

	for name, color := range map[string]string{
		"rifle.color":           c.Rifle.Color,
		"bullet.color":          c.Bullet.Color,
		"targets.color":         c.Targets.Color,
		"targets.hazard_color":  c.Targets.HazardColor,
		"explosion.outer_color": c.Explosion.OuterColor,
		"explosion.inner_color": c.Explosion.InnerColor,
	} {
		_, ok := core.ParseColor(color)
		check(ok, "%s: unknown color %q", name, color)
	}

	return errors.Join(errs...)
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSkeet(defaultSkeetYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSkeetConfig()) {
		t.Errorf("embedded defaults drifted from DefaultSkeetConfig:\n got %+v\nwant %+v", cfg, DefaultSkeetConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadSkeetCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skeet.yaml")
	data := []byte("bullet:\n  speed: 14\ntargets:\n  hazard:\n    min_dx: 2\n    max_dx: 2\n    min_dy: 0\n    max_dy: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSkeet(path)
	if err != nil {
		t.Fatalf("LoadSkeet() failed: %v", err)
	}
	if cfg.Bullet.Speed != 14 {
		t.Errorf("Bullet.Speed = %v, expected 14", cfg.Bullet.Speed)
	}
	if cfg.Bullet.Radius != 3 {
		t.Errorf("keys missing from the file should keep defaults, Bullet.Radius = %v", cfg.Bullet.Radius)
	}
	if got := cfg.Targets.HazardVelocity(); got != (VelocityRange{MinDX: 2, MaxDX: 2}) {
		t.Errorf("HazardVelocity() = %+v, expected the override", got)
	}
}

func TestLoadSkeetErrors(t *testing.T) {
	if _, err := LoadSkeet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("screen: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSkeet(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed YAML should fail to parse, got %v", err)
	}
}

func TestLoadSkeetUserConfigErrors(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "skeet.yaml")
	if err := os.WriteFile(path, []byte("bullet: {radius: [}"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSkeet("")
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("broken user config should be reported, got %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSkeetConfig()) {
		t.Error("defaults should come back with the error")
	}
}

func TestHazardVelocityDefaultsToStandard(t *testing.T) {
	cfg := DefaultSkeetConfig()
	if cfg.Targets.HazardVelocity() != cfg.Targets.Standard {
		t.Error("hazard targets should inherit the standard launch range")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SkeetConfig)
		field  string
	}{
		{"negative bullet radius", func(c *SkeetConfig) { c.Bullet.Radius = -1 }, "bullet.radius"},
		{"zero target radius", func(c *SkeetConfig) { c.Targets.Radius = 0 }, "targets.radius"},
		{"no lives", func(c *SkeetConfig) { c.Targets.ReinforcedLives = 0 }, "reinforced_lives"},
		{"inverted range", func(c *SkeetConfig) { c.Targets.Reinforced.MinDX = 5 }, "targets.reinforced"},
		{"chance above one", func(c *SkeetConfig) { c.Spawn.Chance = 1.5 }, "spawn.chance"},
		{"zero weights", func(c *SkeetConfig) { c.Spawn.Weights = SpawnWeights{} }, "spawn.weights"},
		{"unknown color", func(c *SkeetConfig) { c.Targets.HazardColor = "mauve" }, "targets.hazard_color"},
		{"negative wait", func(c *SkeetConfig) { c.Explosion.Wait = -0.1 }, "explosion.wait"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSkeetConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultSkeetConfig()
	cfg.Bullet.Radius = -3
	cfg.Bullet.Speed = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "bullet.radius") || !strings.Contains(err.Error(), "bullet.speed") {
		t.Errorf("both problems should be reported, got %q", err)
	}
}

func TestApplySkeetPreset(t *testing.T) {
	cfg := DefaultSkeetConfig()
	ApplySkeetPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Spawn.Weights.Hazard != 2 {
		t.Errorf("hard preset should double hazard weight, got %v", cfg.Spawn.Weights.Hazard)
	}

	cfg = DefaultSkeetConfig()
	ApplySkeetPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultSkeetConfig()
	ApplySkeetPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultSkeetConfig()) {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		if got, ok := ParsePreset(string(p)); !ok || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, ok)
		}
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestPresetLabel(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   string
	}{
		{"", "config"},
		{DifficultyEasy, "easy"},
		{DifficultyFixed, "fixed"},
	}
	for _, tt := range tests {
		if got := PresetLabel(tt.preset); got != tt.want {
			t.Errorf("PresetLabel(%q) = %q, want %q", tt.preset, got, tt.want)
		}
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("skeet")) == 0 {
		t.Error("skeet should have embedded defaults")
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown games have no defaults")
	}
}

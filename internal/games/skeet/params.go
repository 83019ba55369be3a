package skeet

import (
	"github.com/vovakirdan/tui-skeet/internal/config"
	"github.com/vovakirdan/tui-skeet/internal/core"
)

// Score deltas returned by Target.Hit.
const (
	PointsHit            = 1
	PointsReinforcedKill = 5
	PenaltyHazard        = -10
)

// Params is the validated, resolved form of config.SkeetConfig that the
// simulation runs on.
type Params struct {
	Width, Height float64

	RifleWidth, RifleHeight float64
	RifleColor              core.Color
	AimStep                 float64
	MinAngle, MaxAngle      float64

	BulletRadius float64
	BulletSpeed  float64
	BulletColor  core.Color

	TargetRadius    float64
	TargetColor     core.Color
	ReinforcedLives int
	HazardRadius    float64
	HazardColor     core.Color
	Launch          [kindCount]config.VelocityRange

	ExplosionRadius float64
	ExplosionWait   float64
	ExplosionOuter  core.Color
	ExplosionInner  core.Color

	SpawnChance  float64
	SpawnX       float64
	SpawnWeights [kindCount]float64
}

// NewParams validates cfg and resolves it into Params.
func NewParams(cfg config.SkeetConfig) (Params, error) {
	if err := cfg.Validate(); err != nil {
		return Params{}, err
	}
	color := func(name string) core.Color {
		c, _ := core.ParseColor(name) // checked by Validate
		return c
	}

	return Params{
		Width:  cfg.Screen.Width,
		Height: cfg.Screen.Height,

		RifleWidth:  cfg.Rifle.Width,
		RifleHeight: cfg.Rifle.Height,
		RifleColor:  color(cfg.Rifle.Color),
		AimStep:     cfg.Rifle.AimStep,
		MinAngle:    cfg.Rifle.MinAngle,
		MaxAngle:    cfg.Rifle.MaxAngle,

		BulletRadius: cfg.Bullet.Radius,
		BulletSpeed:  cfg.Bullet.Speed,
		BulletColor:  color(cfg.Bullet.Color),

		TargetRadius:    cfg.Targets.Radius,
		TargetColor:     color(cfg.Targets.Color),
		ReinforcedLives: cfg.Targets.ReinforcedLives,
		HazardRadius:    cfg.Targets.HazardRadius,
		HazardColor:     color(cfg.Targets.HazardColor),
		Launch: [kindCount]config.VelocityRange{
			Standard:   cfg.Targets.Standard,
			Reinforced: cfg.Targets.Reinforced,
			Hazard:     cfg.Targets.HazardVelocity(),
		},

		ExplosionRadius: cfg.Explosion.Radius,
		ExplosionWait:   cfg.Explosion.Wait,
		ExplosionOuter:  color(cfg.Explosion.OuterColor),
		ExplosionInner:  color(cfg.Explosion.InnerColor),

		SpawnChance: cfg.Spawn.Chance,
		SpawnX:      cfg.Spawn.X,
		SpawnWeights: [kindCount]float64{
			Standard:   cfg.Spawn.Weights.Standard,
			Reinforced: cfg.Spawn.Weights.Reinforced,
			Hazard:     cfg.Spawn.Weights.Hazard,
		},
	}, nil
}

// DefaultParams returns Params for the default configuration.
func DefaultParams() Params {
	p, err := NewParams(config.DefaultSkeetConfig())
	if err != nil {
		panic("skeet: default config is invalid: " + err.Error())
	}
	return p
}

// radiusFor returns the collision radius of a target kind.
func (p *Params) radiusFor(kind TargetKind) float64 {
	if kind == Hazard {
		return p.HazardRadius
	}
	return p.TargetRadius
}

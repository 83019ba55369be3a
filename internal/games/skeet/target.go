package skeet

import (
	"fmt"
	"strconv"
)

// TargetKind selects a target variant. A target never changes kind.
type TargetKind int

const (
	Standard   TargetKind = iota // One hit, one point
	Reinforced                   // Several hits, bonus on the last one
	Hazard                       // Must not be shot
	kindCount
)

// String returns a human-readable name for the kind.
func (k TargetKind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Reinforced:
		return "reinforced"
	case Hazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Target is a clay flying across the range.
type Target struct {
	body
	kind   TargetKind
	radius float64
	lives  int // Remaining hits, only meaningful for Reinforced
	params *Params
}

var _ Flyer = (*Target)(nil)

// NewTarget creates a live target of the given kind at a fixed position and
// velocity. Radius and lives come from p. It panics on an unknown kind.
func NewTarget(kind TargetKind, p *Params, at Point, v Velocity) *Target {
	if kind < Standard || kind >= kindCount {
		panic(fmt.Sprintf("skeet: unknown target kind %d", kind))
	}
	t := &Target{
		body:   newBody(at, v),
		kind:   kind,
		radius: p.radiusFor(kind),
		params: p,
	}
	if kind == Reinforced {
		t.lives = p.ReinforcedLives
	}
	return t
}

// Kind returns the target variant.
func (t *Target) Kind() TargetKind {
	return t.kind
}

// Radius returns the collision radius.
func (t *Target) Radius() float64 {
	return t.radius
}

// Lives returns the hits a reinforced target can still take.
func (t *Target) Lives() int {
	return t.lives
}

// Hit applies one bullet strike and returns the score delta. Standard
// targets always score 1 and hazards always cost 10, even when already dead.
// A spent reinforced target keeps zero lives and scores 1.
func (t *Target) Hit() int {
	switch t.kind {
	case Reinforced:
		if t.lives == 0 {
			return PointsHit
		}
		t.lives--
		if t.lives == 0 {
			t.alive = false
			return PointsReinforcedKill
		}
		return PointsHit
	case Hazard:
		t.destroy()
		return PenaltyHazard
	default:
		return t.destroy()
	}
}

// destroy is the single-hit rule shared by standard and hazard targets.
func (t *Target) destroy() int {
	t.alive = false
	return PointsHit
}

// Explode creates the explosion left at the target's current position.
func (t *Target) Explode(now float64) Explosion {
	e := NewExplosion(t.center, t.params.ExplosionRadius, t.params.ExplosionWait, now)
	e.outer = t.params.ExplosionOuter
	e.inner = t.params.ExplosionInner
	return e
}

// Draw renders the target. Reinforced targets show their remaining lives.
func (t *Target) Draw(r Renderer) {
	switch t.kind {
	case Reinforced:
		r.OutlinedCircle(t.center.X, t.center.Y, t.radius, t.params.TargetColor)
		r.Text(strconv.Itoa(t.lives), t.center.X-t.radius/2, t.center.Y-t.radius/2, t.params.TargetColor, 20)
	case Hazard:
		r.FilledRect(t.center.X, t.center.Y, t.radius, t.radius, t.params.HazardColor)
	default:
		r.FilledCircle(t.center.X, t.center.Y, t.radius, t.params.TargetColor)
	}
}

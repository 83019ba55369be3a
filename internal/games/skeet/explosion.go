package skeet

import "github.com/vovakirdan/tui-skeet/internal/core"

// expiryTolerance absorbs float error when now is built from tick counts.
const expiryTolerance = 1e-9

// Explosion is the short-lived star left behind by a destroyed target.
// It never moves and cannot be hit.
type Explosion struct {
	Center        Point
	Radius        float64
	PartialRadius float64 // Inner vertices of the star
	CreatedAt     float64 // Clock seconds

	wait  float64
	outer core.Color
	inner core.Color
}

// NewExplosion creates an explosion at center that lasts wait seconds
// from now.
func NewExplosion(center Point, radius, wait, now float64) Explosion {
	return Explosion{
		Center:        center,
		Radius:        radius,
		PartialRadius: radius / 3,
		CreatedAt:     now,
		wait:          wait,
		outer:         core.ColorRed,
		inner:         core.ColorYellow,
	}
}

// IsExpired reports whether the explosion has been shown for its full wait.
func (e Explosion) IsExpired(now float64) bool {
	return now-e.CreatedAt >= e.wait-expiryTolerance
}

// Draw renders the explosion as two overlapping eight-point stars.
func (e Explosion) Draw(r Renderer) {
	cx, cy := e.Center.X, e.Center.Y
	big, small := e.Radius, e.PartialRadius

	r.FilledPolygon([]Point{
		{cx - big, cy},
		{cx - small, cy + small},
		{cx, cy + big},
		{cx + small, cy + small},
		{cx + big, cy},
		{cx + small, cy - small},
		{cx, cy - big},
		{cx - small, cy - small},
	}, e.outer)

	r.FilledPolygon([]Point{
		{cx - small, cy},
		{cx - big, cy + big},
		{cx, cy + small},
		{cx + big, cy + big},
		{cx + small, cy},
		{cx + big, cy - big},
		{cx, cy - small},
		{cx - big, cy - big},
	}, e.inner)
}

// Package skeet implements a skeet shooting range.
// A rifle in the bottom-left corner fires at clay targets launched from the
// left edge. World coordinates have the origin at the bottom-left corner and
// y pointing up; the platform screen is only touched through Renderer.
package skeet

import "math"

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Velocity is a per-tick displacement in world units.
type Velocity struct {
	DX, DY float64
}

// overlaps reports whether two circles intersect. Touching circles do not.
func overlaps(a Point, ra float64, b Point, rb float64) bool {
	return a.Distance(b) < ra+rb
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

package skeet

import (
	"math"

	"github.com/vovakirdan/tui-skeet/internal/core"
)

// Rifle is anchored at the world origin and aims within [min, max] degrees.
type Rifle struct {
	angle         float64
	width, height float64
	min, max      float64
	color         core.Color
}

// NewRifle creates a rifle from p pointing halfway up its aim range.
func NewRifle(p *Params) *Rifle {
	r := &Rifle{
		width:  p.RifleWidth,
		height: p.RifleHeight,
		min:    p.MinAngle,
		max:    p.MaxAngle,
		color:  p.RifleColor,
	}
	r.SetAngle((p.MinAngle + p.MaxAngle) / 2)
	return r
}

// Angle returns the aim in degrees counterclockwise from the x axis.
func (r *Rifle) Angle() float64 {
	return r.angle
}

// SetAngle aims the rifle, clamping to its range.
func (r *Rifle) SetAngle(deg float64) {
	r.angle = core.ClampF(deg, r.min, r.max)
}

// Rotate turns the rifle by delta degrees.
func (r *Rifle) Rotate(delta float64) {
	r.SetAngle(r.angle + delta)
}

// AimAt points the rifle at a world position. Points at the origin are
// ignored.
func (r *Rifle) AimAt(p Point) {
	if p.X == 0 && p.Y == 0 {
		return
	}
	r.SetAngle(degrees(math.Atan2(p.Y, p.X)))
}

// Muzzle returns where bullets leave the rifle.
func (r *Rifle) Muzzle() Point {
	return Point{}
}

// Draw renders the rifle as a rectangle centered on the origin and rotated
// to its angle.
func (r *Rifle) Draw(rd Renderer) {
	rad := radians(r.angle)
	sin, cos := math.Sincos(rad)
	hw, hh := r.width/2, r.height/2

	corners := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	pts := make([]Point, 0, len(corners))
	for _, c := range corners {
		pts = append(pts, Point{
			X: c.X*cos - c.Y*sin,
			Y: c.X*sin + c.Y*cos,
		})
	}
	rd.FilledPolygon(pts, r.color)
}

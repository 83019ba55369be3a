package skeet

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-skeet/internal/core"
)

// Bullet is a projectile fired from the rifle. It has no hit behavior of its
// own; the world retires it when it strikes a target.
type Bullet struct {
	body
	radius float64
	speed  float64
	color  core.Color
}

var _ Flyer = (*Bullet)(nil)

// NewBullet creates a motionless bullet at the given point.
// It panics on a negative radius or speed.
func NewBullet(at Point, radius, speed float64, color core.Color) *Bullet {
	if radius < 0 || speed < 0 {
		panic(fmt.Sprintf("skeet: invalid bullet radius=%v speed=%v", radius, speed))
	}
	return &Bullet{
		body:   newBody(at, Velocity{}),
		radius: radius,
		speed:  speed,
		color:  color,
	}
}

// Fire sets the bullet moving at its speed in the given direction,
// measured in degrees counterclockwise from the positive x axis.
func (b *Bullet) Fire(angle float64) {
	rad := radians(angle)
	b.velocity.DX = math.Cos(rad) * b.speed
	b.velocity.DY = math.Sin(rad) * b.speed
}

// Radius returns the collision radius.
func (b *Bullet) Radius() float64 {
	return b.radius
}

// Draw renders the bullet as a filled circle.
func (b *Bullet) Draw(r Renderer) {
	r.FilledCircle(b.center.X, b.center.Y, b.radius, b.color)
}

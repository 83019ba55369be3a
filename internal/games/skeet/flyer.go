package skeet

// Flyer is anything that moves across the range once per tick.
type Flyer interface {
	// Advance moves the flyer by its velocity. No bounds are checked.
	Advance()

	// IsOffScreen reports whether the flyer left the range through the
	// right, bottom or top edge. The left edge is never checked: targets
	// are launched from it.
	IsOffScreen(width, height float64) bool

	// Draw renders the flyer.
	Draw(r Renderer)

	// Alive is false once the flyer should be retired.
	Alive() bool
}

// body carries the motion state shared by every flyer.
type body struct {
	center   Point
	velocity Velocity
	alive    bool
}

func newBody(at Point, v Velocity) body {
	return body{center: at, velocity: v, alive: true}
}

func (b *body) Advance() {
	b.center.X += b.velocity.DX
	b.center.Y += b.velocity.DY
}

func (b *body) IsOffScreen(width, height float64) bool {
	return b.center.X > width || b.center.Y < 0 || b.center.Y > height
}

func (b *body) Alive() bool {
	return b.alive
}

// Center returns the current position.
func (b *body) Center() Point {
	return b.center
}

// Velocity returns the current velocity.
func (b *body) Velocity() Velocity {
	return b.velocity
}

// cull keeps the flyers that are alive and still on screen.
// It filters in place once iteration over the slice is finished.
func cull[F Flyer](flyers []F, width, height float64) []F {
	kept := flyers[:0]
	for _, f := range flyers {
		if f.Alive() && !f.IsOffScreen(width, height) {
			kept = append(kept, f)
		}
	}
	clear(flyers[len(kept):])
	return kept
}

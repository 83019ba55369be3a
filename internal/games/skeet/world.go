package skeet

// Hit records one bullet striking one target during a step.
type Hit struct {
	Kind   TargetKind
	Delta  int   // Score change
	Killed bool  // Target destroyed by this hit
	At     Point // Target position at the time of the hit
}

// StepReport summarizes what happened during one World.Step.
type StepReport struct {
	Hits    []Hit
	Missed  int // Bullets that left the range without hitting anything
	Spawned int
}

// World owns every entity on the range and advances them one tick at a
// time. It is not safe for concurrent use.
type World struct {
	params     *Params
	rifle      *Rifle
	spawner    *Spawner
	clock      Clock
	bullets    []*Bullet
	targets    []*Target
	explosions []Explosion
	score      int
}

// NewWorld creates an empty range. A nil spawner disables spawning; a nil
// clock is replaced by a 60 Hz TickClock.
func NewWorld(p *Params, spawner *Spawner, clock Clock) *World {
	if clock == nil {
		clock = NewTickClock(60)
	}
	return &World{
		params:  p,
		rifle:   NewRifle(p),
		spawner: spawner,
		clock:   clock,
	}
}

// Rifle returns the range's rifle.
func (w *World) Rifle() *Rifle {
	return w.rifle
}

// Score returns the running score. It may be negative.
func (w *World) Score() int {
	return w.score
}

// Bullets returns the live bullets. The slice must not be modified.
func (w *World) Bullets() []*Bullet {
	return w.bullets
}

// Targets returns the live targets. The slice must not be modified.
func (w *World) Targets() []*Target {
	return w.targets
}

// Explosions returns the active explosions.
func (w *World) Explosions() []Explosion {
	return w.explosions
}

// Fire launches a bullet from the rifle muzzle at the rifle's angle.
func (w *World) Fire() *Bullet {
	p := w.params
	b := NewBullet(w.rifle.Muzzle(), p.BulletRadius, p.BulletSpeed, p.BulletColor)
	b.Fire(w.rifle.Angle())
	w.bullets = append(w.bullets, b)
	return b
}

// AddTarget puts a target on the range.
func (w *World) AddTarget(t *Target) {
	w.targets = append(w.targets, t)
}

// Now returns the world clock time in seconds.
func (w *World) Now() float64 {
	return w.clock.Now()
}

// Tick advances the world clock and steps the simulation at the new time.
func (w *World) Tick() StepReport {
	w.clock.Tick()
	return w.Step(w.clock.Now())
}

// Step advances the simulation by one tick at clock time now.
//
// Order: advance every flyer, cull the ones that left the range, resolve
// bullet/target collisions, retire what was hit, expire old explosions and
// finally give the spawner a chance to launch a target. New targets do not
// move until the next step.
func (w *World) Step(now float64) StepReport {
	var report StepReport
	width, height := w.params.Width, w.params.Height

	for _, b := range w.bullets {
		b.Advance()
	}
	for _, t := range w.targets {
		t.Advance()
	}

	for _, b := range w.bullets {
		if b.Alive() && b.IsOffScreen(width, height) {
			report.Missed++
		}
	}
	w.bullets = cull(w.bullets, width, height)
	w.targets = cull(w.targets, width, height)

	for _, b := range w.bullets {
		for _, t := range w.targets {
			if !t.Alive() || !overlaps(b.center, b.radius, t.center, t.radius) {
				continue
			}
			delta := t.Hit()
			w.score += delta
			b.alive = false
			hit := Hit{Kind: t.kind, Delta: delta, At: t.center}
			if !t.Alive() {
				hit.Killed = true
				w.explosions = append(w.explosions, t.Explode(now))
			}
			report.Hits = append(report.Hits, hit)
			break
		}
	}

	w.bullets = cull(w.bullets, width, height)
	w.targets = cull(w.targets, width, height)
	w.explosions = expire(w.explosions, now)

	if w.spawner != nil {
		if t := w.spawner.Maybe(); t != nil {
			w.targets = append(w.targets, t)
			report.Spawned++
		}
	}

	return report
}

// Draw renders the rifle and every entity.
func (w *World) Draw(r Renderer) {
	for _, e := range w.explosions {
		e.Draw(r)
	}
	for _, t := range w.targets {
		t.Draw(r)
	}
	for _, b := range w.bullets {
		b.Draw(r)
	}
	w.rifle.Draw(r)
}

func expire(explosions []Explosion, now float64) []Explosion {
	kept := explosions[:0]
	for _, e := range explosions {
		if !e.IsExpired(now) {
			kept = append(kept, e)
		}
	}
	return kept
}

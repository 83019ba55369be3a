package skeet

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

func TestAdvanceTranslates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1000, 1000).Draw(t, "x")
		y := rapid.Float64Range(-1000, 1000).Draw(t, "y")
		dx := rapid.Float64Range(-50, 50).Draw(t, "dx")
		dy := rapid.Float64Range(-50, 50).Draw(t, "dy")

		b := newBody(Point{x, y}, Velocity{dx, dy})
		b.Advance()

		if got := b.Center(); got.X != x+dx || got.Y != y+dy {
			t.Fatalf("Advance from (%v, %v) by (%v, %v) = %v", x, y, dx, dy, got)
		}
	})
}

func TestLeftEdgeNeverOffScreen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1e6, 600).Draw(t, "x")
		y := rapid.Float64Range(0, 500).Draw(t, "y")

		b := newBody(Point{x, y}, Velocity{})
		if b.IsOffScreen(600, 500) {
			t.Fatalf("(%v, %v) reported off screen", x, y)
		}
	})
}

func TestSpawnWithinRanges(t *testing.T) {
	p := DefaultParams()

	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		kind := TargetKind(rapid.IntRange(int(Standard), int(Hazard)).Draw(t, "kind"))

		s := NewSpawner(&p, rand.New(rand.NewSource(seed)))
		target := s.Spawn(kind)
		c, v := target.Center(), target.Velocity()
		vr := p.Launch[kind]

		if c.Y < p.Height/2 || c.Y > p.Height {
			t.Fatalf("spawn y = %v outside [%v, %v]", c.Y, p.Height/2, p.Height)
		}
		if v.DX < vr.MinDX || v.DX > vr.MaxDX || v.DY < vr.MinDY || v.DY > vr.MaxDY {
			t.Fatalf("velocity %v outside %+v", v, vr)
		}
	})
}

func TestReinforcedLivesMonotonic(t *testing.T) {
	p := DefaultParams()

	rapid.Check(t, func(t *rapid.T) {
		hits := rapid.IntRange(0, 10).Draw(t, "hits")
		target := NewTarget(Reinforced, &p, Point{100, 300}, Velocity{})

		total := 0
		prev := target.Lives()
		for i := 0; i < hits; i++ {
			total += target.Hit()
			lives := target.Lives()
			if lives < 0 || lives > prev {
				t.Fatalf("lives went from %d to %d", prev, lives)
			}
			prev = lives
		}

		want := hits * PointsHit
		if hits >= p.ReinforcedLives {
			want += PointsReinforcedKill - PointsHit
		}
		if total != want {
			t.Fatalf("%d hits scored %d, want %d", hits, total, want)
		}
		if target.Alive() != (hits < p.ReinforcedLives) {
			t.Fatalf("alive = %v after %d hits", target.Alive(), hits)
		}
	})
}

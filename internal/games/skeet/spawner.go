package skeet

import "math/rand"

// Spawner decides when targets are launched and what kind they are.
// Chance and speed scale are tuned from outside, usually by difficulty.
type Spawner struct {
	rng        *rand.Rand
	params     *Params
	chance     float64
	speedScale float64
}

// NewSpawner creates a spawner drawing from rng with the configured chance.
func NewSpawner(p *Params, rng *rand.Rand) *Spawner {
	return &Spawner{
		rng:        rng,
		params:     p,
		chance:     p.SpawnChance,
		speedScale: 1,
	}
}

// SetRate updates the per-tick spawn chance and the launch speed scale.
func (s *Spawner) SetRate(chance, speedScale float64) {
	s.chance = chance
	s.speedScale = speedScale
}

// Chance returns the current per-tick spawn probability.
func (s *Spawner) Chance() float64 {
	return s.chance
}

// Maybe rolls for a spawn this tick and returns the new target, or nil.
func (s *Spawner) Maybe() *Target {
	if s.chance <= 0 || s.rng.Float64() >= s.chance {
		return nil
	}
	return s.Spawn(s.pickKind())
}

// Spawn launches a target of the given kind from the left edge at a random
// height in the upper half of the range.
func (s *Spawner) Spawn(kind TargetKind) *Target {
	p := s.params
	vr := p.Launch[kind]
	at := Point{
		X: p.SpawnX,
		Y: s.uniform(p.Height/2, p.Height),
	}
	v := Velocity{
		DX: s.uniform(vr.MinDX, vr.MaxDX) * s.speedScale,
		DY: s.uniform(vr.MinDY, vr.MaxDY) * s.speedScale,
	}
	return NewTarget(kind, p, at, v)
}

func (s *Spawner) pickKind() TargetKind {
	w := s.params.SpawnWeights
	total := 0.0
	for _, x := range w {
		total += x
	}
	roll := s.rng.Float64() * total
	for k := Standard; k < kindCount; k++ {
		if roll < w[k] {
			return k
		}
		roll -= w[k]
	}
	return Standard
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

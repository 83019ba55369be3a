package skeet

// Clock supplies monotonic seconds to the simulation. Tick is called once
// per simulation step, before Now is read.
type Clock interface {
	Tick()
	Now() float64
}

// TickClock derives time from a tick counter, so replays with the same
// seed and input are identical.
type TickClock struct {
	ticks int
	rate  int
}

var _ Clock = (*TickClock)(nil)

// NewTickClock creates a clock that advances 1/rate seconds per tick.
func NewTickClock(rate int) *TickClock {
	if rate <= 0 {
		rate = 60
	}
	return &TickClock{rate: rate}
}

// Tick advances the clock by one tick.
func (c *TickClock) Tick() {
	c.ticks++
}

// Ticks returns the number of ticks elapsed.
func (c *TickClock) Ticks() int {
	return c.ticks
}

// Now returns elapsed seconds.
func (c *TickClock) Now() float64 {
	return float64(c.ticks) / float64(c.rate)
}

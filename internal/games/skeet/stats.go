package skeet

import "github.com/vovakirdan/tui-skeet/internal/core"

// tally accumulates run statistics from step reports.
type tally struct {
	core.RunStats
	streak int
}

func (t *tally) shot() {
	t.Shots++
}

// record folds one step into the totals. A hazard hit or a bullet leaving
// the range breaks the streak.
func (t *tally) record(r StepReport) {
	for _, h := range r.Hits {
		t.Hits++
		if h.Kind == Hazard {
			t.HazardsHit++
			t.streak = 0
			continue
		}
		if h.Killed {
			t.Destroyed++
		}
		t.streak++
		t.BestStreak = max(t.BestStreak, t.streak)
	}
	if r.Missed > 0 {
		t.streak = 0
	}
}

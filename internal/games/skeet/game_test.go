package skeet

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-skeet/internal/config"
	"github.com/vovakirdan/tui-skeet/internal/core"
	"github.com/vovakirdan/tui-skeet/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  60,
		ScreenH:  51,
		TickRate: 60,
		Seed:     seed,
	}
}

// withRound sets the round length for the duration of a test.
func withRound(t *testing.T, seconds float64) {
	t.Helper()
	SetRoundSeconds(seconds)
	t.Cleanup(func() { SetRoundSeconds(-1) })
}

// withPreset sets the difficulty preset for the duration of a test.
func withPreset(t *testing.T, preset string) {
	t.Helper()
	SetDifficultyPreset(preset)
	t.Cleanup(func() { SetDifficultyPreset("") })
}

// withConfigFile points the game at a config file holding body.
func withConfigFile(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skeet.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func fireEvery(n, ticks int) []core.InputFrame {
	frames := make([]core.InputFrame, ticks)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		if i%n == 0 {
			frames[i].Set(core.ActionFire)
		}
		if i%50 == 0 {
			frames[i].Set(core.ActionDown)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	inputs := fireEvery(7, 600)

	run := func() *Game {
		g := NewEndless()
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()

	if g1.State().Score != g2.State().Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", g1.State().Score, g2.State().Score)
	}
	if g1.Stats() != g2.Stats() {
		t.Errorf("Determinism failed: stats differ. Run1=%+v, Run2=%+v", g1.Stats(), g2.Stats())
	}
	if len(g1.World().Targets()) != len(g2.World().Targets()) {
		t.Errorf("Determinism failed: target counts differ")
	}
	if g1.Stats().Shots != 86 {
		t.Errorf("shots = %d, want 86", g1.Stats().Shots)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	for _, in := range fireEvery(5, 120) {
		g.Step(in)
	}
	if g.Stats().Shots == 0 {
		t.Fatal("expected shots before reset")
	}

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("state after reset = %+v, want zero", state)
	}
	if g.Stats() != (core.RunStats{}) {
		t.Errorf("stats after reset = %+v, want zero", g.Stats())
	}
	if g.ticks != 0 {
		t.Errorf("ticks after reset = %d, want 0", g.ticks)
	}
	if len(g.World().Bullets()) != 0 {
		t.Error("bullets should be cleared on reset")
	}
}

func TestRoundOver(t *testing.T) {
	withRound(t, 1)

	g := New()
	g.Reset(testRuntime(1))

	for i := 1; i < 60; i++ {
		if res := g.Step(core.NewInputFrame()); res.State.GameOver {
			t.Fatalf("round over early at tick %d", i)
		}
	}

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("round should be over after one second")
	}
	found := false
	for _, e := range res.Events {
		if e.Name == EventRoundOver {
			found = true
		}
	}
	if !found {
		t.Errorf("events = %+v, want %s", res.Events, EventRoundOver)
	}

	// Further steps are no-ops
	before := g.ticks
	g.Step(core.NewInputFrame())
	if g.ticks != before {
		t.Error("clock advanced after round over")
	}
}

func TestEndlessNeverEnds(t *testing.T) {
	withRound(t, 1)

	g := NewEndless()
	g.Reset(testRuntime(1))

	for i := 0; i < 300; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			t.Fatalf("endless run ended at tick %d", i)
		}
	}
}

func TestPauseStopsClock(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	if !g.Step(pause).State.Paused {
		t.Fatal("expected paused state")
	}
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.ticks != 0 {
		t.Errorf("ticks while paused = %d, want 0", g.ticks)
	}

	if g.Step(pause).State.Paused {
		t.Error("second pause should resume")
	}
	if g.ticks != 1 {
		t.Errorf("ticks after resume = %d, want 1", g.ticks)
	}
}

func TestAimKeys(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up)
	if got := g.World().Rifle().Angle(); got != 48 {
		t.Errorf("angle after up = %v, want 48", got)
	}

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	g.Step(down)
	g.Step(down)
	if got := g.World().Rifle().Angle(); got != 42 {
		t.Errorf("angle after two downs = %v, want 42", got)
	}
}

func TestPointerAims(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.SetPointer(30, 26) // World (305, 245)
	g.Step(in)

	want := math.Atan2(245, 305) * 180 / math.Pi
	if got := g.World().Rifle().Angle(); !near(got, want) {
		t.Errorf("angle = %v, want %v", got, want)
	}
}

func TestFireCountsShots(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)
	g.Step(in)

	if g.Stats().Shots != 2 {
		t.Errorf("shots = %d, want 2", g.Stats().Shots)
	}
	if len(g.World().Bullets()) != 2 {
		t.Errorf("bullets = %d, want 2", len(g.World().Bullets()))
	}
}

func TestHitEvents(t *testing.T) {
	g := NewEndless()
	g.Reset(testRuntime(1))
	g.World().Rifle().SetAngle(0)
	g.World().AddTarget(NewTarget(Hazard, &g.params, Point{20, 0}, Velocity{}))

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	res := g.Step(in)

	if len(res.Events) != 1 || res.Events[0].Name != EventHazardHit {
		t.Fatalf("events = %+v, want one %s", res.Events, EventHazardHit)
	}
	if res.State.Score != -10 || g.Stats().HazardsHit != 1 {
		t.Errorf("score=%d hazards=%d, want -10/1", res.State.Score, g.Stats().HazardsHit)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	dst := core.NewScreen(60, 51)
	g.Render(dst)

	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("HUD = %q, want score", dst.Row(0))
	}

	small := core.NewScreen(20, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small terminal should show a warning")
	}
}

func TestRenderRoundOver(t *testing.T) {
	withRound(t, 0.5)

	g := New()
	g.Reset(testRuntime(1))
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	dst := core.NewScreen(60, 51)
	g.Render(dst)
	if !strings.Contains(dst.String(), "ROUND OVER") {
		t.Error("expected round over message")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"skeet", "skeet_endless"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}

	scored := registry.Scored()
	if len(scored) != 1 || scored[0].ID != "skeet" {
		t.Errorf("Scored() = %+v, want only the timed range", scored)
	}
}

func TestResetFallsBackOnInvalidConfig(t *testing.T) {
	withConfigFile(t, "bullet:\n  radius: -1\n")
	withPreset(t, "hard")

	g := New()
	g.Reset(testRuntime(1))

	err := g.ConfigErr()
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("ConfigErr() = %v, want ErrInvalidConfig", err)
	}
	defaults := DefaultParams()
	if g.params.BulletRadius != defaults.BulletRadius {
		t.Errorf("bullet radius = %v, want default %v", g.params.BulletRadius, defaults.BulletRadius)
	}
	if got, want := g.params.SpawnWeights[Hazard], 2*defaults.SpawnWeights[Hazard]; got != want {
		t.Errorf("hazard weight = %v, want %v from the hard preset", got, want)
	}
}

func TestResetReportsUnreadableConfig(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime(1))
	if g.ConfigErr() == nil {
		t.Error("missing config file should be reported")
	}

	withConfigFile(t, "round:\n  seconds: 30\n")
	g.Reset(testRuntime(1))
	if err := g.ConfigErr(); err != nil {
		t.Errorf("ConfigErr() = %v after a clean load", err)
	}
	if g.round != 30 {
		t.Errorf("round = %v, want 30", g.round)
	}
}

func TestDifficultyLabel(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	if got := g.Difficulty(); got != "config" {
		t.Errorf("Difficulty() = %q without a preset, want config", got)
	}

	withPreset(t, "easy")
	g.Reset(testRuntime(1))
	if got := g.Difficulty(); got != "easy" {
		t.Errorf("Difficulty() = %q, want easy", got)
	}
}

package skeet

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-skeet/internal/config"
	"github.com/vovakirdan/tui-skeet/internal/core"
	"github.com/vovakirdan/tui-skeet/internal/registry"
)

// Mode selects how a run ends.
type Mode int

const (
	ModeRound   Mode = iota // Ends when the round timer runs out
	ModeEndless             // Never ends
)

// Minimum terminal size for a playable range
const (
	MinScreenW = 30
	MinScreenH = 12
)

// Event names reported in StepResult.Events
const (
	EventTargetHit = "target_hit"
	EventHazardHit = "hazard_hit"
	EventRoundOver = "round_over"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// roundOverride replaces the configured round length when >= 0
var roundOverride = -1.0

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetRoundSeconds overrides the round length. Negative restores the
// configured value; 0 means no timer.
func SetRoundSeconds(seconds float64) {
	roundOverride = seconds
}

// Game implements the skeet range on top of World.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	params     Params
	world      *World
	ticks      int
	difficulty *config.DifficultyManager
	preset     config.DifficultyPreset
	configErr  error
	stats      tally
	round      float64 // Seconds, 0 for no limit
	vp         viewport
	gameOver   bool
	paused     bool
}

// New creates a timed skeet round.
func New() *Game {
	return &Game{mode: ModeRound}
}

// NewEndless creates a skeet range without a timer.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "skeet_endless"
	}
	return "skeet"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Skeet (Endless)"
	}
	return "Skeet"
}

// Timed reports whether runs end on a round timer.
func (g *Game) Timed() bool {
	return g.mode == ModeRound
}

// Reset loads the configuration and starts a new run.
// An unreadable or invalid config falls back to the defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.configErr = nil
	g.preset = difficultyPreset

	cfg, err := config.LoadSkeet(configPath)
	if err != nil {
		g.configErr = err
		cfg = config.DefaultSkeetConfig()
	}
	cfg = g.tune(cfg)

	params, err := NewParams(cfg)
	if err != nil {
		g.configErr = err
		cfg = g.tune(config.DefaultSkeetConfig())
		if params, err = NewParams(cfg); err != nil {
			panic("skeet: default config is invalid: " + err.Error())
		}
	}
	g.params = params

	g.round = cfg.Round.Seconds
	if g.mode == ModeEndless {
		g.round = 0
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(&g.params, NewSpawner(&g.params, rng), NewTickClock(runtime.TickRate))
	g.ticks = 0
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.stats = tally{}
	g.vp = g.viewportFor(runtime.ScreenW, runtime.ScreenH)
	g.gameOver = false
	g.paused = false
}

// tune applies the difficulty preset and round override set from the CLI.
func (g *Game) tune(cfg config.SkeetConfig) config.SkeetConfig {
	config.ApplySkeetPreset(&cfg, g.preset)
	if roundOverride >= 0 {
		cfg.Round.Seconds = roundOverride
	}
	return cfg
}

// viewportFor lays the range out below the HUD row.
func (g *Game) viewportFor(w, h int) viewport {
	return newViewport(1, w, h-1, g.params.Width, g.params.Height)
}

// Step advances the range by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	rifle := g.world.Rifle()

	if in.Has(core.ActionUp) {
		rifle.Rotate(g.params.AimStep)
	}
	if in.Has(core.ActionDown) {
		rifle.Rotate(-g.params.AimStep)
	}
	if p, ok := in.Pointer(); ok && !g.vp.empty() {
		rifle.AimAt(g.vp.ToWorld(p.X, p.Y))
	}
	if in.Has(core.ActionFire) {
		g.world.Fire()
		g.stats.shot()
	}

	score := g.world.Score()
	g.world.spawner.SetRate(
		g.difficulty.SpawnChance(g.params.SpawnChance, score, g.ticks),
		g.difficulty.Speed(1, score, g.ticks),
	)

	report := g.world.Tick()
	now := g.world.Now()
	g.stats.record(report)
	g.stats.Seconds = now

	var events []core.Event
	for _, h := range report.Hits {
		name := EventTargetHit
		if h.Kind == Hazard {
			name = EventHazardHit
		}
		events = append(events, core.Event{
			Name:   name,
			Fields: []any{"kind", h.Kind.String(), "delta", h.Delta, "killed", h.Killed, "score", g.world.Score()},
		})
	}

	if g.round > 0 && now >= g.round-expiryTolerance {
		g.gameOver = true
		events = append(events, core.Event{
			Name:   EventRoundOver,
			Fields: []any{"score", g.world.Score(), "shots", g.stats.Shots, "hits", g.stats.Hits},
		})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// timeLeft returns the remaining round time in seconds.
func (g *Game) timeLeft() float64 {
	return max(g.round-g.world.Now(), 0)
}

// Render draws the range and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	g.vp = g.viewportFor(dst.Width(), dst.Height())
	g.world.Draw(newScreenRenderer(dst, g.vp))

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "ROUND OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score()))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	clock := "--"
	if g.round > 0 {
		clock = fmt.Sprintf("%4.1fs", g.timeLeft())
	}
	hud := fmt.Sprintf(" Score: %d  Time: %s  Angle: %2.0f  Acc: %3.0f%% ",
		g.world.Score(), clock, g.world.Rifle().Angle(), g.stats.Accuracy()*100)
	dst.DrawHLine(0, 0, dst.Width(), '─')
	dst.DrawTextColor(2, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)
	boxX, boxY := box.X, box.Y

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Stats returns the statistics of the current run.
func (g *Game) Stats() core.RunStats {
	return g.stats.RunStats
}

// Difficulty returns the preset the run was started with, or "config" when
// the difficulty section of the config file applies unchanged.
func (g *Game) Difficulty() string {
	return config.PresetLabel(g.preset)
}

// ConfigErr returns why the configuration was replaced by the defaults on
// the last Reset, or nil if it loaded cleanly.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register("skeet", func() registry.Game {
		return New()
	})
	registry.Register("skeet_endless", func() registry.Game {
		return NewEndless()
	})
}

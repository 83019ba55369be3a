// Package registry keeps the shooting ranges known to the binary.
// Ranges register a factory from init(), so the CLI and the TUI can list
// and start them without importing each one by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-skeet/internal/core"
)

// Game is a range driven by the platform one fixed tick at a time.
// Implementations hold no terminal state; the platform maps keys to
// InputFrame actions and paints the Screen they render into.
type Game interface {
	// ID is the stable identifier used by the CLI and the score table.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run sized and seeded by cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick and reports what happened during it.
	Step(in core.InputFrame) core.StepResult

	// Render paints the current frame into dst.
	Render(dst *core.Screen)

	// State reports score, pause and game over.
	State() core.GameState
}

// RunReporter is implemented by games whose finished runs are recorded.
type RunReporter interface {
	Stats() core.RunStats
	Difficulty() string // Stored with the run
}

// ConfigReporter is implemented by games that load a config file on Reset.
// A non-nil error means the file was ignored in favor of the defaults.
type ConfigReporter interface {
	ConfigErr() error
}

// Timed is implemented by games whose runs can end. Runs of untimed games
// never finish, so they have no scores.
type Timed interface {
	Timed() bool
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Scored bool // Finished runs land on the scoreboard
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

type entry struct {
	info    GameInfo
	factory Factory
}

// Register adds a game under id. It builds one instance to read the title
// and whether runs are scored. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title(), Scored: true}
	if t, ok := g.(Timed); ok {
		info.Scored = t.Timed()
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Scored returns the games whose runs are recorded, ordered by ID.
func Scored() []GameInfo {
	return slices.DeleteFunc(List(), func(g GameInfo) bool {
		return !g.Scored
	})
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

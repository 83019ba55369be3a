package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skeet/internal/config"
	"github.com/vovakirdan/tui-skeet/internal/core"
	"github.com/vovakirdan/tui-skeet/internal/games/skeet"
	"github.com/vovakirdan/tui-skeet/internal/platform/tui"
	"github.com/vovakirdan/tui-skeet/internal/registry"
	"github.com/vovakirdan/tui-skeet/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRound      float64
)

var playCmd = &cobra.Command{
	Use:   "play [range]",
	Short: "Play a range",
	Long: `Start shooting on the specified range (default: skeet).

Controls:
  Up/Down, W/S   - Raise/lower the rifle
  Mouse          - Aim at the pointer
  Space, click   - Fire
  P/Esc          - Pause
  R              - Restart
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, fewer hazards
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, more hazards
  fixed  - No progression, stays at config's initial level

Examples:
  skeet play
  skeet play skeet_endless
  skeet play --difficulty hard --round 30
  skeet play --config ./my-skeet.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().Float64Var(&flagRound, "round", -1, "Round length in seconds (0 = no timer, -1 = from config)")
}

// configureSkeet checks the configuration the range will load and hands
// the CLI settings to the game package.
func configureSkeet(preset string) error {
	p, ok := config.ParsePreset(preset)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}

	cfg, err := config.LoadSkeet(flagConfig)
	if err != nil {
		return err
	}
	config.ApplySkeetPreset(&cfg, p)
	if flagRound >= 0 {
		cfg.Round.Seconds = flagRound
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	skeet.SetConfigPath(flagConfig)
	skeet.SetDifficultyPreset(preset)
	skeet.SetRoundSeconds(flagRound)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "skeet"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown range %q, run 'skeet list' to see available ranges", gameID)
	}

	if err := configureSkeet(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Logger: logger}
	if err := tui.Run(game, store, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

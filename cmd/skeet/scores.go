package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skeet/internal/registry"
	"github.com/vovakirdan/tui-skeet/internal/storage"
)

var (
	flagClear            bool
	flagLimit            int
	flagAll              bool
	flagRunID            string
	flagScoresDifficulty string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [range]",
	Short: "Show high scores for a range",
	Long: `Display the top high scores for the specified range (default: skeet),
with accuracy and best streak for each run, followed by a summary per
difficulty.

Examples:
  skeet scores
  skeet scores --limit 20
  skeet scores --difficulty hard
  skeet scores --all
  skeet scores --run 6f1c0c9e-8a44-4d53-9a3e-2f0b5d1e7c11
  skeet scores skeet --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the range")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded run instead of the top scores")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show the details of one run by its ID (printed in the log when a run is saved)")
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show runs played at this difficulty (easy, normal, hard, fixed, config)")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "limit")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagRunID != "" {
		return printRun(store, flagRunID)
	}

	gameID := "skeet"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown range %q, run 'skeet list' to see available ranges", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAll {
		scores, err = store.AllScores(gameID, flagScoresDifficulty)
	} else {
		scores, err = store.TopScoresByDifficulty(gameID, flagScoresDifficulty, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	if flagScoresDifficulty != "" {
		fmt.Printf("High Scores - %s (%s)\n", title, flagScoresDifficulty)
	} else {
		fmt.Printf("High Scores - %s\n", title)
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skeet play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-9s  %-6s  %-10s  %s\n", "Rank", "Score", "Acc", "Hits", "Streak", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-9s  %-6s  %-10s  %s\n", "----", "-----", "---", "----", "------", "----------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-7d  %-5s  %-9s  %-6d  %-10s  %s\n",
			i+1,
			entry.Score,
			fmt.Sprintf("%.0f%%", entry.Stats.Accuracy()*100),
			fmt.Sprintf("%d/%d", entry.Stats.Hits, entry.Stats.Shots),
			entry.Stats.BestStreak,
			entry.Difficulty,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Accuracy: %.0f%%\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Accuracy()*100)

	byDifficulty, err := store.DifficultyStats(gameID)
	if err != nil || len(byDifficulty) < 2 {
		return nil
	}
	names := make([]string, 0, len(byDifficulty))
	for name := range byDifficulty {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		s := byDifficulty[name]
		fmt.Printf("  %-8s best %d over %d runs, %.0f%% accuracy\n",
			name, s.HighScore, s.GamesCount, s.Accuracy()*100)
	}
	return nil
}

// printRun shows every recorded field of one run.
func printRun(store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	fmt.Printf("Run %s\n\n", run.RunID)
	fmt.Printf("  Range:        %s\n", run.GameID)
	fmt.Printf("  Played:       %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Difficulty:   %s\n", run.Difficulty)
	fmt.Printf("  Score:        %d\n", run.Score)
	fmt.Printf("  Duration:     %.1fs\n", run.Stats.Seconds)
	fmt.Printf("  Shots:        %d\n", run.Stats.Shots)
	fmt.Printf("  Hits:         %d (%.0f%%)\n", run.Stats.Hits, run.Stats.Accuracy()*100)
	fmt.Printf("  Destroyed:    %d\n", run.Stats.Destroyed)
	fmt.Printf("  Hazards hit:  %d\n", run.Stats.HazardsHit)
	fmt.Printf("  Best streak:  %d\n", run.Stats.BestStreak)
	return nil
}

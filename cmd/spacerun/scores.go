package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacerun/internal/platform/tui"
	"github.com/vovakirdan/spacerun/internal/storage"
)

const gameID = "spacerun"

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresLongest     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best Space Run runs with pilot, score and survival time.

Examples:
  spacerun scores
  spacerun scores --limit 25
  spacerun scores --longest   # rank by survival time
  spacerun scores -i          # interactive table`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresLongest, "longest", false, "Rank by survival time instead of score")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresInteractive {
		rt := runtimeConfig()
		_, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
		return err
	}

	title, list := "High Scores - Space Run", store.TopScores
	if flagScoresLongest {
		title, list = "Longest Flights - Space Run", store.LongestRuns
	}
	scores, err := list(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'spacerun play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %-9s  %s\n", "Rank", "Pilot", "Score", "Survived", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %-9s  %s\n", "----", "-----", "-----", "--------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-14s  %-8d  %-9s  %s\n",
			i+1, entry.Player, entry.Score,
			fmt.Sprintf("%.1fs", entry.Survived),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Longest: %.1fs\n", stats.BestScore, stats.Runs, stats.LongestRun)
	}
	return nil
}

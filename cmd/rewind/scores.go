package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rewind/internal/level"
	"github.com/vovakirdan/tui-rewind/internal/platform/tui"
	"github.com/vovakirdan/tui-rewind/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best runs",
	Long: `Display the fastest runs.

With a level argument, prints the top 10 runs for that level.
Without arguments, opens the interactive leaderboard.

Examples:
  rewind scores
  rewind scores rooftop
  rewind scores clockwork`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		runLeaderboard()
		return
	}

	levelID := args[0]

	if !level.Exists(levelID) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'rewind levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.BestRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rewind play %s' to set the first record!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "Rank", "Time", "Coins", "Rewinds", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "----", "----", "-----", "-------", "----")

	for i, entry := range runs {
		d := time.Duration(entry.Millis) * time.Millisecond
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-6d  %-8d  %s\n",
			i+1, d.Round(100*time.Millisecond), entry.Coins, entry.Rewinds, dateStr)
	}

	fmt.Println()
	if best, err := store.BestTime(levelID); err == nil && best > 0 {
		d := time.Duration(best) * time.Millisecond
		fmt.Printf("Best: %s\n", d.Round(100*time.Millisecond))
	}
}

// runLeaderboard opens the interactive best-runs screen.
func runLeaderboard() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	cfg := runtimeConfig()
	if _, err := tui.RunLeaderboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

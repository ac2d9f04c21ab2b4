package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rewind/internal/game"
	"github.com/vovakirdan/tui-rewind/internal/platform/tui"
	"github.com/vovakirdan/tui-rewind/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with an interactive level picker",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After a run ends, you return to the picker to play again.

Examples:
  rewind menu
  rewind menu --fps 30
  rewind menu --db ./rewind.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db)
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	cfg := runtimeConfig()

	// Picker loop
	for {
		result, err := tui.RunPicker(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = result.Config
		if result.Quit || result.LevelID == "" {
			break
		}

		game.SetLevel(result.LevelID)
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game.New(), store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to the picker
	}

	if store != nil {
		store.Close()
	}
}

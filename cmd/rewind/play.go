package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rewind/internal/core"
	"github.com/vovakirdan/tui-rewind/internal/game"
	"github.com/vovakirdan/tui-rewind/internal/level"
	"github.com/vovakirdan/tui-rewind/internal/platform/tui"
	"github.com/vovakirdan/tui-rewind/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelFile  string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (default: rooftop).

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump
  T                - Toggle time rewind
  F                - Freeze pulse (stuns nearby enemies)
  P                - Pause
  R                - Restart (after death or win)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Longer rewind window, slower enemies
  normal - Config values as loaded
  hard   - Short rewind window, faster enemies

Examples:
  rewind play
  rewind play clockwork
  rewind play rooftop --difficulty hard
  rewind play --level-file ./my-level.yaml
  rewind play --config ./my-tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Path to a custom level YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	switch {
	case flagLevelFile != "":
		game.SetLevelFile(flagLevelFile)
	case len(args) == 1:
		if !level.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'rewind levels' to see available levels.")
			os.Exit(1)
		}
		game.SetLevel(args[0])
	default:
		game.SetLevel(game.DefaultLevelID)
	}

	cfg := runtimeConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game.New(), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

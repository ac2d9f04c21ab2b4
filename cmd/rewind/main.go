// rewind is a terminal platformer built around time rewind: walk, jump and
// collect coins, and when things go wrong, rewind the level and try again.
//
// Usage:
//
//	rewind levels            - List available levels
//	rewind play [level]      - Play a level
//	rewind menu              - Pick levels interactively
//	rewind serve             - Start SSH server for remote play
//	rewind scores [level]    - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tui-rewind/rewind.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rewind/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rewind",
	Short: "Chrono Runner - a time-rewind platformer in your terminal",
	Long: `Chrono Runner is a terminal platformer where time is a resource.
Run, jump, dodge patrol enemies and collect every coin - and when a run
goes wrong, hit rewind and watch the whole level flow backwards.

Available commands:
  levels   - Show all built-in levels
  play     - Play a level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  rewind levels
  rewind play rooftop
  rewind play --level-file ./my-level.yaml
  rewind menu
  rewind serve --ssh :2222
  rewind scores rooftop`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

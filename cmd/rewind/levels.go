package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rewind/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all built-in levels",
	Long:  `Shows a list of all levels registered in the game.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	infos := level.List()

	if len(infos) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	for _, info := range infos {
		fmt.Printf("  %-*s  %s\n", maxIDLen, info.ID, info.Name)
	}

	fmt.Println()
	fmt.Println("Run 'rewind play <id>' to play a level.")
}

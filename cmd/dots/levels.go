package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in campaign, any level files from the configured
levels directory and the free play board.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) {
	a := mustLoadApp(cmd, false)
	defer a.Close()

	if len(a.catalog) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, lvl := range a.catalog {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Board")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "-----")

	for _, lvl := range a.catalog {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, lvl.ID, maxNameLen, lvl.Name, lvl.Summary())
	}

	fmt.Println()
	fmt.Println("Run 'dots play <id>' to play a level.")
}

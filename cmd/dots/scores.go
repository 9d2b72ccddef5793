package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/levels"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show high scores for a level",
	Long: `Display the top 10 results for the specified level.

Examples:
  dots scores 01-classic
  dots scores free
  dots scores 02-goals --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all results for the level")
}

func runScores(cmd *cobra.Command, args []string) {
	a := mustLoadApp(cmd, false)
	defer a.Close()

	lvl, err := levels.Find(a.catalog, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'dots levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(a.cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(lvl.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		a.logger.Info("scores cleared", "level", lvl.ID)
		fmt.Printf("Cleared scores for %s.\n", lvl.Name)
		return
	}

	results, err := store.TopScores(lvl.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", lvl.Name)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dots play %s' to set the first high score!\n", lvl.ID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Moves", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "-----", "------", "------", "----")

	for i, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6s  %-12s  %s\n",
			i+1, r.Score, r.MovesUsed, outcome, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetLevelStats(lvl.ID); err == nil {
		fmt.Printf("Best: %d  Plays: %d  Won: %.0f%%\n", stats.HighScore, stats.Plays, stats.WinRate()*100)
	}
}

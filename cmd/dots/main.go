// dots is a tile-matching puzzle for the terminal: drag across adjacent
// dots of one color to clear them, close a loop to clear the whole color.
//
// Usage:
//
//	dots                     - Open the level menu
//	dots play [level|free]   - Play a level directly
//	dots levels              - List available levels
//	dots scores <level>      - Show high scores for a level
//	dots serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.dots/configs, ./configs)
//	--fps <rate>         - Set frame rate (default: from config, 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.dots/scores.db)
//	--difficulty <name>  - Scale move budgets: easy, normal, hard
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Where the log goes while the TUI owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dots",
	Short: "Dots - connect same-colored dots in your terminal",
	Long: `Dots is a tile-matching puzzle played with the mouse.

Press on a dot and drag through adjacent dots of the same color, then
release to clear them. Closing a loop clears every dot of that color.
Each clear costs one move; meet the level's goals before you run out.

Available commands:
  play     - Play a level directly
  levels   - List available levels
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  dots
  dots play 02-goals
  dots play free --seed 42
  dots scores 01-classic
  dots serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runSession(cmd, "")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dots/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.dots/dots.log", "Log file path")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

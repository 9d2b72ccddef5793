package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/platform/tui"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or free play when none is given.

Controls:
  Mouse drag - Connect adjacent dots of one color
  Release    - Clear the connected dots
  R          - Restart the board
  Esc/B      - Back to the level menu
  ?          - Toggle help
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options scale every level's move budget:
  easy   - 1.5x moves
  normal - as designed
  hard   - 0.7x moves

Examples:
  dots play
  dots play 02-goals
  dots play 04-scripted --difficulty hard
  dots play free --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := "free"
	if len(args) == 1 {
		levelID = args[0]
	}
	runSession(cmd, levelID)
}

// runSession starts the TUI, opening levelID directly when it is not empty.
func runSession(cmd *cobra.Command, levelID string) {
	a := mustLoadApp(cmd, true)
	defer a.Close()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if a.cfg.TickRate > 0 {
		rt.TickRate = a.cfg.TickRate
	}
	rt.Seed = flagSeed

	store, err := storage.Open(a.cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		a.logger.Warn("could not open scores database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	a.logger.Info("session starting", "level", levelID, "width", rt.ScreenW, "height", rt.ScreenH)
	runErr := tui.Run(tui.SessionConfig{
		Levels:  a.catalog,
		Store:   store,
		Runtime: rt,
		Logger:  a.logger,
		Player:  "local",
		UISize:  a.cfg.UISize,
		Start:   levelID,
	})
	if runErr != nil {
		a.logger.Error("session failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// Package config provides YAML-based configuration for the dots platform:
// the runtime settings of the host and the free-play board.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

// Config is the platform configuration.
type Config struct {
	TickRate  int        `yaml:"tick_rate"`  // Frames per second
	DBPath    string     `yaml:"db_path"`    // SQLite results database
	LevelsDir string     `yaml:"levels_dir"` // Extra level files, may be empty
	UISize    int        `yaml:"ui_size"`    // Height of the UI bar in half-rows
	Log       LogConfig  `yaml:"log"`
	FreePlay  GameConfig `yaml:"free_play"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// GameConfig describes one board: size, move budget, goals and color script.
// Level files embed it inline.
type GameConfig struct {
	Width       int          `yaml:"width"`
	Height      int          `yaml:"height"`
	Moves       int          `yaml:"moves"`
	Goals       []GoalConfig `yaml:"goals,omitempty"`
	Script      []string     `yaml:"script,omitempty"`
	AfterScript string       `yaml:"after_script,omitempty"` // "random" or "dummy"
	Seed        int64        `yaml:"seed,omitempty"`
}

// GoalConfig is a goal as written in YAML.
type GoalConfig struct {
	Color  string `yaml:"color"`
	Needed int    `yaml:"needed"`
}

// Settings converts the YAML form into validated board settings.
func (g GameConfig) Settings() (dots.Settings, error) {
	script, err := dots.ParseColors(g.Script)
	if err != nil {
		return dots.Settings{}, fmt.Errorf("config: script: %w", err)
	}
	fallback, err := dots.ParseFallback(g.AfterScript)
	if err != nil {
		return dots.Settings{}, fmt.Errorf("config: after_script: %w", err)
	}

	goals := make([]dots.Goal, 0, len(g.Goals))
	for i, gc := range g.Goals {
		c, err := dots.ParseColor(gc.Color)
		if err != nil {
			return dots.Settings{}, fmt.Errorf("config: goal %d: %w", i, err)
		}
		goals = append(goals, dots.Goal{Color: c, Needed: gc.Needed})
	}

	s := dots.Settings{
		Width:       g.Width,
		Height:      g.Height,
		Moves:       g.Moves,
		Goals:       goals,
		Script:      script,
		AfterScript: fallback,
		Seed:        g.Seed,
	}
	if err := s.Validate(); err != nil {
		return dots.Settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

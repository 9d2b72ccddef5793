package config

import (
	"fmt"
	"math"
)

// DifficultyPreset scales the move budget of a board.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty parses a preset name. An empty name is normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// MoveMultiplier returns the factor applied to a board's moves.
func MoveMultiplier(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.7
	default:
		return 1.0
	}
}

// ApplyPreset scales the move budget of cfg, never below one move.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	cfg.Moves = max(int(math.Round(float64(cfg.Moves)*MoveMultiplier(preset))), 1)
}

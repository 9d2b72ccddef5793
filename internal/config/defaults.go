package config

import (
	_ "embed"
)

//go:embed defaults/dots.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when no YAML is found.
func Default() Config {
	return Config{
		TickRate:  30,
		DBPath:    "~/.dots/scores.db",
		LevelsDir: "",
		UISize:    6,
		Log: LogConfig{
			Level: "info",
			File:  "~/.dots/dots.log",
		},
		FreePlay: GameConfig{
			Width:       6,
			Height:      6,
			Moves:       30,
			AfterScript: "random",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/levels"
)

// app is the state every command starts from: the loaded configuration with
// flags applied, the level catalog and a logger.
type app struct {
	cfg     config.Config
	catalog []levels.Level
	logger  *log.Logger
	logFile *os.File
}

// loadApp reads the configuration, applies command-line overrides and builds
// the catalog. When toFile is set the logger writes to the configured log
// file instead of stderr.
func loadApp(cmd *cobra.Command, toFile bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return nil, err
	}

	catalog, err := levels.Catalog(config.ExpandPath(cfg.LevelsDir))
	if err != nil {
		return nil, err
	}
	catalog = append(catalog, levels.FreePlay(cfg.FreePlay))
	for i := range catalog {
		config.ApplyPreset(&catalog[i].Game, preset)
	}

	a := &app{cfg: cfg, catalog: catalog}
	if err := a.openLogger(toFile); err != nil {
		return nil, err
	}
	return a, nil
}

// applyFlags overrides configuration fields with flags the user set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("fps") && flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
}

func (a *app) openLogger(toFile bool) error {
	level, err := log.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	out := os.Stderr
	if toFile {
		path := config.ExpandPath(a.cfg.Log.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		a.logFile = f
		out = f
	}

	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dots",
		Level:           level,
	})
	return nil
}

func (a *app) Close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// mustLoadApp is loadApp for command handlers: errors end the process.
func mustLoadApp(cmd *cobra.Command, toFile bool) *app {
	a, err := loadApp(cmd, toFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

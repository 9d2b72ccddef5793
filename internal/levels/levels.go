// Package levels loads board definitions from YAML files: the built-in
// campaign embedded in the binary and any extra files from a directory.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/dots"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned when no level has the requested ID.
var ErrNotFound = errors.New("levels: level not found")

// Level is a named board definition.
type Level struct {
	ID       string
	Name     string
	Game     config.GameConfig
	FilePath string
}

// Settings returns the validated board settings of the level.
func (l Level) Settings() (dots.Settings, error) {
	s, err := l.Game.Settings()
	if err != nil {
		return dots.Settings{}, fmt.Errorf("levels: %s: %w", l.ID, err)
	}
	return s, nil
}

// Summary is a one-line description for listings.
func (l Level) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d, %d moves", l.Game.Width, l.Game.Height, l.Game.Moves)
	for _, g := range l.Game.Goals {
		fmt.Fprintf(&sb, ", %d %s", g.Needed, g.Color)
	}
	if len(l.Game.Script) > 0 {
		sb.WriteString(", scripted")
	}
	return sb.String()
}

// file is the YAML layout of a level file.
type file struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	config.GameConfig `yaml:",inline"`
}

// Parse decodes and validates one level file.
func Parse(data []byte) (Level, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Level{}, fmt.Errorf("levels: %w", err)
	}
	if f.ID == "" {
		return Level{}, errors.New("levels: missing id")
	}
	if f.Name == "" {
		f.Name = f.ID
	}

	lvl := Level{ID: f.ID, Name: f.Name, Game: f.GameConfig}
	if _, err := lvl.Settings(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Loader loads every level file below Root in FS.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(dir string) *Loader {
	return &Loader{FS: os.DirFS(dir), Root: "."}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLevelFile(p) {
			return nil
		}

		lvl, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads one level file relative to the loader's FS.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing %s: %w", p, err)
	}
	lvl.FilePath = p
	return lvl, nil
}

// FreePlayID is the ID of the configurable free play board.
const FreePlayID = "free"

// FreePlay wraps the free play board from the platform configuration.
func FreePlay(g config.GameConfig) Level {
	return Level{ID: FreePlayID, Name: "Free play", Game: g}
}

// Builtin returns the embedded campaign.
func Builtin() []Level {
	levels, err := (&Loader{FS: builtinFS, Root: "builtin"}).LoadAll()
	if err != nil {
		return nil
	}
	return levels
}

// Catalog returns the built-in levels merged with those found in dir.
// A level in dir replaces a built-in level with the same ID. An empty dir
// yields only the built-in levels.
func Catalog(dir string) ([]Level, error) {
	byID := make(map[string]Level)
	for _, lvl := range Builtin() {
		byID[lvl.ID] = lvl
	}

	if dir != "" {
		extra, err := NewLoader(dir).LoadAll()
		if err != nil {
			return nil, err
		}
		for _, lvl := range extra {
			byID[lvl.ID] = lvl
		}
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sortByID(out)
	return out, nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func isLevelFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	want := Default()
	if cfg.TickRate != want.TickRate || cfg.DBPath != want.DBPath || cfg.UISize != want.UISize {
		t.Errorf("embedded = %+v, hardcoded = %+v", cfg, want)
	}
	if cfg.FreePlay.Width != 6 || cfg.FreePlay.Height != 6 || cfg.FreePlay.Moves != 30 {
		t.Errorf("free play = %+v, expected 6x6 with 30 moves", cfg.FreePlay)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("TickRate = %d, expected embedded 30", cfg.TickRate)
	}

	writeFile(t, filepath.Join(work, "configs", FileName), "tick_rate: 20\n")
	cfg, _ = Load("")
	if cfg.TickRate != 20 {
		t.Errorf("TickRate = %d, expected local 20", cfg.TickRate)
	}

	writeFile(t, filepath.Join(home, ".dots", "configs", FileName), "tick_rate: 45\n")
	cfg, _ = Load("")
	if cfg.TickRate != 45 {
		t.Errorf("TickRate = %d, expected user 45", cfg.TickRate)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "tick_rate: 10\nfree_play:\n  moves: 12\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) error = %v", err)
	}
	if cfg.TickRate != 10 || cfg.FreePlay.Moves != 12 {
		t.Errorf("custom config = %+v", cfg)
	}
	// fields absent from the file keep their defaults
	if cfg.FreePlay.Width != 6 {
		t.Errorf("FreePlay.Width = %d, expected default 6", cfg.FreePlay.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "tick_rate: [oops\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestGameConfigSettings(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GameConfig
		wantErr bool
		check   func(t *testing.T, s dots.Settings)
	}{
		{
			name: "scripted with goals",
			cfg: GameConfig{
				Width: 3, Height: 2, Moves: 5,
				Goals:       []GoalConfig{{Color: "blue", Needed: 4}},
				Script:      []string{"r", "b", "green"},
				AfterScript: "dummy",
			},
			check: func(t *testing.T, s dots.Settings) {
				if len(s.Script) != 3 || s.Script[0] != dots.Red || s.Script[2] != dots.Green {
					t.Errorf("Script = %v", s.Script)
				}
				if s.AfterScript != dots.FallbackDummy {
					t.Errorf("AfterScript = %v", s.AfterScript)
				}
				if len(s.Goals) != 1 || s.Goals[0].Color != dots.Blue || s.Goals[0].Needed != 4 {
					t.Errorf("Goals = %v", s.Goals)
				}
			},
		},
		{
			name:    "unknown script color",
			cfg:     GameConfig{Width: 1, Height: 1, Moves: 1, Script: []string{"orange"}},
			wantErr: true,
		},
		{
			name:    "unknown goal color",
			cfg:     GameConfig{Width: 1, Height: 1, Moves: 1, Goals: []GoalConfig{{Color: "teal", Needed: 1}}},
			wantErr: true,
		},
		{
			name:    "bad fallback",
			cfg:     GameConfig{Width: 1, Height: 1, Moves: 1, AfterScript: "loop"},
			wantErr: true,
		},
		{
			name:    "zero moves",
			cfg:     GameConfig{Width: 2, Height: 2},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.cfg.Settings()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Settings() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.check != nil {
				tc.check(t, s)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		moves  int
		want   int
	}{
		{DifficultyEasy, 30, 45},
		{DifficultyNormal, 30, 30},
		{DifficultyHard, 30, 21},
		{DifficultyHard, 1, 1},
	}
	for _, tc := range tests {
		cfg := GameConfig{Moves: tc.moves}
		ApplyPreset(&cfg, tc.preset)
		if cfg.Moves != tc.want {
			t.Errorf("ApplyPreset(%s) moves %d -> %d, expected %d", tc.preset, tc.moves, cfg.Moves, tc.want)
		}
	}

	if _, err := ParseDifficulty("brutal"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandPath("~/x/y.db"); got != filepath.Join(home, "x", "y.db") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath = %q", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

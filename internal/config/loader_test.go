package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Empty home and working directory so the fallback search finds no
	// user or local config and reaches the embedded default
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	def := DefaultConfig()
	if cfg.Grid != def.Grid {
		t.Errorf("Grid = %+v, expected %+v", cfg.Grid, def.Grid)
	}
	if cfg.Gravity != def.Gravity {
		t.Errorf("Gravity = %+v, expected %+v", cfg.Gravity, def.Gravity)
	}
	if cfg.Scoring.LinesPerLevel != def.Scoring.LinesPerLevel {
		t.Errorf("LinesPerLevel = %d, expected %d", cfg.Scoring.LinesPerLevel, def.Scoring.LinesPerLevel)
	}
	if len(cfg.Scoring.LineScores) != 5 || cfg.Scoring.LineScores[4] != 1200 {
		t.Errorf("LineScores = %v", cfg.Scoring.LineScores)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	content := "grid:\n  rows: 24\n  cols: 12\ngravity:\n  initial_ms: 600\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Grid.Rows != 24 || cfg.Grid.Cols != 12 {
		t.Errorf("Grid = %+v, expected 24x12", cfg.Grid)
	}
	if cfg.Gravity.InitialMs != 600 {
		t.Errorf("InitialMs = %d, expected 600", cfg.Gravity.InitialMs)
	}

	// Unspecified fields fall back to defaults
	if cfg.Gravity.FloorMs != 100 {
		t.Errorf("FloorMs = %d, expected default 100", cfg.Gravity.FloorMs)
	}
	if len(cfg.Scoring.LineScores) != 5 {
		t.Errorf("LineScores should default, got %v", cfg.Scoring.LineScores)
	}
}

func TestLoadMissingCustomPathIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with missing explicit path should fail")
	}
}

func TestLoadMalformedCustomPathIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with malformed explicit path should fail")
	}
}

func TestDropInterval(t *testing.T) {
	g := DefaultConfig().Gravity

	tests := []struct {
		level    int
		expected int
	}{
		{1, 750},
		{2, 700},
		{10, 300},
		{14, 100},
		{15, 100}, // floored
		{100, 100},
	}

	for _, tc := range tests {
		if got := g.DropInterval(tc.level); got != tc.expected {
			t.Errorf("DropInterval(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestScoringHelpers(t *testing.T) {
	s := DefaultConfig().Scoring

	if s.LineScore(0) != 0 || s.LineScore(1) != 40 || s.LineScore(4) != 1200 {
		t.Error("LineScore table wrong")
	}
	if s.LineScore(-1) != 0 || s.LineScore(5) != 0 {
		t.Error("LineScore should be zero out of range")
	}

	if s.Level(0) != 1 || s.Level(9) != 1 || s.Level(10) != 2 || s.Level(30) != 4 {
		t.Error("Level progression wrong")
	}
}

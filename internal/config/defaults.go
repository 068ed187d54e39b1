package config

import (
	_ "embed"
)

//go:embed defaults/tetrois.yaml
var defaultTetroisYAML []byte

// DefaultConfig returns the classic tuning: 20x10 grid, 800ms initial
// gravity dropping 50ms per level to a 100ms floor, and the
// 40/100/300/1200 line-clear table with a new level every 10 lines.
func DefaultConfig() TetroisConfig {
	return TetroisConfig{
		Grid: GridConfig{
			Rows: 20,
			Cols: 10,
		},
		Gravity: GravityConfig{
			InitialMs: 800,
			StepMs:    50,
			FloorMs:   100,
		},
		Scoring: ScoringConfig{
			LineScores:    []int{0, 40, 100, 300, 1200},
			LinesPerLevel: 10,
		},
	}
}

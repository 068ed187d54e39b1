// Package config provides YAML-based game configuration loading
// for grid size, gravity progression, and scoring.
package config

// TetroisConfig contains all tuning parameters for the game.
type TetroisConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GravityConfig defines the drop-interval progression.
// The interval at level L is max(floor_ms, initial_ms - L*step_ms).
type GravityConfig struct {
	InitialMs int `yaml:"initial_ms"`
	StepMs    int `yaml:"step_ms"`
	FloorMs   int `yaml:"floor_ms"`
}

// ScoringConfig defines line-clear rewards and leveling.
// LineScores is indexed by the number of lines cleared in one lock (0-4);
// the reward is multiplied by the current level.
type ScoringConfig struct {
	LineScores    []int `yaml:"line_scores"`
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// DropInterval returns the drop interval in milliseconds for a level.
func (g GravityConfig) DropInterval(level int) int {
	ms := g.InitialMs - level*g.StepMs
	if ms < g.FloorMs {
		ms = g.FloorMs
	}
	return ms
}

// LineScore returns the base reward for clearing n lines in one lock.
// Out-of-range counts score zero.
func (s ScoringConfig) LineScore(n int) int {
	if n < 0 || n >= len(s.LineScores) {
		return 0
	}
	return s.LineScores[n]
}

// Level returns the level for a total line count (1-based).
func (s ScoringConfig) Level(totalLines int) int {
	per := s.LinesPerLevel
	if per <= 0 {
		per = 10
	}
	return totalLines/per + 1
}

// Validate normalizes a loaded config, filling zero values with defaults.
// A config file may override only the fields it cares about.
func (c *TetroisConfig) Validate() {
	def := DefaultConfig()

	if c.Grid.Rows <= 0 {
		c.Grid.Rows = def.Grid.Rows
	}
	if c.Grid.Cols <= 0 {
		c.Grid.Cols = def.Grid.Cols
	}
	if c.Gravity.InitialMs <= 0 {
		c.Gravity.InitialMs = def.Gravity.InitialMs
	}
	if c.Gravity.StepMs <= 0 {
		c.Gravity.StepMs = def.Gravity.StepMs
	}
	if c.Gravity.FloorMs <= 0 {
		c.Gravity.FloorMs = def.Gravity.FloorMs
	}
	if len(c.Scoring.LineScores) == 0 {
		c.Scoring.LineScores = def.Scoring.LineScores
	}
	if c.Scoring.LinesPerLevel <= 0 {
		c.Scoring.LinesPerLevel = def.Scoring.LinesPerLevel
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the blocks game.
package config

import "errors"

// ErrInvalidConfig is returned when a loaded configuration cannot drive a game.
var ErrInvalidConfig = errors.New("invalid config")

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// GravityConfig defines how fast pieces fall. All values are milliseconds.
type GravityConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Drop interval at level 1
	StepMs         int `yaml:"step_ms"`          // Reduction per level
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Fastest the interval can get
}

// DifficultyConfig selects a named preset applied on top of the gravity block.
type DifficultyConfig struct {
	Preset string `yaml:"preset"` // "", "easy", "normal", "hard" or "fixed"
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Minimum board size accepted by Validate.
const (
	MinCols = 4
	MinRows = 4
)

package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Cols: 10,
			Rows: 20,
		},
		Gravity: GravityConfig{
			BaseIntervalMs: 1000,
			StepMs:         100,
			MinIntervalMs:  100,
		},
	}
}

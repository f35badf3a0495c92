package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config file checked after the
// user directory.
const LocalConfigPath = "configs/blocks.yaml"

// LoadBlocks loads the blocks configuration.
// Search order: customPath -> ~/.blocks/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the
// other locations are skipped silently.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeBlocks(data)
		if err != nil {
			return DefaultBlocksConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blocks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeBlocks(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalConfigPath); err == nil {
		if cfg, err := decodeBlocks(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeBlocks(defaultBlocksYAML)
	if err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeBlocks(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blocks", "configs", filename)
}

// Validate checks that the configuration can drive a game.
func (c BlocksConfig) Validate() error {
	if c.Board.Cols < MinCols || c.Board.Rows < MinRows {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Board.Cols, c.Board.Rows, MinCols, MinRows)
	}
	g := c.Gravity
	if g.BaseIntervalMs <= 0 || g.MinIntervalMs <= 0 {
		return fmt.Errorf("%w: gravity intervals must be positive (base %d, min %d)",
			ErrInvalidConfig, g.BaseIntervalMs, g.MinIntervalMs)
	}
	if g.StepMs < 0 {
		return fmt.Errorf("%w: gravity step_ms must not be negative (got %d)", ErrInvalidConfig, g.StepMs)
	}
	if _, err := ParsePreset(c.Difficulty.Preset); err != nil {
		return err
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c BlocksConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

package config

import (
	"fmt"
	"strings"
)

// Presets returns every difficulty preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a CLI or YAML name into a preset.
// An empty name is valid and means "no preset".
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty preset %q", ErrInvalidConfig, name)
}

// Description returns a one-line summary for menus and help text.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slow start, gentle speed-up"
	case DifficultyNormal:
		return "Classic curve: 1s, 100ms faster per level"
	case DifficultyHard:
		return "Fast start, steep speed-up"
	case DifficultyFixed:
		return "Speed never changes"
	default:
		return "Use the configured gravity"
	}
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// Presets only touch gravity; board size and scoring stay as configured.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity = GravityConfig{BaseIntervalMs: 1200, StepMs: 80, MinIntervalMs: 200}
	case DifficultyNormal:
		cfg.Gravity = DefaultBlocksConfig().Gravity
	case DifficultyHard:
		cfg.Gravity = GravityConfig{BaseIntervalMs: 700, StepMs: 70, MinIntervalMs: 60}
	case DifficultyFixed:
		cfg.Gravity.StepMs = 0
	default:
		return
	}
	cfg.Difficulty.Preset = string(preset)
}

// Resolve applies the override preset, or the preset named in the file when
// override is empty, and validates the result.
func Resolve(cfg BlocksConfig, override DifficultyPreset) (BlocksConfig, error) {
	preset := override
	if preset == "" {
		p, err := ParsePreset(cfg.Difficulty.Preset)
		if err != nil {
			return cfg, err
		}
		preset = p
	}
	ApplyBlocksPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

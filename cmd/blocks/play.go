package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing immediately.

Controls:
  Left/Right, A/D   - Move
  Down, S           - Soft drop
  Up, W, X          - Rotate clockwise
  Z                 - Rotate counter-clockwise
  Space             - Hard drop
  P/Esc             - Pause
  R                 - Restart (after game over)
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - 1s per row at level 1, 100ms faster per level
  hard   - Fast start, steep speed-up
  fixed  - Speed never changes

Examples:
  blocks play
  blocks play --difficulty easy
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags validates --config and --difficulty and passes them to the game.
func applyGameFlags() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadBlocks(flagConfig); err != nil {
			return err
		}
	}
	blocks.SetConfigPath(flagConfig)
	blocks.SetDifficultyPreset(preset)
	return nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}
	return play(runtimeConfig())
}

func play(cfg core.RuntimeConfig) error {
	game, err := registry.Create(blocks.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runPicker shows the difficulty picker, then plays with the chosen preset.
func runPicker(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	cfg := runtimeConfig()
	current := blocks.DifficultyPreset()
	if current == "" {
		if fileCfg, err := config.LoadBlocks(flagConfig); err == nil {
			current, _ = config.ParsePreset(fileCfg.Difficulty.Preset)
		}
	}

	selection, err := tui.RunDifficultySelector(cfg, current)
	if err != nil {
		return err
	}
	// User pressed back or quit
	if selection == nil {
		return nil
	}

	blocks.SetDifficultyPreset(*selection)
	logger.Info("difficulty chosen", "preset", *selection)
	return play(cfg)
}

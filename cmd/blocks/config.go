package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does, applies the
difficulty preset and prints the result as YAML. The output is a valid
config file.

Search order:
  --config path
  ~/.blocks/configs/blocks.yaml
  ./configs/blocks.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}
	cfg, err = config.Resolve(cfg, preset)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks                   - Pick a difficulty, then play
//	blocks play              - Play straight away
//	blocks list              - List available games
//	blocks config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file (default: no logging)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Shared by play, config and the root picker
	flagConfig     string
	flagDifficulty string
)

// logger is set up before any subcommand runs.
var (
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle for your terminal",
	Long: `Blocks is a terminal falling-block puzzle. Steer and rotate the falling
pieces, complete rows to clear them, and survive as the pieces speed up.

Run without a subcommand to pick a difficulty first.

Examples:
  blocks
  blocks play --difficulty hard
  blocks play --config ./my-blocks.yaml --seed 42
  blocks config --difficulty easy`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runPicker,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", logging.DefaultLevel, "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the logger from the global flags and hands it to the game.
func setupLogging(_ *cobra.Command, _ []string) error {
	l, closer, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	logger = l
	logCloser = closer
	blocks.SetLogger(l)
	return nil
}

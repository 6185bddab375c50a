// breakout is a brick breaker for the terminal.
//
// Usage:
//
//	breakout                 - Play (same as breakout play)
//	breakout play            - Play, optionally skipping the difficulty selector
//	breakout config          - Print the effective configuration as YAML
//	breakout rules           - Print the rules and controls
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--log-file <path>    - Write game events to a log file
//	--log-level <level>  - Log level: debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - break bricks in your terminal",
	Long: `Breakout is a single-board brick breaker for the terminal.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration
  rules    - Print the rules and controls

Examples:
  breakout
  breakout play --difficulty hard
  breakout play --seed 42 --log-file breakout.log --log-level debug
  breakout config > ~/.arcade/configs/breakout.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(rulesCmd)
}

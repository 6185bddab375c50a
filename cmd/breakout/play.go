package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  Left/A, Right/D  - Move the paddle
  Enter/Space      - Start
  1/E, 2/M, 3/H    - Choose easy, medium or hard
  ?                - Show or hide the rules
  Esc              - Close the rules
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Slow ball
  medium  - Faster ball
  hard    - Fastest ball

Examples:
  breakout play
  breakout play --difficulty medium
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the selector: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var mode config.Mode
	if flagDifficulty != "" {
		mode, err = config.ParseMode(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closer, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := breakout.New(cfg, rt.Seed)
	if mode != "" {
		game.Start()
		if err := game.SelectMode(mode); err != nil {
			closer.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger.Info("session started",
		"seed", rt.Seed,
		"fps", rt.TickRate,
		"screen", fmt.Sprintf("%dx%d", width, height),
		"bricks", cfg.Bricks.Count(),
	)

	state, runErr := tui.Run(game, rt, logger)

	logger.Info("session ended", "score", state.Score, "lives", state.Lives, "game_over", state.GameOver)
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d\n", state.Score)
}

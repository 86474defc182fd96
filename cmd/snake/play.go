package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD  - Move
  Enter        - Start, or play again after game over
  R            - Restart at any time
  Space/P      - Pause
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 150ms start interval, speeds up every 5 points
  normal - 100ms start interval, speeds up every 5 points
  hard   - 80ms start interval, speeds up every 5 points
  fixed  - Speed never changes

Without --difficulty a picker is shown before the game starts.

Config search order:
  --config path, ~/.arcade/configs/snake.yaml, ./configs/snake.yaml,
  then the built-in defaults.

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addSpeedFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs the optional difficulty picker and then the game.
func playGame() error {
	logger, closeLog, err := newLogger("snake", true)
	if err != nil {
		return err
	}
	defer closeLog()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	screen := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		screen.ScreenW = w
		screen.ScreenH = h
	}
	screen.Seed = flagSeed

	// Without --difficulty, ask before the game starts
	if flagDifficulty == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		choices, initial, err := difficultyChoices()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		choice, err := tui.RunDifficultyPicker(choices, initial, screen.ScreenW, screen.ScreenH)
		if err != nil {
			return err
		}
		if choice == nil {
			return nil
		}
		preset = config.DifficultyPreset(choice.Name)
	}

	speed, err := loadSpeed(preset)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("speed settings", "preset", preset, "base", speed.Base, "min", speed.Min, "step", speed.Step, "every", speed.Every)

	opts := tui.Options{
		Config: screen,
		Speed:  speed,
		Logger: logger,
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		opts.Store = store
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("cannot close scores database", "error", err)
			}
		}()
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addSpeedFlags registers the game config flags on cmd.
func addSpeedFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadSpeed loads the snake config, applies the difficulty preset and
// returns the engine speed settings.
func loadSpeed(preset config.DifficultyPreset) (snake.Speed, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return snake.Speed{}, err
	}
	config.ApplySnakePreset(&cfg, preset)

	s := cfg.EngineSpeed()
	return snake.Speed{
		Base:  s.Base,
		Min:   s.Min,
		Step:  s.Step,
		Every: s.Every,
	}, nil
}

// difficultyChoices lists the presets for the picker as they apply to the
// loaded config, with the index of normal.
func difficultyChoices() ([]tui.DifficultyChoice, int, error) {
	base, err := config.LoadSnake(flagConfig)
	if err != nil {
		return nil, 0, err
	}

	presets := config.Presets()
	choices := make([]tui.DifficultyChoice, len(presets))
	for i, p := range presets {
		cfg := base
		config.ApplySnakePreset(&cfg, p)
		s := cfg.EngineSpeed()
		choices[i] = tui.DifficultyChoice{
			Name:        string(p),
			Start:       s.Base,
			SpeedsUp:    s.Every > 0 && s.Step > 0 && s.Min < s.Base,
			Description: p.Description(),
		}
	}
	return choices, slices.Index(presets, config.DifficultyNormal), nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Speed: SpeedConfig{
			BaseIntervalMs: 100,
			MinIntervalMs:  50,
			StepMs:         10,
			SpeedupEvery:   5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}

// DefaultSnakeYAML returns the embedded default YAML, e.g. for writing a starter config.
func DefaultSnakeYAML() []byte {
	return defaultSnakeYAML
}

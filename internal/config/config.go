// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SpeedConfig defines the tick interval and its progression.
type SpeedConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"`
	MinIntervalMs  int `yaml:"min_interval_ms"`
	StepMs         int `yaml:"step_ms"`
	SpeedupEvery   int `yaml:"speedup_every"`
}

// DifficultyConfig toggles the speed progression.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// EngineSpeed is the speed configuration expressed as durations.
type EngineSpeed struct {
	Base  time.Duration
	Min   time.Duration
	Step  time.Duration
	Every int
}

// EngineSpeed converts the millisecond settings into durations.
// Progression is switched off (Every = 0) when difficulty is disabled.
func (c SnakeConfig) EngineSpeed() EngineSpeed {
	every := c.Speed.SpeedupEvery
	if !c.Difficulty.Enabled {
		every = 0
	}
	return EngineSpeed{
		Base:  time.Duration(c.Speed.BaseIntervalMs) * time.Millisecond,
		Min:   time.Duration(c.Speed.MinIntervalMs) * time.Millisecond,
		Step:  time.Duration(c.Speed.StepMs) * time.Millisecond,
		Every: every,
	}
}

// Validate checks that the speed settings describe a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error
	s := c.Speed
	if s.BaseIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("base_interval_ms must be positive, got %d", s.BaseIntervalMs))
	}
	if s.MinIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("min_interval_ms must be positive, got %d", s.MinIntervalMs))
	}
	if s.MinIntervalMs > s.BaseIntervalMs {
		errs = append(errs, fmt.Errorf("min_interval_ms (%d) exceeds base_interval_ms (%d)", s.MinIntervalMs, s.BaseIntervalMs))
	}
	if s.StepMs < 0 {
		errs = append(errs, fmt.Errorf("step_ms must not be negative, got %d", s.StepMs))
	}
	if s.SpeedupEvery < 0 {
		errs = append(errs, fmt.Errorf("speedup_every must not be negative, got %d", s.SpeedupEvery))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}

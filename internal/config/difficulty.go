package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Base intervals used by the presets.
const (
	easyBaseIntervalMs = 150
	hardBaseIntervalMs = 80
)

// ParsePreset converts a flag value into a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseIntervalMs = easyBaseIntervalMs
	case DifficultyHard:
		cfg.Speed.BaseIntervalMs = hardBaseIntervalMs
	}

	// Keep the floor reachable from the new base.
	if cfg.Speed.MinIntervalMs > cfg.Speed.BaseIntervalMs {
		cfg.Speed.MinIntervalMs = cfg.Speed.BaseIntervalMs
	}
}

// Presets returns every preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// Description returns a short summary of the preset for menus and help.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "relaxed start"
	case DifficultyNormal:
		return "classic"
	case DifficultyHard:
		return "fast start"
	case DifficultyFixed:
		return "speed never changes"
	}
	return ""
}

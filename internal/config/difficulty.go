package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep the config exactly as loaded
)

// ParsePreset converts a flag value to a preset. The empty string means
// DifficultyFixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// StartHealthForPreset returns the starting ship health for a preset, or 0
// when the preset leaves the configured value alone.
func StartHealthForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 100
	case DifficultyNormal:
		return 50
	case DifficultyHard:
		return 25
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Spawn odds, damage and timings are part of the game's rules and are never
// touched; only the starting health moves.
func ApplyPreset(cfg *SpaceRunConfig, preset DifficultyPreset) {
	if h := StartHealthForPreset(preset); h > 0 {
		if h > cfg.Ship.MaxHealth {
			h = cfg.Ship.MaxHealth
		}
		cfg.Ship.StartHealth = h
	}
}

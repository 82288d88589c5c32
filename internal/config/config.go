// Package config provides YAML-based tuning loading and difficulty
// management for the game.
package config

import (
	"errors"
	"fmt"
)

// BookrunConfig contains all tuning for the game.
type BookrunConfig struct {
	Enemies    EnemyConfig      `yaml:"enemies"`
	Collision  CollisionConfig  `yaml:"collision"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EnemyConfig defines how bugs spawn, move and speed up.
type EnemyConfig struct {
	InitialCount   int     `yaml:"initial_count"`    // Bugs on a fresh board
	SpeedMin       float64 `yaml:"speed_min"`        // Lower bound of spawn speed (px/s)
	SpeedMax       float64 `yaml:"speed_max"`        // Upper bound of spawn speed (px/s, exclusive)
	IncrementMin   float64 `yaml:"increment_min"`    // Speed added to every bug per delivery
	IncrementMax   float64 `yaml:"increment_max"`    // Equal to IncrementMin for a fixed bump
	ResetOffsetMax float64 `yaml:"reset_offset_max"` // Bugs restart up to this far left of the board
	WrapX          float64 `yaml:"wrap_x"`           // Bugs past this x re-enter on the left
	ReentryX       float64 `yaml:"reentry_x"`        // Where wrapped bugs re-enter
}

// CollisionConfig defines the hit-box tolerances.
type CollisionConfig struct {
	RowTolerance float64 `yaml:"row_tolerance"` // Max vertical distance between player and bug
	HalfWidth    float64 `yaml:"half_width"`    // Horizontal extent measured from each leading edge
}

// TimingConfig defines frame timing limits.
type TimingConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // Largest dt accepted per tick, in seconds
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "deliveries" or "none"
	MaxAt int    `yaml:"max_at"` // Deliveries at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to spawn speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. An empty name is not an error and
// returns an empty preset, meaning "ask the player".
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset keeps spawn speeds at the configured level and stops
// bugs from speeding up after each delivery.
func ApplyPreset(cfg *BookrunConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Enemies.IncrementMin = 0
		cfg.Enemies.IncrementMax = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate rejects tuning values the engine cannot run with.
func (c BookrunConfig) Validate() error {
	e := c.Enemies
	switch {
	case e.InitialCount < 1 || e.InitialCount > 4:
		return fmt.Errorf("%w: enemies.initial_count must be 1..4, got %d", ErrInvalidConfig, e.InitialCount)
	case e.SpeedMin <= 0 || e.SpeedMax < e.SpeedMin:
		return fmt.Errorf("%w: enemies speed range [%v, %v] must be positive and ordered", ErrInvalidConfig, e.SpeedMin, e.SpeedMax)
	case e.IncrementMin < 0 || e.IncrementMax < e.IncrementMin:
		return fmt.Errorf("%w: enemies increment range [%v, %v] must be non-negative and ordered", ErrInvalidConfig, e.IncrementMin, e.IncrementMax)
	case e.ResetOffsetMax < 0:
		return fmt.Errorf("%w: enemies.reset_offset_max must not be negative", ErrInvalidConfig)
	case e.ReentryX >= 0 || e.WrapX <= 0:
		return fmt.Errorf("%w: enemies must re-enter left of the board (reentry_x < 0 < wrap_x)", ErrInvalidConfig)
	}
	if c.Collision.RowTolerance < 0 || c.Collision.HalfWidth <= 0 {
		return fmt.Errorf("%w: collision tolerances must be positive", ErrInvalidConfig)
	}
	if c.Timing.MaxDelta <= 0 {
		return fmt.Errorf("%w: timing.max_delta must be positive", ErrInvalidConfig)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}

package config

import (
	"math"
	"math/rand"
)

// SpeedRange is a half-open interval of bug speeds in pixels per second.
type SpeedRange struct {
	Min, Max float64
}

// Pick draws a speed uniformly from the range.
func (r SpeedRange) Pick(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// DifficultyManager derives spawn speeds and per-delivery increments from
// the number of deliveries made so far.
type DifficultyManager struct {
	cfg          DifficultyConfig
	enemies      EnemyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg BookrunConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg.Difficulty,
		enemies:      cfg.Enemies,
		initialLevel: clampF(cfg.Difficulty.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after the given
// number of deliveries.
func (d *DifficultyManager) Level(deliveries int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(deliveries)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnSpeed returns the range a newly spawned bug draws its speed from.
// The configured range is scaled up to (1 + speed_multiplier) at max level.
func (d *DifficultyManager) SpawnSpeed(deliveries int) SpeedRange {
	scale := 1.0 + d.Level(deliveries)*d.cfg.Scaling.SpeedMultiplier
	return SpeedRange{
		Min: d.enemies.SpeedMin * scale,
		Max: d.enemies.SpeedMax * scale,
	}
}

// Increment draws the speed bump applied to every bug after a delivery.
// Never negative.
func (d *DifficultyManager) Increment(rng *rand.Rand) float64 {
	inc := SpeedRange{Min: d.enemies.IncrementMin, Max: d.enemies.IncrementMax}.Pick(rng)
	return math.Max(0, inc)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

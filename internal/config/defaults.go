package config

import (
	_ "embed"
)

//go:embed defaults/bookrun.yaml
var defaultBookrunYAML []byte

// DefaultBookrunConfig returns the built-in tuning, matching the embedded YAML.
func DefaultBookrunConfig() BookrunConfig {
	return BookrunConfig{
		Enemies: EnemyConfig{
			InitialCount:   3,
			SpeedMin:       100,
			SpeedMax:       250,
			IncrementMin:   50,
			IncrementMax:   50,
			ResetOffsetMax: 200,
			WrapX:          700,
			ReentryX:       -100,
		},
		Collision: CollisionConfig{
			RowTolerance: 10,
			HalfWidth:    75,
		},
		Timing: TimingConfig{
			MaxDelta: 0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "deliveries",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBookrunYAML
}

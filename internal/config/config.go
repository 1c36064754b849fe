// Package config provides YAML-based configuration loading for the layout
// engine: field geometry, brick tuning, generation chances and the loop
// progression table.
package config

import (
	"github.com/vovakirdan/brickforge/internal/level"
)

// Config is the full engine configuration.
type Config struct {
	Geometry    GeometryConfig    `yaml:"geometry"`
	Bricks      BricksConfig      `yaml:"bricks"`
	Generation  GenerationConfig  `yaml:"generation"`
	Progression ProgressionConfig `yaml:"progression"`
}

// GeometryConfig defines the playfield and brick dimensions, in world units.
type GeometryConfig struct {
	BrickWidth   float64 `yaml:"brick_width"`
	BrickHeight  float64 `yaml:"brick_height"`
	FieldWidth   float64 `yaml:"field_width"`
	MinGap       float64 `yaml:"min_gap"`
	FitTolerance float64 `yaml:"fit_tolerance"`
}

// BricksConfig defines brick hit-point constants.
type BricksConfig struct {
	MaxHP         int `yaml:"max_hp"`
	WallHP        int `yaml:"wall_hp"`
	GamblePrimeHP int `yaml:"gamble_prime_hp"`
}

// GenerationConfig defines the baseline generation knobs that are not
// loop-scaled.
type GenerationConfig struct {
	GambleChance    float64 `yaml:"gamble_chance"`
	MaxGambleBricks int     `yaml:"max_gamble_bricks"`
	MaxVoidColumns  int     `yaml:"max_void_columns"`
}

// LoopConfig is one authored loop descriptor.
type LoopConfig struct {
	Speed          float64 `yaml:"speed"`
	BrickHPMult    float64 `yaml:"brick_hp_mult"`
	BrickHPBonus   float64 `yaml:"brick_hp_bonus"`
	PowerUp        float64 `yaml:"power_up"`
	GapScale       float64 `yaml:"gap_scale"`
	Fortified      float64 `yaml:"fortified"`
	VoidChance     float64 `yaml:"void_chance"`
	CenterBias     float64 `yaml:"center_bias"`
	MaxVoidColumns int     `yaml:"max_void_columns"`
}

// StepConfig is the per-loop extrapolation increment past the table.
type StepConfig struct {
	Speed           float64 `yaml:"speed"`
	BrickHPMult     float64 `yaml:"brick_hp_mult"`
	BrickHPBonus    float64 `yaml:"brick_hp_bonus"`
	PowerUp         float64 `yaml:"power_up"`
	GapScale        float64 `yaml:"gap_scale"`
	Fortified       float64 `yaml:"fortified"`
	VoidChance      float64 `yaml:"void_chance"`
	CenterBias      float64 `yaml:"center_bias"`
	VoidColumnEvery int     `yaml:"void_column_every"`
}

// CapsConfig bounds the extrapolated curve.
type CapsConfig struct {
	MaxSpeed        float64 `yaml:"max_speed"`
	MaxBrickHPMult  float64 `yaml:"max_brick_hp_mult"`
	MaxBrickHPBonus float64 `yaml:"max_brick_hp_bonus"`
	MinPowerUp      float64 `yaml:"min_power_up"`
	MinGapScale     float64 `yaml:"min_gap_scale"`
	MaxFortified    float64 `yaml:"max_fortified"`
	MaxVoidChance   float64 `yaml:"max_void_chance"`
	MaxCenterBias   float64 `yaml:"max_center_bias"`
	MaxVoidColumns  int     `yaml:"max_void_columns"`
}

// ProgressionConfig is the loop scaling table plus its extrapolation rule.
type ProgressionConfig struct {
	Loops []LoopConfig `yaml:"loops"`
	Step  StepConfig   `yaml:"step"`
	Caps  CapsConfig   `yaml:"caps"`
}

// Tuning converts the geometry and brick sections into engine tuning.
func (c Config) Tuning() level.Tuning {
	return level.Tuning{
		MinGap:            c.Geometry.MinGap,
		FitTolerance:      c.Geometry.FitTolerance,
		MaxHP:             c.Bricks.MaxHP,
		WallHP:            c.Bricks.WallHP,
		GamblePrimeHP:     c.Bricks.GamblePrimeHP,
		MaxVoidColumnsCap: c.Generation.MaxVoidColumns,
	}
}

// LevelProgression converts the progression section into an engine
// progression table.
func (c Config) LevelProgression() level.Progression {
	table := make([]level.LoopScaling, len(c.Progression.Loops))
	for i, l := range c.Progression.Loops {
		table[i] = level.LoopScaling{
			SpeedMultiplier:         l.Speed,
			BrickHPMultiplier:       l.BrickHPMult,
			BrickHPBonus:            l.BrickHPBonus,
			PowerUpChanceMultiplier: l.PowerUp,
			GapScale:                l.GapScale,
			FortifiedChance:         l.Fortified,
			VoidColumnChance:        l.VoidChance,
			CenterFortifiedBias:     l.CenterBias,
			MaxVoidColumns:          l.MaxVoidColumns,
		}
	}
	step := level.ScalingStep{
		Speed:           c.Progression.Step.Speed,
		HPMult:          c.Progression.Step.BrickHPMult,
		HPBonus:         c.Progression.Step.BrickHPBonus,
		PowerUp:         c.Progression.Step.PowerUp,
		GapScale:        c.Progression.Step.GapScale,
		Fortified:       c.Progression.Step.Fortified,
		Void:            c.Progression.Step.VoidChance,
		Bias:            c.Progression.Step.CenterBias,
		VoidColumnEvery: c.Progression.Step.VoidColumnEvery,
	}
	caps := level.ScalingCaps{
		MaxSpeed:       c.Progression.Caps.MaxSpeed,
		MaxHPMult:      c.Progression.Caps.MaxBrickHPMult,
		MaxHPBonus:     c.Progression.Caps.MaxBrickHPBonus,
		MinPowerUp:     c.Progression.Caps.MinPowerUp,
		MinGapScale:    c.Progression.Caps.MinGapScale,
		MaxFortified:   c.Progression.Caps.MaxFortified,
		MaxVoid:        c.Progression.Caps.MaxVoidChance,
		MaxBias:        c.Progression.Caps.MaxCenterBias,
		MaxVoidColumns: c.Progression.Caps.MaxVoidColumns,
	}
	return level.NewProgression(table, step, caps)
}

// Options builds generation options for one loop: the loop descriptor's
// knobs plus the baseline gamble settings and tuning.
func (c Config) Options(rng level.RandomSource, sc level.LoopScaling) level.Options {
	tun := c.Tuning()
	opts := level.Options{
		Random:          rng,
		GambleChance:    c.Generation.GambleChance,
		MaxGambleBricks: c.Generation.MaxGambleBricks,
		Tuning:          &tun,
	}
	return opts.ApplyScaling(sc)
}

// DifficultyPreset names a coarse difficulty choice on the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the config for a difficulty preset. "fixed" drops the
// progression table entirely so every loop plays at the baseline.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Generation.GambleChance *= 0.5
		cfg.Generation.MaxVoidColumns = 1
		cfg.Progression.Caps.MaxSpeed = 1.5
	case DifficultyHard:
		cfg.Generation.GambleChance *= 1.5
		cfg.Progression.Caps.MaxSpeed = 2.2
		cfg.Progression.Step.Speed *= 1.5
	case DifficultyFixed:
		cfg.Progression.Loops = nil
		cfg.Progression.Step = StepConfig{}
	}
}

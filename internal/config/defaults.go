package config

import (
	_ "embed"
)

//go:embed defaults/brickforge.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration. It mirrors
// the embedded YAML and serves as the last-resort fallback.
func DefaultConfig() Config {
	return Config{
		Geometry: GeometryConfig{
			BrickWidth:   32,
			BrickHeight:  16,
			FieldWidth:   480,
			MinGap:       2,
			FitTolerance: 0.5,
		},
		Bricks: BricksConfig{
			MaxHP:         2,
			WallHP:        9999,
			GamblePrimeHP: 2,
		},
		Generation: GenerationConfig{
			GambleChance:    0.08,
			MaxGambleBricks: 3,
			MaxVoidColumns:  3,
		},
		Progression: ProgressionConfig{
			Loops: []LoopConfig{
				{Speed: 1.06, BrickHPMult: 1.10, BrickHPBonus: 0, PowerUp: 1.00, GapScale: 0.98, Fortified: 0.06, VoidChance: 0.04, CenterBias: 0.25, MaxVoidColumns: 1},
				{Speed: 1.12, BrickHPMult: 1.22, BrickHPBonus: 0, PowerUp: 0.95, GapScale: 0.96, Fortified: 0.09, VoidChance: 0.06, CenterBias: 0.35, MaxVoidColumns: 1},
				{Speed: 1.18, BrickHPMult: 1.35, BrickHPBonus: 1, PowerUp: 0.90, GapScale: 0.94, Fortified: 0.12, VoidChance: 0.08, CenterBias: 0.45, MaxVoidColumns: 2},
				{Speed: 1.24, BrickHPMult: 1.50, BrickHPBonus: 1, PowerUp: 0.85, GapScale: 0.92, Fortified: 0.16, VoidChance: 0.10, CenterBias: 0.55, MaxVoidColumns: 2},
				{Speed: 1.30, BrickHPMult: 1.65, BrickHPBonus: 1, PowerUp: 0.80, GapScale: 0.90, Fortified: 0.20, VoidChance: 0.12, CenterBias: 0.65, MaxVoidColumns: 3},
				{Speed: 1.36, BrickHPMult: 1.80, BrickHPBonus: 2, PowerUp: 0.75, GapScale: 0.88, Fortified: 0.24, VoidChance: 0.14, CenterBias: 0.75, MaxVoidColumns: 3},
			},
			Step: StepConfig{
				Speed:           0.04,
				BrickHPMult:     0.08,
				BrickHPBonus:    0.25,
				PowerUp:         -0.03,
				GapScale:        -0.01,
				Fortified:       0.02,
				VoidChance:      0.01,
				CenterBias:      0.05,
				VoidColumnEvery: 4,
			},
			Caps: CapsConfig{
				MaxSpeed:        1.8,
				MaxBrickHPMult:  3.0,
				MaxBrickHPBonus: 4,
				MinPowerUp:      0.5,
				MinGapScale:     0.8,
				MaxFortified:    0.5,
				MaxVoidChance:   0.3,
				MaxCenterBias:   1.5,
				MaxVoidColumns:  3,
			},
		},
	}
}

package level

// LoopScaling describes how one loop through the preset catalog scales the
// game: speed, brick HP, power-up odds and layout-variety knobs.
type LoopScaling struct {
	LoopCount int

	SpeedMultiplier         float64
	BrickHPMultiplier       float64
	BrickHPBonus            float64
	PowerUpChanceMultiplier float64
	GapScale                float64

	FortifiedChance     float64
	VoidColumnChance    float64
	CenterFortifiedBias float64
	MaxVoidColumns      int
}

// BaselineScaling is the fixed loop-zero descriptor: everything neutral.
func BaselineScaling() LoopScaling {
	return LoopScaling{
		SpeedMultiplier:         1,
		BrickHPMultiplier:       1,
		BrickHPBonus:            0,
		PowerUpChanceMultiplier: 1,
		GapScale:                1,
	}
}

// ScalingStep holds the per-loop increments applied beyond the authored
// table. Fields that tighten the game (power-up odds, gap) are negative.
type ScalingStep struct {
	Speed     float64
	HPMult    float64
	HPBonus   float64
	PowerUp   float64
	GapScale  float64
	Fortified float64
	Void      float64
	Bias      float64

	// VoidColumnEvery grants one more void-column slot every N loops
	// past the table, up to the cap.
	VoidColumnEvery int
}

// ScalingCaps bounds the extrapolated escalation so the curve stays
// playable for arbitrarily large loop counts.
type ScalingCaps struct {
	MaxSpeed     float64
	MaxHPMult    float64
	MaxHPBonus   float64
	MinPowerUp   float64
	MinGapScale  float64
	MaxFortified float64
	MaxVoid      float64
	MaxBias      float64

	// MaxVoidColumns is the global void-column cap; authored table
	// entries are clamped against it as well.
	MaxVoidColumns int
}

// Progression is the authored scaling table plus the deterministic
// extrapolation rule for loop counts beyond it. Read-only after startup.
type Progression struct {
	table []LoopScaling
	step  ScalingStep
	caps  ScalingCaps
}

// NewProgression builds a progression from an authored table, the
// extrapolation step and the caps.
func NewProgression(table []LoopScaling, step ScalingStep, caps ScalingCaps) Progression {
	return Progression{table: table, step: step, caps: caps}
}

// TableLen returns the number of authored loop descriptors.
func (p Progression) TableLen() int { return len(p.table) }

// ScalingFor returns the descriptor for a loop count. Loop zero (or less)
// is the fixed baseline; loops inside the table are returned verbatim with
// the void cap applied; loops past the table extrapolate additively with
// per-field clamps, continuous at the table boundary.
func (p Progression) ScalingFor(loop int) LoopScaling {
	if loop <= 0 {
		return BaselineScaling()
	}
	if len(p.table) == 0 {
		base := BaselineScaling()
		base.LoopCount = loop
		return base
	}
	if loop <= len(p.table) {
		sc := p.table[loop-1]
		sc.LoopCount = loop
		if sc.MaxVoidColumns > p.caps.MaxVoidColumns {
			sc.MaxVoidColumns = p.caps.MaxVoidColumns
		}
		return sc
	}

	last := p.table[len(p.table)-1]
	extra := float64(loop - len(p.table))

	sc := last
	sc.LoopCount = loop
	sc.SpeedMultiplier = minF(last.SpeedMultiplier+p.step.Speed*extra, p.caps.MaxSpeed)
	sc.BrickHPMultiplier = minF(last.BrickHPMultiplier+p.step.HPMult*extra, p.caps.MaxHPMult)
	sc.BrickHPBonus = minF(last.BrickHPBonus+p.step.HPBonus*extra, p.caps.MaxHPBonus)
	sc.PowerUpChanceMultiplier = maxF(last.PowerUpChanceMultiplier+p.step.PowerUp*extra, p.caps.MinPowerUp)
	sc.GapScale = maxF(last.GapScale+p.step.GapScale*extra, p.caps.MinGapScale)
	sc.FortifiedChance = minF(last.FortifiedChance+p.step.Fortified*extra, p.caps.MaxFortified)
	sc.VoidColumnChance = minF(last.VoidColumnChance+p.step.Void*extra, p.caps.MaxVoid)
	sc.CenterFortifiedBias = minF(last.CenterFortifiedBias+p.step.Bias*extra, p.caps.MaxBias)

	voidCols := last.MaxVoidColumns
	if p.step.VoidColumnEvery > 0 {
		voidCols += (loop - len(p.table)) / p.step.VoidColumnEvery
	}
	if voidCols > p.caps.MaxVoidColumns {
		voidCols = p.caps.MaxVoidColumns
	}
	sc.MaxVoidColumns = voidCols

	return sc
}

// DefaultProgression returns the stock six-loop table and its
// extrapolation rule.
func DefaultProgression() Progression {
	return NewProgression(
		[]LoopScaling{
			{SpeedMultiplier: 1.06, BrickHPMultiplier: 1.10, BrickHPBonus: 0, PowerUpChanceMultiplier: 1.00, GapScale: 0.98, FortifiedChance: 0.06, VoidColumnChance: 0.04, CenterFortifiedBias: 0.25, MaxVoidColumns: 1},
			{SpeedMultiplier: 1.12, BrickHPMultiplier: 1.22, BrickHPBonus: 0, PowerUpChanceMultiplier: 0.95, GapScale: 0.96, FortifiedChance: 0.09, VoidColumnChance: 0.06, CenterFortifiedBias: 0.35, MaxVoidColumns: 1},
			{SpeedMultiplier: 1.18, BrickHPMultiplier: 1.35, BrickHPBonus: 1, PowerUpChanceMultiplier: 0.90, GapScale: 0.94, FortifiedChance: 0.12, VoidColumnChance: 0.08, CenterFortifiedBias: 0.45, MaxVoidColumns: 2},
			{SpeedMultiplier: 1.24, BrickHPMultiplier: 1.50, BrickHPBonus: 1, PowerUpChanceMultiplier: 0.85, GapScale: 0.92, FortifiedChance: 0.16, VoidColumnChance: 0.10, CenterFortifiedBias: 0.55, MaxVoidColumns: 2},
			{SpeedMultiplier: 1.30, BrickHPMultiplier: 1.65, BrickHPBonus: 1, PowerUpChanceMultiplier: 0.80, GapScale: 0.90, FortifiedChance: 0.20, VoidColumnChance: 0.12, CenterFortifiedBias: 0.65, MaxVoidColumns: 3},
			{SpeedMultiplier: 1.36, BrickHPMultiplier: 1.80, BrickHPBonus: 2, PowerUpChanceMultiplier: 0.75, GapScale: 0.88, FortifiedChance: 0.24, VoidColumnChance: 0.14, CenterFortifiedBias: 0.75, MaxVoidColumns: 3},
		},
		ScalingStep{
			Speed:           0.04,
			HPMult:          0.08,
			HPBonus:         0.25,
			PowerUp:         -0.03,
			GapScale:        -0.01,
			Fortified:       0.02,
			Void:            0.01,
			Bias:            0.05,
			VoidColumnEvery: 4,
		},
		ScalingCaps{
			MaxSpeed:       1.8,
			MaxHPMult:      3.0,
			MaxHPBonus:     4,
			MinPowerUp:     0.5,
			MinGapScale:    0.8,
			MaxFortified:   0.5,
			MaxVoid:        0.3,
			MaxBias:        1.5,
			MaxVoidColumns: 3,
		},
	)
}

var defaultProgression = DefaultProgression()

// SetProgression replaces the process-wide progression. Intended for
// startup configuration only; not safe against concurrent generation.
func SetProgression(p Progression) { defaultProgression = p }

// ScalingFor returns the loop descriptor from the process-wide progression.
func ScalingFor(loop int) LoopScaling { return defaultProgression.ScalingFor(loop) }

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

package level

import "math"

// Tuning bundles the geometry and balance constants normally supplied by the
// game-config provider. The zero value is unusable; start from DefaultTuning.
type Tuning struct {
	// MinGap floors every computed gap, in world units.
	MinGap float64

	// FitTolerance is the pixel slack allowed when checking whether a row
	// of bricks fits the field width.
	FitTolerance float64

	// MaxHP caps breakable brick hit points (see MaxBrickHP).
	MaxHP int

	// WallHP is the sentinel HP reported for wall bricks.
	WallHP int

	// GamblePrimeHP is the fixed reset HP assigned to gamble bricks.
	GamblePrimeHP int

	// MaxVoidColumnsCap is the global ceiling on void columns per level.
	MaxVoidColumnsCap int
}

// DefaultTuning returns the stock tuning constants.
func DefaultTuning() Tuning {
	return Tuning{
		MinGap:            2,
		FitTolerance:      0.5,
		MaxHP:             MaxBrickHP,
		WallHP:            WallHP,
		GamblePrimeHP:     2,
		MaxVoidColumnsCap: 3,
	}
}

// columnPlan is the resolver's output: how many columns actually fit, the
// gap between them, and where the placed window sits inside the requested
// conceptual grid.
type columnPlan struct {
	ok       bool    // false signals a degenerate field: emit an empty layout
	cols     int     // placed column count, may be less than requested
	gap      float64 // resolved gap between brick edges
	firstCol int     // original column index of slot 0
	startX   float64 // world X of slot 0's brick center
	trimmed  bool    // columns were dropped to fit the field
}

// resolveColumns computes the largest column count and gap that fit the
// field, centering the result. The placed window is centered within the
// requested range so Brick.Col keeps reporting conceptual grid columns.
func resolveColumns(requested int, brickW, fieldW, desiredGap float64, tun Tuning) columnPlan {
	if requested <= 0 || brickW <= 0 || fieldW < brickW {
		return columnPlan{}
	}
	if desiredGap < tun.MinGap {
		desiredGap = tun.MinGap
	}

	cols := requested
	gap := desiredGap
	for cols > 0 {
		gap = desiredGap
		if cols > 1 {
			maxGap := (fieldW - float64(cols)*brickW) / float64(cols-1)
			if maxGap < gap {
				gap = maxGap
			}
			if gap < tun.MinGap {
				gap = tun.MinGap
			}
		}
		total := float64(cols)*brickW + float64(cols-1)*gap
		if total <= fieldW+tun.FitTolerance {
			break
		}
		cols--
	}
	if cols <= 0 {
		// A single column still overflows.
		return columnPlan{}
	}

	trimmed := cols < requested
	firstCol := (requested - cols) / 2
	if firstCol < 0 {
		firstCol = 0
	}

	total := float64(cols)*brickW + float64(cols-1)*gap
	startX := (fieldW-total)/2 + brickW/2

	return columnPlan{
		ok:       true,
		cols:     cols,
		gap:      gap,
		firstCol: firstCol,
		startX:   startX,
		trimmed:  trimmed,
	}
}

// clamp01 restricts a probability to [0, 1].
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

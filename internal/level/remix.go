package level

import "math"

// minRemixPowerUpMultiplier floors the rescaled power-up multiplier so
// late loops never strip power-ups entirely.
const minRemixPowerUpMultiplier = 0.25

// Remix derives a loop-scaled spec from a base preset using the
// process-wide progression. Loop zero (or less) returns the spec unchanged.
func Remix(spec Spec, loop int) Spec {
	return RemixWith(spec, loop, ScalingFor(loop), DefaultTuning())
}

// RemixWith is Remix with an explicit loop descriptor and tuning. The
// returned spec's HPPerRow is a lookup table over precomputed per-row
// values: identical (spec, loop) inputs always produce identical output,
// which keeps seeded replays reproducible.
func RemixWith(spec Spec, loop int, sc LoopScaling, tun Tuning) Spec {
	if loop <= 0 {
		return spec
	}

	hps := make([]int, spec.Rows)
	for row := range hps {
		base := float64(spec.HPForRow(row))
		v := int(math.Round(base*sc.BrickHPMultiplier + sc.BrickHPBonus + float64(rowJitter(loop, row))))
		if v < 1 {
			v = 1
		}
		hps[row] = v
	}

	out := spec
	out.HPPerRow = HPTable(hps)
	out.Gap = maxF(spec.Gap*sc.GapScale, tun.MinGap)
	out.PowerUpChanceMultiplier = maxF(spec.PowerUpMultiplier()*sc.PowerUpChanceMultiplier, minRemixPowerUpMultiplier)
	return out
}

// rowJitter is a small deterministic pseudo-sequence in {-1, 0, 1} that
// keeps remixed rows from scaling in lockstep.
func rowJitter(loop, row int) int {
	return (loop*17+row*13)%3 - 1
}

package level

// selectVoidColumns drops whole columns to create vertical gaps. Each slot
// is included independently with probability chance, bounded by maxVoid
// (itself clamped so at least one column always remains). Void columns are
// a randomized-difficulty feature: without a random source this is a no-op.
func selectVoidColumns(slotCount int, chance float64, maxVoid int, rng RandomSource) map[int]bool {
	if rng == nil || chance <= 0 || slotCount <= 1 {
		return nil
	}
	if maxVoid > slotCount-1 {
		maxVoid = slotCount - 1
	}
	if maxVoid <= 0 {
		return nil
	}

	voided := make(map[int]bool)
	first := -1
	for slot := 0; slot < slotCount; slot++ {
		if len(voided) >= maxVoid {
			break
		}
		if rng() < chance {
			voided[slot] = true
			if first < 0 {
				first = slot
			}
		}
	}

	// Guard against sampling voiding everything: restore the first pick.
	if len(voided) == slotCount && first >= 0 {
		delete(voided, first)
	}
	return voided
}

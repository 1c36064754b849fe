package level

// wallEdgeDrawChance is the probability that a budgeted wall draw comes
// from the edge pool while interior slots remain.
const wallEdgeDrawChance = 0.18

// planWallSlots picks a sparse, non-adjacent set of column slots to become
// permanent wall bricks, biased toward edges but never closing a row. Slot
// indices are 0-based post-compaction. The plan is advisory: a brick that
// earns a gamble trait is excluded from the plan at assignment time.
//
// With a nil random source, draws fall back to a deterministic midpoint
// choice instead of sampling.
func planWallSlots(slotCount int, trimmed bool, rng RandomSource) map[int]bool {
	if slotCount < 3 {
		return nil
	}

	edges := []int{0, slotCount - 1}
	interior := make([]int, 0, slotCount-2)
	for s := 1; s < slotCount-1; s++ {
		interior = append(interior, s)
	}

	marked := make(map[int]bool)
	mark := func(slot int) {
		marked[slot] = true
		// Adjacency pruning: the slot and its neighbors leave both pools
		// so no two walls are ever adjacent.
		edges = pruneAround(edges, slot)
		interior = pruneAround(interior, slot)
	}
	canMark := func() bool { return len(marked) < slotCount-1 }

	// Edge slots come first: both when the row was width-trimmed, one when
	// the row is wide enough to spare it.
	if trimmed {
		for _, e := range []int{0, slotCount - 1} {
			if canMark() && contains(edges, e) {
				mark(e)
			}
		}
	} else if slotCount >= 8 && canMark() {
		mark(pickSlot(edges, rng))
	}

	budget := 2
	if slotCount >= 10 {
		budget = 3
	}
	if !trimmed {
		budget--
	}

	for i := 0; i < budget; i++ {
		if !canMark() || (len(interior) == 0 && len(edges) == 0) {
			break
		}
		pool := interior
		if len(pool) == 0 {
			pool = edges
		} else if len(edges) > 0 && roll(rng, wallEdgeDrawChance) {
			pool = edges
		}
		mark(pickSlot(pool, rng))
	}

	return marked
}

// pickSlot draws a slot from the pool, or takes the midpoint without a
// random source.
func pickSlot(pool []int, rng RandomSource) int {
	if rng == nil {
		return pool[len(pool)/2]
	}
	i := int(rng() * float64(len(pool)))
	if i >= len(pool) {
		i = len(pool) - 1
	}
	return pool[i]
}

// roll samples a probability; it is always false without a random source.
func roll(rng RandomSource, chance float64) bool {
	if rng == nil {
		return false
	}
	return rng() < chance
}

func pruneAround(pool []int, slot int) []int {
	out := pool[:0]
	for _, s := range pool {
		if s < slot-1 || s > slot+1 {
			out = append(out, s)
		}
	}
	return out
}

func contains(pool []int, slot int) bool {
	for _, s := range pool {
		if s == slot {
			return true
		}
	}
	return false
}

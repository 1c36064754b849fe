package level

import "testing"

func TestPlanWallSlotsNonAdjacent(t *testing.T) {
	rng := NewXorShift(5)
	for i := 0; i < 100; i++ {
		for _, slotCount := range []int{3, 5, 8, 10, 14} {
			for _, trimmed := range []bool{false, true} {
				plan := planWallSlots(slotCount, trimmed, rng.Source())
				for s := range plan {
					if plan[s+1] {
						t.Fatalf("slots %d and %d both walled (slotCount=%d trimmed=%v)", s, s+1, slotCount, trimmed)
					}
				}
				if len(plan) >= slotCount {
					t.Fatalf("plan closed the whole row (slotCount=%d)", slotCount)
				}
			}
		}
	}
}

func TestPlanWallSlotsTrimmedMarksEdges(t *testing.T) {
	plan := planWallSlots(10, true, nil)
	if !plan[0] || !plan[9] {
		t.Errorf("trimmed plan should wall both edges, got %v", plan)
	}
}

func TestPlanWallSlotsDeterministicWithoutRandom(t *testing.T) {
	a := planWallSlots(12, true, nil)
	b := planWallSlots(12, true, nil)
	if len(a) != len(b) {
		t.Fatalf("plans differ in size: %d vs %d", len(a), len(b))
	}
	for s := range a {
		if !b[s] {
			t.Fatalf("plans differ at slot %d", s)
		}
	}
}

func TestPlanWallSlotsTinyRows(t *testing.T) {
	for _, slotCount := range []int{0, 1, 2} {
		if plan := planWallSlots(slotCount, true, nil); len(plan) != 0 {
			t.Errorf("slotCount=%d: expected no walls, got %v", slotCount, plan)
		}
	}
}

func TestSelectVoidColumnsNoRandomNoOp(t *testing.T) {
	if v := selectVoidColumns(10, 1, 3, nil); len(v) != 0 {
		t.Errorf("nil random source should disable voids, got %v", v)
	}
}

func TestSelectVoidColumnsAlwaysLeavesOne(t *testing.T) {
	rng := NewXorShift(9)
	for i := 0; i < 200; i++ {
		for _, slotCount := range []int{2, 3, 5, 8} {
			v := selectVoidColumns(slotCount, 1.0, slotCount+5, rng.Source())
			if len(v) >= slotCount {
				t.Fatalf("slotCount=%d: every column voided", slotCount)
			}
		}
	}
}

func TestSelectVoidColumnsRespectsMax(t *testing.T) {
	rng := NewXorShift(13)
	for i := 0; i < 100; i++ {
		v := selectVoidColumns(12, 1.0, 2, rng.Source())
		if len(v) > 2 {
			t.Fatalf("voided %d columns, max 2", len(v))
		}
	}
}

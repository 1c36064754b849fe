package level

import (
	"math"
	"testing"
)

func TestScalingBaseline(t *testing.T) {
	p := DefaultProgression()
	for _, loop := range []int{0, -1, -100} {
		sc := p.ScalingFor(loop)
		base := BaselineScaling()
		if sc != base {
			t.Errorf("loop %d: expected baseline %+v, got %+v", loop, base, sc)
		}
	}
}

func TestScalingTableVerbatim(t *testing.T) {
	table := []LoopScaling{
		{SpeedMultiplier: 1.1, BrickHPMultiplier: 1.2, PowerUpChanceMultiplier: 0.9, GapScale: 0.95, FortifiedChance: 0.1, VoidColumnChance: 0.05, CenterFortifiedBias: 0.3, MaxVoidColumns: 5},
	}
	p := NewProgression(table, ScalingStep{}, ScalingCaps{MaxVoidColumns: 2})
	sc := p.ScalingFor(1)
	if sc.SpeedMultiplier != 1.1 || sc.FortifiedChance != 0.1 {
		t.Errorf("table entry not returned verbatim: %+v", sc)
	}
	if sc.LoopCount != 1 {
		t.Errorf("expected loopCount 1, got %d", sc.LoopCount)
	}
	if sc.MaxVoidColumns != 2 {
		t.Errorf("maxVoidColumns should clamp to global cap 2, got %d", sc.MaxVoidColumns)
	}
}

func TestScalingSpeedMonotonicAndBounded(t *testing.T) {
	p := DefaultProgression()
	prev := p.ScalingFor(0).SpeedMultiplier
	maxSpeed := 0.0
	for loop := 1; loop <= 200; loop++ {
		s := p.ScalingFor(loop).SpeedMultiplier
		if s < prev {
			t.Fatalf("speed multiplier decreased at loop %d: %.4f < %.4f", loop, s, prev)
		}
		prev = s
		if s > maxSpeed {
			maxSpeed = s
		}
	}
	if maxSpeed > 1.8 {
		t.Errorf("speed multiplier exceeded cap: %.4f", maxSpeed)
	}
}

func TestScalingContinuousAtTableBoundary(t *testing.T) {
	p := DefaultProgression()
	n := p.TableLen()
	last := p.ScalingFor(n)
	next := p.ScalingFor(n + 1)

	// The first extrapolated loop must be last entry plus one step.
	if math.Abs(next.SpeedMultiplier-(last.SpeedMultiplier+0.04)) > 1e-9 {
		t.Errorf("speed discontinuity at boundary: %.4f -> %.4f", last.SpeedMultiplier, next.SpeedMultiplier)
	}
	if math.Abs(next.FortifiedChance-(last.FortifiedChance+0.02)) > 1e-9 {
		t.Errorf("fortified chance discontinuity: %.4f -> %.4f", last.FortifiedChance, next.FortifiedChance)
	}
	if next.GapScale >= last.GapScale {
		t.Errorf("gap scale should keep shrinking past the table: %.4f -> %.4f", last.GapScale, next.GapScale)
	}
}

func TestScalingProbabilitiesBounded(t *testing.T) {
	p := DefaultProgression()
	for loop := 0; loop <= 300; loop++ {
		sc := p.ScalingFor(loop)
		if sc.FortifiedChance < 0 || sc.FortifiedChance > 0.5 {
			t.Fatalf("loop %d: fortified chance %.4f out of bounds", loop, sc.FortifiedChance)
		}
		if sc.VoidColumnChance < 0 || sc.VoidColumnChance > 0.3 {
			t.Fatalf("loop %d: void chance %.4f out of bounds", loop, sc.VoidColumnChance)
		}
		if sc.MaxVoidColumns > 3 {
			t.Fatalf("loop %d: maxVoidColumns %d above global cap", loop, sc.MaxVoidColumns)
		}
		if sc.GapScale < 0.8 {
			t.Fatalf("loop %d: gap scale %.4f below floor", loop, sc.GapScale)
		}
		if sc.PowerUpChanceMultiplier < 0.5 {
			t.Fatalf("loop %d: power-up multiplier %.4f below floor", loop, sc.PowerUpChanceMultiplier)
		}
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	n := PresetCount()
	if n == 0 {
		t.Fatal("builtin catalog empty")
	}
	// All levels within the first loop share the baseline multiplier.
	if got := DifficultyMultiplier(0); got != 1 {
		t.Errorf("level 0 multiplier: expected 1, got %.4f", got)
	}
	if got := DifficultyMultiplier(n - 1); got != 1 {
		t.Errorf("level %d multiplier: expected 1, got %.4f", n-1, got)
	}
	// First level of loop 1 picks up the first table entry.
	want := ScalingFor(1).SpeedMultiplier
	if got := DifficultyMultiplier(n); got != want {
		t.Errorf("level %d multiplier: expected %.4f, got %.4f", n, want, got)
	}
}

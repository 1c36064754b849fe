package level

import (
	"testing"
	"time"
)

func TestCatalogWrapsAround(t *testing.T) {
	c := NewCatalog(BuiltinPresets())
	n := c.Len()
	if n == 0 {
		t.Fatal("builtin catalog is empty")
	}
	for i := 0; i < n; i++ {
		_, idx := c.PresetFor(i)
		if idx != i {
			t.Errorf("level %d resolved to preset %d", i, idx)
		}
		_, wrapped := c.PresetFor(i + n)
		if wrapped != i {
			t.Errorf("level %d should wrap to preset %d, got %d", i+n, i, wrapped)
		}
	}
}

func TestCatalogOffsetNormalized(t *testing.T) {
	c := NewCatalog(BuiltinPresets())
	n := c.Len()

	cases := []struct {
		set  int
		want int
	}{
		{0, 0},
		{1, 1},
		{n, 0},
		{n + 2, 2},
		{-1, n - 1},
		{-n, 0},
	}
	for _, tc := range cases {
		c.SetPresetOffset(tc.set)
		if got := c.PresetOffset(); got != tc.want {
			t.Errorf("SetPresetOffset(%d): offset %d, want %d", tc.set, got, tc.want)
		}
	}

	c.SetPresetOffset(1)
	p0, _ := c.PresetFor(0)
	if p0.ID != BuiltinPresets()[1].ID {
		t.Errorf("offset 1 should remap level 0 to preset 1, got %q", p0.ID)
	}
}

func TestCatalogEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SpecFor on an empty catalog must panic")
		}
	}()
	NewCatalog(nil).SpecFor(0)
}

func TestCatalogLoopFor(t *testing.T) {
	c := NewCatalog(BuiltinPresets())
	n := c.Len()
	if c.LoopFor(0) != 0 || c.LoopFor(n-1) != 0 {
		t.Error("first pass should be loop 0")
	}
	if c.LoopFor(n) != 1 || c.LoopFor(2*n+1) != 2 {
		t.Error("loop count should be levelIndex / presetCount")
	}
}

func TestCatalogDailyOffsetStable(t *testing.T) {
	c := NewCatalog(BuiltinPresets())
	day := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	later := time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC)
	if c.DailyOffset(day) != c.DailyOffset(later) {
		t.Error("same calendar day must produce the same offset")
	}
	off := c.DailyOffset(day)
	if off < 0 || off >= c.Len() {
		t.Errorf("offset %d out of range", off)
	}
}

func TestPackageLevelOffsetRoundTrip(t *testing.T) {
	defer SetPresetOffset(0)
	SetPresetOffset(3)
	if PresetOffset() != 3 {
		t.Errorf("expected offset 3, got %d", PresetOffset())
	}
	spec := SpecFor(0)
	if spec.Rows != BuiltinPresets()[3].Spec.Rows {
		t.Error("rotated SpecFor did not use preset 3")
	}
}

func TestBuiltinPresetsGenerate(t *testing.T) {
	for i, p := range BuiltinPresets() {
		layout := Generate(p.Spec, 32, 16, 480, Options{})
		if len(layout.Bricks) == 0 {
			t.Errorf("preset %d (%s) generated an empty layout", i, p.ID)
		}
		if layout.BreakableCount != layout.CountBreakable() {
			t.Errorf("preset %d (%s): breakable count mismatch", i, p.ID)
		}
	}
}

package main

import (
	"testing"

	"github.com/vovakirdan/brickforge/internal/level"
)

func TestLevelSelectionDerivesLoopFromCatalogPasses(t *testing.T) {
	catalog := level.NewCatalog(level.BuiltinPresets())
	n := catalog.Len()

	cases := []struct {
		levelIndex int
		wantPreset string
		wantLoop   int
	}{
		{0, "classic", 0},
		{3, "open", 0},
		{n - 1, "bands", 0},
		{n, "classic", 1},
		{n + 3, "open", 1},
		{2*n + 1, "gradient", 2},
	}
	for _, tc := range cases {
		preset, loop := levelSelection(catalog, tc.levelIndex, -1)
		if preset.ID != tc.wantPreset {
			t.Errorf("level %d: preset %q, expected %q", tc.levelIndex, preset.ID, tc.wantPreset)
		}
		if loop != tc.wantLoop {
			t.Errorf("level %d: loop %d, expected %d", tc.levelIndex, loop, tc.wantLoop)
		}
	}
}

func TestLevelSelectionLoopOverride(t *testing.T) {
	catalog := level.NewCatalog(level.BuiltinPresets())

	if _, loop := levelSelection(catalog, 3, 4); loop != 4 {
		t.Errorf("override ignored: loop %d, expected 4", loop)
	}
	// Zero is a valid override, not "unset".
	if _, loop := levelSelection(catalog, catalog.Len()+3, 0); loop != 0 {
		t.Errorf("zero override ignored: loop %d", loop)
	}
	if _, loop := levelSelection(catalog, catalog.Len()+3, -1); loop != 1 {
		t.Errorf("negative override should derive from the index: loop %d, expected 1", loop)
	}
}

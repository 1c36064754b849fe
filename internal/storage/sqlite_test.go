package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}
	return store
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	recs := []Generation{
		{PresetID: "classic", LevelIndex: 0, LoopCount: 0, Seed: 42, BrickCount: 50, BreakableCount: 50, Checksum: 111},
		{PresetID: "conveyor", LevelIndex: 5, LoopCount: 0, Seed: 7, BrickCount: 36, BreakableCount: 30, Checksum: 222},
		{PresetID: "classic", LevelIndex: 8, LoopCount: 1, Seed: 42, BrickCount: 48, BreakableCount: 44, Checksum: 333},
	}
	for _, r := range recs {
		if _, err := store.SaveGeneration(r); err != nil {
			t.Fatalf("SaveGeneration() failed: %v", err)
		}
	}

	got, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	// Newest first.
	if got[0].Checksum != 333 {
		t.Errorf("expected newest record first, got checksum %d", got[0].Checksum)
	}

	limited, err := store.Recent(1)
	if err != nil {
		t.Fatalf("Recent(1) failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 record with limit 1, got %d", len(limited))
	}
}

func TestStoreByPreset(t *testing.T) {
	store := openTestStore(t)

	store.SaveGeneration(Generation{PresetID: "classic", Seed: 1, Checksum: 1})
	store.SaveGeneration(Generation{PresetID: "bands", Seed: 2, Checksum: 2})
	store.SaveGeneration(Generation{PresetID: "classic", Seed: 3, Checksum: 3})

	got, err := store.ByPreset("classic", 10)
	if err != nil {
		t.Fatalf("ByPreset() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 classic records, got %d", len(got))
	}
	for _, g := range got {
		if g.PresetID != "classic" {
			t.Errorf("unexpected preset %q", g.PresetID)
		}
	}
}

func TestStoreLargeSeedRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// Values above int64 max must survive the round trip.
	in := Generation{PresetID: "tight", Seed: math.MaxUint64 - 5, Checksum: math.MaxUint64}
	if _, err := store.SaveGeneration(in); err != nil {
		t.Fatalf("SaveGeneration() failed: %v", err)
	}
	got, err := store.Recent(1)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if got[0].Seed != in.Seed || got[0].Checksum != in.Checksum {
		t.Errorf("seed/checksum mangled: got %d/%d, want %d/%d",
			got[0].Seed, got[0].Checksum, in.Seed, in.Checksum)
	}
}

func TestStoreRejectsMalformedSeed(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(
		`INSERT INTO generations (preset_id, level_index, loop_count, seed, brick_count, breakable_count, checksum)
		 VALUES ('classic', 0, 0, 'not-a-number', 10, 10, '42')`)
	if err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	if _, err := store.Recent(5); err == nil {
		t.Error("expected an error for a malformed seed, got nil")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickforge/internal/level"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	want := DefaultConfig()
	if cfg.Geometry != want.Geometry {
		t.Errorf("geometry mismatch: %+v vs %+v", cfg.Geometry, want.Geometry)
	}
	if cfg.Bricks != want.Bricks {
		t.Errorf("bricks mismatch: %+v vs %+v", cfg.Bricks, want.Bricks)
	}
	if len(cfg.Progression.Loops) != len(want.Progression.Loops) {
		t.Fatalf("loop table length mismatch: %d vs %d", len(cfg.Progression.Loops), len(want.Progression.Loops))
	}
	for i := range cfg.Progression.Loops {
		if cfg.Progression.Loops[i] != want.Progression.Loops[i] {
			t.Errorf("loop %d mismatch: %+v vs %+v", i, cfg.Progression.Loops[i], want.Progression.Loops[i])
		}
	}
	if cfg.Progression.Caps != want.Progression.Caps {
		t.Errorf("caps mismatch: %+v vs %+v", cfg.Progression.Caps, want.Progression.Caps)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "geometry:\n  brick_width: 48\n  field_width: 600\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Geometry.BrickWidth != 48 || cfg.Geometry.FieldWidth != 600 {
		t.Errorf("custom values not loaded: %+v", cfg.Geometry)
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/brickforge.yaml"); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestConfigConversions(t *testing.T) {
	cfg := DefaultConfig()

	tun := cfg.Tuning()
	if tun.MaxHP != 2 || tun.WallHP != 9999 || tun.GamblePrimeHP != 2 {
		t.Errorf("tuning conversion wrong: %+v", tun)
	}

	prog := cfg.LevelProgression()
	if prog.TableLen() != 6 {
		t.Fatalf("expected 6 authored loops, got %d", prog.TableLen())
	}
	if sc := prog.ScalingFor(1); sc.SpeedMultiplier != 1.06 {
		t.Errorf("loop 1 speed: expected 1.06, got %.4f", sc.SpeedMultiplier)
	}
	if sc := prog.ScalingFor(0); sc != level.BaselineScaling() {
		t.Errorf("loop 0 should be baseline, got %+v", sc)
	}

	rng := level.NewXorShift(1)
	opts := cfg.Options(rng.Source(), prog.ScalingFor(2))
	if opts.FortifiedChance != 0.09 || opts.VoidColumnChance != 0.06 {
		t.Errorf("options did not pick up loop 2 scaling: %+v", opts)
	}
	if opts.GambleChance != cfg.Generation.GambleChance {
		t.Errorf("options lost gamble chance: %+v", opts)
	}
}

func TestApplyPresetFixedDisablesProgression(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	prog := cfg.LevelProgression()
	for _, loop := range []int{1, 5, 40} {
		if sc := prog.ScalingFor(loop); sc.SpeedMultiplier != 1 {
			t.Errorf("fixed preset: loop %d speed %.4f, expected baseline", loop, sc.SpeedMultiplier)
		}
	}
}

func TestApplyPresetEasyAndHard(t *testing.T) {
	easy := DefaultConfig()
	hard := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	ApplyPreset(&hard, DifficultyHard)
	if easy.Generation.GambleChance >= hard.Generation.GambleChance {
		t.Error("easy gamble chance should be below hard")
	}
	if easy.Progression.Caps.MaxSpeed >= hard.Progression.Caps.MaxSpeed {
		t.Error("easy speed cap should be below hard")
	}
}

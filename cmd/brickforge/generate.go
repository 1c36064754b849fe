package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickforge/internal/config"
	"github.com/vovakirdan/brickforge/internal/level"
	"github.com/vovakirdan/brickforge/internal/platform/tui"
	"github.com/vovakirdan/brickforge/internal/storage"
)

var (
	flagLoop       int
	flagDifficulty string
	flagArchive    bool
	flagDaily      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [level-index]",
	Short: "Generate a layout and print it",
	Long: `Generate the layout for a level index and print it as ASCII art with
generation statistics. The level index maps into the preset catalog with
wraparound, so index 8 replays preset 0 at loop 1 with scaled difficulty.

Difficulty options:
  easy   - Fewer gamble bricks and void columns, gentler speed cap
  normal - Default tuning
  hard   - More gamble bricks, faster speed ramp
  fixed  - No loop progression, every loop plays at the baseline

Examples:
  brickforge generate
  brickforge generate 3
  brickforge generate 12 --seed 42
  brickforge generate 5 --loop 4 --difficulty hard
  brickforge generate 0 --archive
  brickforge generate --daily`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagLoop, "loop", -1, "Override the loop count (-1 = derive from level index)")
	generateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	generateCmd.Flags().BoolVar(&flagArchive, "archive", false, "Save the generation to the database")
	generateCmd.Flags().BoolVar(&flagDaily, "daily", false, "Apply today's preset rotation offset")
}

func runGenerate(cmd *cobra.Command, args []string) {
	levelIndex := 0
	if len(args) > 0 {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid level index %q\n", args[0])
			os.Exit(1)
		}
		levelIndex = idx
	}

	cfg := loadEngineConfig()
	catalog := level.DefaultCatalog()
	if flagDaily {
		catalog.SetPresetOffset(catalog.DailyOffset(time.Now()))
	}

	seed := resolveSeed()
	preset, loop := levelSelection(catalog, levelIndex, flagLoop)

	prog := cfg.LevelProgression()
	sc := prog.ScalingFor(loop)
	spec := level.RemixWith(preset.Spec, loop, sc, cfg.Tuning())

	rng := level.NewXorShift(seed)
	opts := cfg.Options(rng.Source(), sc)

	geo := cfg.Geometry
	layout := level.Generate(spec, geo.BrickWidth, geo.BrickHeight, geo.FieldWidth, opts)
	checksum := level.Checksum(layout)

	fmt.Printf("Preset: %s (%s)  level %d  loop %d  seed %d\n", preset.Name, preset.ID, levelIndex, loop, seed)
	fmt.Println()
	fmt.Println(tui.RenderLayout(layout))
	fmt.Println()
	fmt.Println(tui.Legend())
	fmt.Println()
	fmt.Printf("Bricks: %d total, %d breakable\n", len(layout.Bricks), layout.BreakableCount)
	fmt.Printf("Rows: %d  Cols: %d  Gap: %.1f\n", layout.Spec.Rows, layout.Spec.Cols, layout.Spec.Gap)
	fmt.Printf("Checksum: %016x\n", checksum)

	if !flagArchive {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveGeneration(storage.Generation{
		PresetID:       preset.ID,
		LevelIndex:     levelIndex,
		LoopCount:      loop,
		Seed:           seed,
		BrickCount:     len(layout.Bricks),
		BreakableCount: layout.BreakableCount,
		Checksum:       checksum,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving generation: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Archived as generation #%d\n", id)
}

// levelSelection resolves a level index into its preset and loop count.
// The loop is the number of full catalog passes before the index; a
// non-negative override replaces it.
func levelSelection(catalog *level.Catalog, levelIndex, loopOverride int) (level.Preset, int) {
	preset, _ := catalog.PresetFor(levelIndex)
	loop := catalog.LoopFor(levelIndex)
	if loopOverride >= 0 {
		loop = loopOverride
	}
	return preset, loop
}

// loadEngineConfig loads the engine config, applies the difficulty preset and
// exits on invalid input.
func loadEngineConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&cfg, preset)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
			os.Exit(1)
		}
	}
	return cfg
}

// resolveSeed returns the global seed flag, or a time-derived seed when unset.
func resolveSeed() uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return uint64(time.Now().UnixNano())
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickforge/internal/level"
	"github.com/vovakirdan/brickforge/internal/platform/tui"
)

var flagPhasesLoop int

var phasesCmd = &cobra.Command{
	Use:   "phases [level-index]",
	Short: "Print every transform phase of a preset's layout",
	Long: `Generate a level and print every phase of its transform plan, starting
with the base layout. Presets without a transform plan print a single phase.

Examples:
  brickforge phases 5
  brickforge phases 7 --seed 42
  brickforge phases 5 --loop 2`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPhases,
}

func init() {
	phasesCmd.Flags().IntVar(&flagPhasesLoop, "loop", -1, "Override the loop count (-1 = derive from level index)")
	phasesCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPhases(cmd *cobra.Command, args []string) {
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
	seed := resolveSeed()

	preset, loop := levelSelection(catalog, levelIndex, flagPhasesLoop)

	prog := cfg.LevelProgression()
	sc := prog.ScalingFor(loop)
	spec := level.RemixWith(preset.Spec, loop, sc, cfg.Tuning())

	rng := level.NewXorShift(seed)
	opts := cfg.Options(rng.Source(), sc)

	var directives []level.Directive
	if plan, ok := catalog.TransformPlanFor(levelIndex); ok {
		directives = plan.Directives
	}

	geo := cfg.Geometry
	phases := level.TransformingLayouts(spec, directives, geo.BrickWidth, geo.BrickHeight, geo.FieldWidth, opts)

	fmt.Printf("Preset: %s (%s)  level %d  loop %d  seed %d\n", preset.Name, preset.ID, levelIndex, loop, seed)
	for _, p := range phases {
		fmt.Println()
		fmt.Printf("--- phase %d/%d: %s ---\n", p.Meta.Index+1, p.Meta.Total, p.Meta.Phase)
		fmt.Println(tui.RenderLayout(p.Layout))
		fmt.Printf("breakable: %d  checksum: %016x\n", p.Layout.BreakableCount, level.Checksum(p.Layout))
	}
}

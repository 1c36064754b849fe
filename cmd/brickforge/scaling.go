package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickforge/internal/platform/tui"
)

var flagMaxLoop int

var scalingCmd = &cobra.Command{
	Use:   "scaling",
	Short: "Show the loop difficulty curve",
	Long: `Print the loop scaling table, including extrapolated loops past the
authored table. Extrapolated rows are marked with *.

Examples:
  brickforge scaling
  brickforge scaling --max-loop 20
  brickforge scaling --difficulty hard`,
	Run: runScaling,
}

func init() {
	scalingCmd.Flags().IntVar(&flagMaxLoop, "max-loop", 12, "Highest loop to show")
	scalingCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runScaling(_ *cobra.Command, _ []string) {
	cfg := loadEngineConfig()
	prog := cfg.LevelProgression()

	view := tui.NewScalingView(prog, flagMaxLoop)
	fmt.Println(view.View())
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickforge/internal/level"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in level presets",
	Long:  `Shows the preset catalog, in rotation order, with layout dimensions.`,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := level.BuiltinPresets()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Built-in presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-18s  %s\n", "#", maxIDLen, "ID", "Name", "Grid")
	fmt.Printf("  %-3s  %-*s  %-18s  %s\n", "---", maxIDLen, "--", "----", "----")

	// Print presets
	for i, p := range presets {
		grid := fmt.Sprintf("%dx%d", p.Spec.Rows, p.Spec.Cols)
		plan := ""
		if _, ok := level.TransformPlanFor(i); ok {
			plan = "  (transform plan)"
		}
		fmt.Printf("  %-3d  %-*s  %-18s  %s%s\n", i, maxIDLen, p.ID, p.Name, grid, plan)
	}

	fmt.Println()
	fmt.Println("Run 'brickforge generate <index>' to generate a preset's layout.")
}

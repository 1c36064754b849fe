package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickforge/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryPreset string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show archived generations",
	Long: `Display recent generations archived with 'brickforge generate --archive'.

Examples:
  brickforge history
  brickforge history --limit 20
  brickforge history --preset fortress`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of entries to show")
	historyCmd.Flags().StringVar(&flagHistoryPreset, "preset", "", "Only show generations of this preset ID")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entries []storage.Generation
	if flagHistoryPreset != "" {
		entries, err = store.ByPreset(flagHistoryPreset, flagHistoryLimit)
	} else {
		entries, err = store.Recent(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving generations: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No generations recorded yet.")
		fmt.Println()
		fmt.Println("Run 'brickforge generate --archive' to record one.")
		return
	}

	fmt.Println("Archived generations:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-10s  %-5s  %-4s  %-20s  %-8s  %-16s  %s\n",
		"ID", "Preset", "Level", "Loop", "Seed", "Bricks", "Checksum", "Date")
	fmt.Printf("  %-5s  %-10s  %-5s  %-4s  %-20s  %-8s  %-16s  %s\n",
		"-----", "------", "-----", "----", "----", "------", "--------", "----")

	// Print entries
	for _, g := range entries {
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		bricks := fmt.Sprintf("%d/%d", g.BreakableCount, g.BrickCount)
		fmt.Printf("  %-5d  %-10s  %-5d  %-4d  %-20d  %-8s  %016x  %s\n",
			g.ID, g.PresetID, g.LevelIndex, g.LoopCount, g.Seed, bricks, g.Checksum, dateStr)
	}
}

// brickforge generates procedural brick-breaker layouts in the terminal.
//
// Usage:
//
//	brickforge generate [preset]   - Generate a layout and print it
//	brickforge phases [preset]     - Print every transform phase of a preset
//	brickforge scaling             - Show the loop difficulty curve
//	brickforge presets             - List the built-in level presets
//	brickforge preview             - Interactive layout previewer
//	brickforge serve               - Start SSH server for remote previewing
//	brickforge history             - Show archived generations
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible layouts
//	--config <path>  - Path to a custom engine config YAML
//	--db <path>      - Set database path (default: ~/.brickforge/generations.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   uint64
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickforge",
	Short: "Brickforge - procedural brick-breaker layout engine",
	Long: `Brickforge generates brick-breaker level layouts with loop-based
difficulty progression, and previews them in your terminal.

Available commands:
  generate - Generate a layout for a level index and print it
  phases   - Print every transform phase of a preset's layout
  scaling  - Show the loop difficulty curve
  presets  - List the built-in level presets
  preview  - Interactive layout previewer
  serve    - Start SSH server for remote previewing
  history  - Show archived generations

Examples:
  brickforge generate 3 --loop 2
  brickforge generate --seed 42 --archive
  brickforge phases 5
  brickforge scaling --max-loop 12
  brickforge preview
  brickforge serve --ssh :2222
  brickforge history --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickforge/generations.db", "Path to generations database")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(phasesCmd)
	rootCmd.AddCommand(scalingCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

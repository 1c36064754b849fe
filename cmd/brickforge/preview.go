package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickforge/internal/platform/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactive layout previewer",
	Long: `Start the interactive previewer in your terminal.

Controls:
  Left/h, Right/l  - Previous/next level
  p/n              - Previous/next transform phase
  +/-              - Raise/lower the loop count
  r                - Reseed and regenerate
  s/Tab            - Toggle the scaling table
  Q/Ctrl+C         - Quit

Examples:
  brickforge preview
  brickforge preview --seed 42
  brickforge preview --difficulty hard`,
	Run: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPreview(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: preview requires a terminal")
		os.Exit(1)
	}

	cfg := loadEngineConfig()
	model := tui.NewPreviewModel(cfg, resolveSeed())

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running previewer: %v\n", err)
		os.Exit(1)
	}
}

// Package tui provides the terminal layout previewer and its SSH server.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickforge/internal/level"
)

var (
	styleNormal    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleTough     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleFortified = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleGamble    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleWall      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleVoid      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// brickGlyph picks the display rune for one brick.
func brickGlyph(b level.Brick) (string, lipgloss.Style) {
	if !b.Breakable {
		switch b.Form {
		case level.FormDiamond:
			return "<>", styleWall
		case level.FormCircle:
			return "()", styleWall
		default:
			return "▓▓", styleWall
		}
	}
	switch {
	case b.Traits.Has(level.TraitGamble):
		return "??", styleGamble
	case b.Traits.Has(level.TraitFortified):
		return "FF", styleFortified
	case b.HP > 1:
		return "##", styleTough
	default:
		return "==", styleNormal
	}
}

// RenderLayout draws a layout as one styled text grid, one two-character
// cell per conceptual column. Voided columns render as dim dots.
func RenderLayout(l level.Layout) string {
	if len(l.Bricks) == 0 {
		return styleVoid.Render("(empty layout)")
	}

	rows := l.Spec.Rows
	cols := l.Spec.Cols
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = styleVoid.Render(" .")
		}
	}
	for _, b := range l.Bricks {
		if b.Row < 0 || b.Row >= rows || b.Col < 0 || b.Col >= cols {
			continue
		}
		glyph, style := brickGlyph(b)
		grid[b.Row][b.Col] = style.Render(glyph)
	}

	var sb strings.Builder
	for r := range grid {
		if r > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(strings.Join(grid[r], ""))
	}
	return sb.String()
}

// Legend returns a one-line key for the layout glyphs.
func Legend() string {
	parts := []string{
		styleNormal.Render("== brick"),
		styleTough.Render("## tough"),
		styleFortified.Render("FF fortified"),
		styleGamble.Render("?? gamble"),
		styleWall.Render("▓▓/<>/() wall"),
		styleVoid.Render(" . void"),
	}
	return strings.Join(parts, "  ")
}

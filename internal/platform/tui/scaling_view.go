package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickforge/internal/level"
)

// ScalingView renders the loop progression as a scrollable table,
// including rows extrapolated past the authored entries.
type ScalingView struct {
	tbl table.Model
}

// NewScalingView builds the table for loops 0..maxLoop.
func NewScalingView(prog level.Progression, maxLoop int) ScalingView {
	columns := []table.Column{
		{Title: "loop", Width: 4},
		{Title: "speed", Width: 6},
		{Title: "hp x", Width: 6},
		{Title: "hp +", Width: 5},
		{Title: "power", Width: 6},
		{Title: "gap", Width: 5},
		{Title: "fort", Width: 5},
		{Title: "void", Width: 5},
		{Title: "bias", Width: 5},
		{Title: "cols", Width: 4},
	}

	rows := make([]table.Row, 0, maxLoop+1)
	for loop := 0; loop <= maxLoop; loop++ {
		sc := prog.ScalingFor(loop)
		tag := ""
		if loop > prog.TableLen() {
			tag = "*" // extrapolated
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d%s", loop, tag),
			fmt.Sprintf("%.2f", sc.SpeedMultiplier),
			fmt.Sprintf("%.2f", sc.BrickHPMultiplier),
			fmt.Sprintf("%.1f", sc.BrickHPBonus),
			fmt.Sprintf("%.2f", sc.PowerUpChanceMultiplier),
			fmt.Sprintf("%.2f", sc.GapScale),
			fmt.Sprintf("%.2f", sc.FortifiedChance),
			fmt.Sprintf("%.2f", sc.VoidColumnChance),
			fmt.Sprintf("%.2f", sc.CenterFortifiedBias),
			fmt.Sprintf("%d", sc.MaxVoidColumns),
		})
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("14"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	tbl.SetStyles(styles)

	return ScalingView{tbl: tbl}
}

// Update forwards key events to the table for scrolling.
func (v ScalingView) Update(msg tea.Msg) (ScalingView, tea.Cmd) {
	var cmd tea.Cmd
	v.tbl, cmd = v.tbl.Update(msg)
	return v, cmd
}

// View renders the table with its title. Rows marked * are extrapolated
// beyond the authored table.
func (v ScalingView) View() string {
	return titleStyle.Render("Loop scaling") + "\n" + v.tbl.View() + "\n" +
		statusStyle.Render("* extrapolated beyond the authored table")
}

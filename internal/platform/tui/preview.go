package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickforge/internal/config"
	"github.com/vovakirdan/brickforge/internal/level"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// PreviewKeyMap defines the key bindings for the previewer.
type PreviewKeyMap struct {
	PrevLevel key.Binding
	NextLevel key.Binding
	PrevPhase key.Binding
	NextPhase key.Binding
	LoopUp    key.Binding
	LoopDown  key.Binding
	Reseed    key.Binding
	Scaling   key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevLevel, k.NextLevel, k.NextPhase, k.LoopUp, k.Reseed, k.Scaling, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevLevel, k.NextLevel, k.PrevPhase, k.NextPhase},
		{k.LoopUp, k.LoopDown, k.Reseed, k.Scaling, k.Quit},
	}
}

// DefaultPreviewKeyMap returns default key bindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		PrevLevel: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		PrevPhase: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev phase"),
		),
		NextPhase: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next phase"),
		),
		LoopUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "loop up"),
		),
		LoopDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "loop down"),
		),
		Reseed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reseed"),
		),
		Scaling: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "scaling table"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PreviewModel is the Bubble Tea model for the layout previewer. It steps
// through levels, loops and transform phases of the generated layouts.
type PreviewModel struct {
	cfg     config.Config
	catalog *level.Catalog
	prog    level.Progression

	levelIndex int
	loopBoost  int // extra loops stacked on top of the level's own loop
	seed       uint64

	phases   []level.Phase
	phaseIdx int

	showScaling bool
	scaling     ScalingView

	keys   PreviewKeyMap
	help   help.Model
	width  int
	height int
}

// NewPreviewModel creates a previewer over the builtin catalog.
func NewPreviewModel(cfg config.Config, seed uint64) PreviewModel {
	m := PreviewModel{
		cfg:     cfg,
		catalog: level.DefaultCatalog(),
		prog:    cfg.LevelProgression(),
		seed:    seed,
		keys:    DefaultPreviewKeyMap(),
		help:    help.New(),
	}
	m.scaling = NewScalingView(m.prog, 16)
	m.regenerate()
	return m
}

// regenerate rebuilds the phase sequence for the current level, loop and
// seed. Phase 0 is always the base layout; presets with an authored
// transform plan contribute the remaining phases.
func (m *PreviewModel) regenerate() {
	loop := m.catalog.LoopFor(m.levelIndex) + m.loopBoost
	sc := m.prog.ScalingFor(loop)
	tun := m.cfg.Tuning()

	spec := m.catalog.SpecFor(m.levelIndex)
	spec = level.RemixWith(spec, loop, sc, tun)

	rng := level.NewXorShift(m.seed + uint64(m.levelIndex)*1000003)
	opts := m.cfg.Options(rng.Source(), sc)

	var directives []level.Directive
	if plan, ok := m.catalog.TransformPlanFor(m.levelIndex); ok {
		directives = plan.Directives
	}

	geo := m.cfg.Geometry
	m.phases = level.TransformingLayouts(spec, directives, geo.BrickWidth, geo.BrickHeight, geo.FieldWidth, opts)
	if m.phaseIdx >= len(m.phases) {
		m.phaseIdx = 0
	}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Scaling):
			m.showScaling = !m.showScaling
			return m, nil
		}
		if m.showScaling {
			var cmd tea.Cmd
			m.scaling, cmd = m.scaling.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.PrevLevel):
			if m.levelIndex > 0 {
				m.levelIndex--
				m.phaseIdx = 0
				m.regenerate()
			}
		case key.Matches(msg, m.keys.NextLevel):
			m.levelIndex++
			m.phaseIdx = 0
			m.regenerate()
		case key.Matches(msg, m.keys.PrevPhase):
			if m.phaseIdx > 0 {
				m.phaseIdx--
			}
		case key.Matches(msg, m.keys.NextPhase):
			if m.phaseIdx < len(m.phases)-1 {
				m.phaseIdx++
			}
		case key.Matches(msg, m.keys.LoopUp):
			m.loopBoost++
			m.regenerate()
		case key.Matches(msg, m.keys.LoopDown):
			if m.loopBoost > 0 {
				m.loopBoost--
				m.regenerate()
			}
		case key.Matches(msg, m.keys.Reseed):
			m.seed++
			m.regenerate()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	if m.showScaling {
		return m.scaling.View() + "\n" + m.help.View(m.keys)
	}
	if len(m.phases) == 0 {
		return "no phases"
	}

	phase := m.phases[m.phaseIdx]
	preset, presetIdx := m.catalog.PresetFor(m.levelIndex)
	loop := m.catalog.LoopFor(m.levelIndex) + m.loopBoost
	sc := m.prog.ScalingFor(loop)

	header := titleStyle.Render(fmt.Sprintf("%s (preset %d)", preset.Name, presetIdx)) +
		statusStyle.Render(fmt.Sprintf("  level %d  loop %d  speed x%.2f  seed %d",
			m.levelIndex, loop, sc.SpeedMultiplier, m.seed))

	meta := phase.Meta
	status := statusStyle.Render(fmt.Sprintf(
		"phase %d/%d [%s]  bricks %d  breakable %d  checksum %016x",
		meta.Index+1, meta.Total, meta.Phase,
		len(phase.Layout.Bricks), phase.Layout.BreakableCount,
		level.Checksum(phase.Layout)))

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(frameStyle.Render(RenderLayout(phase.Layout)))
	sb.WriteString("\n")
	sb.WriteString(status)
	sb.WriteString("\n")
	sb.WriteString(Legend())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

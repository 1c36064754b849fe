package level

import (
	"fmt"
	"sort"
)

// PatternKind selects a wall overlay pattern for ApplyPattern.
type PatternKind int

const (
	// PatternChecker walls every other cell by (row+col) parity.
	PatternChecker PatternKind = iota
	// PatternHollow walls the interior, leaving the border breakable
	// (or the reverse when inverted).
	PatternHollow
)

// String returns the pattern name.
func (p PatternKind) String() string {
	if p == PatternHollow {
		return "hollow"
	}
	return "checker"
}

// RowRange is an inclusive range of row indices.
type RowRange struct {
	From, To int
}

func (r RowRange) rows() []int {
	if r.To < r.From {
		return nil
	}
	out := make([]int, 0, r.To-r.From+1)
	for i := r.From; i <= r.To; i++ {
		out = append(out, i)
	}
	return out
}

// Directive is one step of the layout transform pipeline. It is a closed
// sum type: the pipeline switches over the concrete kinds exhaustively, so
// adding a kind is a compile-time-checked change.
type Directive interface {
	isDirective()
	// phaseCount is how many phases the directive expands into; zero
	// means the directive is skipped.
	phaseCount() int
	phaseLabel(step int) string
}

// ShiftRows cyclically rotates the breakable bricks of the targeted rows
// sideways, one discrete step per phase. Nil Rows targets every row. The
// sign of Steps gives the direction.
type ShiftRows struct {
	Rows  []int
	Steps int
	Label string
}

func (ShiftRows) isDirective() {}

func (d ShiftRows) phaseCount() int { return absInt(d.Steps) }

func (d ShiftRows) phaseLabel(step int) string {
	if d.Label != "" {
		return d.Label
	}
	return fmt.Sprintf("shift-rows%+d", signInt(d.Steps))
}

// ShiftColumns is ShiftRows rotated ninety degrees: it rotates the
// breakable bricks of the targeted conceptual columns vertically.
type ShiftColumns struct {
	Columns []int
	Steps   int
	Label   string
}

func (ShiftColumns) isDirective() {}

func (d ShiftColumns) phaseCount() int { return absInt(d.Steps) }

func (d ShiftColumns) phaseLabel(step int) string {
	if d.Label != "" {
		return d.Label
	}
	return fmt.Sprintf("shift-columns%+d", signInt(d.Steps))
}

// SwapBands exchanges two row bands index-for-index, truncated to the
// shorter band. Row indices and world Y swap; columns stay put.
type SwapBands struct {
	First, Second RowRange
	Label         string
}

func (SwapBands) isDirective() {}

func (SwapBands) phaseCount() int { return 1 }

func (d SwapBands) phaseLabel(int) string {
	if d.Label != "" {
		return d.Label
	}
	return "swap-bands"
}

// ApplyPattern overlays a wall pattern onto the current phase.
type ApplyPattern struct {
	Pattern PatternKind
	Invert  bool
	Label   string
}

func (ApplyPattern) isDirective() {}

func (ApplyPattern) phaseCount() int { return 1 }

func (d ApplyPattern) phaseLabel(int) string {
	if d.Label != "" {
		return d.Label
	}
	if d.Invert {
		return "pattern-" + d.Pattern.String() + "-inverted"
	}
	return "pattern-" + d.Pattern.String()
}

// PhaseMeta identifies a phase within its sequence.
type PhaseMeta struct {
	Phase string
	Index int
	Total int
}

// Phase is one layout in an ordered sequence of related layouts.
type Phase struct {
	Layout Layout
	Meta   PhaseMeta
}

// TransformingLayouts generates the base layout and then derives one phase
// per directive step, each a clone of the previous phase so transformations
// accumulate. Phase 0 is always the untransformed base.
func TransformingLayouts(spec Spec, directives []Directive, brickW, brickH, fieldW float64, opts Options) []Phase {
	tun := opts.tuning()

	total := 1
	for _, d := range directives {
		total += d.phaseCount()
	}

	base := Generate(spec, brickW, brickH, fieldW, opts)
	phases := make([]Phase, 0, total)
	phases = append(phases, Phase{
		Layout: base,
		Meta:   PhaseMeta{Phase: "base", Index: 0, Total: total},
	})

	cur := base
	idx := 1
	emit := func(l Layout, label string) {
		l.BreakableCount = l.CountBreakable()
		phases = append(phases, Phase{
			Layout: l,
			Meta:   PhaseMeta{Phase: label, Index: idx, Total: total},
		})
		cur = l
		idx++
	}

	for _, d := range directives {
		switch dt := d.(type) {
		case ShiftRows:
			dir := signInt(dt.Steps)
			for s := 1; s <= absInt(dt.Steps); s++ {
				next := cur.Clone()
				shiftRowsOnce(&next, dt.Rows, dir)
				emit(next, dt.phaseLabel(s))
			}
		case ShiftColumns:
			dir := signInt(dt.Steps)
			for s := 1; s <= absInt(dt.Steps); s++ {
				next := cur.Clone()
				shiftColumnsOnce(&next, dt.Columns, dir)
				emit(next, dt.phaseLabel(s))
			}
		case SwapBands:
			next := cur.Clone()
			swapBands(&next, dt.First, dt.Second)
			emit(next, dt.phaseLabel(1))
		case ApplyPattern:
			next := cur.Clone()
			applyPattern(&next, dt.Pattern, dt.Invert, tun.WallHP)
			emit(next, dt.phaseLabel(1))
		}
	}

	return phases
}

// shiftRowsOnce rotates each targeted row's breakable (col, x) assignments
// by one position. Walls are fixed scaffolding and do not move.
func shiftRowsOnce(l *Layout, rows []int, dir int) {
	target := indexSet(rows)
	byRow := make(map[int][]int)
	for i, b := range l.Bricks {
		if !b.Breakable {
			continue
		}
		if target != nil && !target[b.Row] {
			continue
		}
		byRow[b.Row] = append(byRow[b.Row], i)
	}

	for _, idxs := range byRow {
		n := len(idxs)
		if n < 2 {
			continue
		}
		sort.Slice(idxs, func(a, b int) bool {
			return l.Bricks[idxs[a]].X < l.Bricks[idxs[b]].X
		})
		cols := make([]int, n)
		xs := make([]float64, n)
		for k, bi := range idxs {
			cols[k] = l.Bricks[bi].Col
			xs[k] = l.Bricks[bi].X
		}
		for k, bi := range idxs {
			src := ((k-dir)%n + n) % n
			l.Bricks[bi].Col = cols[src]
			l.Bricks[bi].X = xs[src]
		}
	}
}

// shiftColumnsOnce rotates each targeted column's breakable (row, y)
// assignments by one position.
func shiftColumnsOnce(l *Layout, columns []int, dir int) {
	target := indexSet(columns)
	byCol := make(map[int][]int)
	for i, b := range l.Bricks {
		if !b.Breakable {
			continue
		}
		if target != nil && !target[b.Col] {
			continue
		}
		byCol[b.Col] = append(byCol[b.Col], i)
	}

	for _, idxs := range byCol {
		n := len(idxs)
		if n < 2 {
			continue
		}
		sort.Slice(idxs, func(a, b int) bool {
			return l.Bricks[idxs[a]].Row < l.Bricks[idxs[b]].Row
		})
		rows := make([]int, n)
		ys := make([]float64, n)
		for k, bi := range idxs {
			rows[k] = l.Bricks[bi].Row
			ys[k] = l.Bricks[bi].Y
		}
		for k, bi := range idxs {
			src := ((k-dir)%n + n) % n
			l.Bricks[bi].Row = rows[src]
			l.Bricks[bi].Y = ys[src]
		}
	}
}

// swapBands pairs rows of the two ranges by ascending index and exchanges
// row index and world Y, leaving columns untouched. Pairs where either row
// holds no bricks are skipped.
func swapBands(l *Layout, first, second RowRange) {
	rowsA := first.rows()
	rowsB := second.rows()
	n := len(rowsA)
	if len(rowsB) < n {
		n = len(rowsB)
	}
	for i := 0; i < n; i++ {
		ra, rb := rowsA[i], rowsB[i]
		if ra == rb {
			continue
		}
		ya, okA := rowY(l, ra)
		yb, okB := rowY(l, rb)
		if !okA || !okB {
			continue
		}
		for j := range l.Bricks {
			switch l.Bricks[j].Row {
			case ra:
				l.Bricks[j].Row = rb
				l.Bricks[j].Y = yb
			case rb:
				l.Bricks[j].Row = ra
				l.Bricks[j].Y = ya
			}
		}
	}
}

func rowY(l *Layout, row int) (float64, bool) {
	for _, b := range l.Bricks {
		if b.Row == row {
			return b.Y, true
		}
	}
	return 0, false
}

// applyPattern walls the bricks selected by the pattern: checker by cell
// parity, hollow by interior/edge position within the layout's bounds.
func applyPattern(l *Layout, pattern PatternKind, invert bool, wallHP int) {
	if len(l.Bricks) == 0 {
		return
	}

	minRow, maxRow := l.Bricks[0].Row, l.Bricks[0].Row
	minCol, maxCol := l.Bricks[0].Col, l.Bricks[0].Col
	for _, b := range l.Bricks {
		if b.Row < minRow {
			minRow = b.Row
		}
		if b.Row > maxRow {
			maxRow = b.Row
		}
		if b.Col < minCol {
			minCol = b.Col
		}
		if b.Col > maxCol {
			maxCol = b.Col
		}
	}

	for i := range l.Bricks {
		b := &l.Bricks[i]
		var hit bool
		switch pattern {
		case PatternChecker:
			want := 0
			if invert {
				want = 1
			}
			hit = (b.Row+b.Col)%2 == want
		case PatternHollow:
			edge := b.Row == minRow || b.Row == maxRow || b.Col == minCol || b.Col == maxCol
			if invert {
				hit = edge
			} else {
				hit = !edge
			}
		}
		if !hit {
			continue
		}
		b.Traits = b.Traits.Add(TraitWall)
		b.Breakable = false
		b.HP = wallHP
	}
}

// indexSet returns nil for "all", else a membership set.
func indexSet(indices []int) map[int]bool {
	if indices == nil {
		return nil
	}
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Package level implements procedural brick-breaker layout generation and
// loop-based difficulty progression. It contains pure logic with no external
// dependencies (especially no Bubble Tea) so that every generation call is
// deterministic given the same spec, options and random source.
package level

import "strings"

// MaxBrickHP is the ceiling for breakable brick hit points. Deeper multi-hit
// behavior is expressed through the fortified bonus and runtime re-hits, not
// through large HP values.
const MaxBrickHP = 2

// WallHP is the sentinel hit-point value reported for non-breakable wall
// bricks. Not physically meaningful.
const WallHP = 9999

// Trait is a gameplay tag carried by a brick.
type Trait uint8

const (
	// TraitFortified marks a breakable brick with bonus HP.
	TraitFortified Trait = 1 << iota
	// TraitGamble marks the one-per-row high-risk/reward brick.
	TraitGamble
	// TraitWall marks a permanent non-breakable obstacle.
	TraitWall
)

// TraitSet is a set of brick traits.
type TraitSet uint8

// Has reports whether the set contains the given trait.
func (s TraitSet) Has(t Trait) bool { return s&TraitSet(t) != 0 }

// Add returns the set with the trait included.
func (s TraitSet) Add(t Trait) TraitSet { return s | TraitSet(t) }

// Union merges two trait sets (duplicates collapse naturally).
func (s TraitSet) Union(o TraitSet) TraitSet { return s | o }

// String returns a stable comma-separated representation, e.g. "fortified,wall".
func (s TraitSet) String() string {
	if s == 0 {
		return "none"
	}
	parts := make([]string, 0, 3)
	if s.Has(TraitFortified) {
		parts = append(parts, "fortified")
	}
	if s.Has(TraitGamble) {
		parts = append(parts, "gamble")
	}
	if s.Has(TraitWall) {
		parts = append(parts, "wall")
	}
	return strings.Join(parts, ",")
}

// Form is the visual/physics shape of a brick. It affects the collision
// shape the downstream orchestrator builds, not just rendering.
type Form int

const (
	FormRectangle Form = iota
	FormDiamond
	FormCircle
)

// String returns the form name.
func (f Form) String() string {
	switch f {
	case FormDiamond:
		return "diamond"
	case FormCircle:
		return "circle"
	default:
		return "rectangle"
	}
}

// HPFunc maps a row index to that row's base hit points. Implementations
// must be pure: identical inputs always yield identical outputs.
type HPFunc func(row int) int

// ConstantHP returns an HPFunc that yields the same HP for every row.
func ConstantHP(hp int) HPFunc {
	return func(int) int { return hp }
}

// HPTable returns an HPFunc backed by a precomputed per-row slice. Row
// indices outside the slice clamp to the nearest entry, so the function is
// total. Used by the remix engine so its output is comparable in tests.
func HPTable(values []int) HPFunc {
	return func(row int) int {
		if len(values) == 0 {
			return 1
		}
		if row < 0 {
			row = 0
		}
		if row >= len(values) {
			row = len(values) - 1
		}
		return values[row]
	}
}

// Spec is a declarative level template. It is immutable once constructed;
// the remix engine produces a new Spec rather than mutating one.
type Spec struct {
	Rows int
	Cols int

	// HPPerRow yields base HP per row. Nil means constant 1.
	HPPerRow HPFunc

	// StartY is the world Y of the first (top) row's brick centers.
	// Subsequent rows stack downward.
	StartY float64

	// Gap is the desired spacing between bricks, in world units.
	Gap float64

	// PowerUpChanceMultiplier scales the orchestrator's power-up drop
	// chance. Zero is treated as 1.
	PowerUpChanceMultiplier float64
}

// HPForRow resolves the base HP for a row, defaulting to 1.
func (s Spec) HPForRow(row int) int {
	if s.HPPerRow == nil {
		return 1
	}
	hp := s.HPPerRow(row)
	if hp < 1 {
		return 1
	}
	return hp
}

// PowerUpMultiplier resolves the power-up multiplier, defaulting to 1.
func (s Spec) PowerUpMultiplier() float64 {
	if s.PowerUpChanceMultiplier <= 0 {
		return 1
	}
	return s.PowerUpChanceMultiplier
}

// Brick is one concrete brick in a generated layout.
type Brick struct {
	// Row and Col are grid coordinates. Col is the original requested
	// column index, which may differ from the placed slot index when
	// columns were trimmed to fit the field.
	Row, Col int

	// X, Y are world coordinates of the brick center.
	X, Y float64

	// HP is at least 1 for breakable bricks and WallHP for walls.
	HP int

	Traits TraitSet
	Form   Form

	// Breakable bricks count toward level completion.
	Breakable bool

	// Sensor marks the physics body as a pass-through sensor.
	Sensor bool
}

// Layout is a fully generated level: an ordered brick list plus the spec
// that produced it.
type Layout struct {
	Bricks         []Brick
	BreakableCount int
	Spec           Spec
}

// Clone returns a deep copy of the layout. Transform phases operate on
// clones so earlier phases stay inspectable.
func (l Layout) Clone() Layout {
	out := l
	out.Bricks = make([]Brick, len(l.Bricks))
	copy(out.Bricks, l.Bricks)
	return out
}

// CountBreakable recounts bricks with Breakable set. Used after transforms.
func (l Layout) CountBreakable() int {
	n := 0
	for _, b := range l.Bricks {
		if b.Breakable {
			n++
		}
	}
	return n
}

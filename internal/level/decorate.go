package level

import "math"

// DecorationContext is what the engine hands a decorator for each placed
// brick. Traits is a copy of the already-decided base traits; mutating it
// has no effect on the layout.
type DecorationContext struct {
	Row       int
	Col       int // original column index
	SlotIndex int // placed slot index, 0-based post-compaction
	SlotCount int
	Spec      Spec
	Traits    TraitSet
	Random    RandomSource // nil when generation is unseeded
}

// DecorationResult carries per-brick overrides from a decorator. Zero
// fields mean "no override"; HP values that are non-positive or non-finite
// are normalized away rather than propagated.
type DecorationResult struct {
	// Traits are unioned with the base traits.
	Traits TraitSet

	// Form overrides the brick shape when HasForm is set.
	Form    Form
	HasForm bool

	// Breakable and Sensor override their defaults when non-nil.
	Breakable *bool
	Sensor    *bool

	// HP overrides the computed hit points when positive and finite.
	HP float64
}

// Decorator lets a collaborator override layout shape or traits per brick,
// e.g. orientation-specific diamond or circle patterns. The engine calls it
// but owns no shape policy itself.
type Decorator interface {
	// Decorate returns an override for the brick described by ctx, or
	// false to leave the brick untouched.
	Decorate(ctx DecorationContext) (DecorationResult, bool)
}

// DecoratorFunc adapts a plain function to the Decorator interface.
type DecoratorFunc func(ctx DecorationContext) (DecorationResult, bool)

// Decorate implements Decorator.
func (f DecoratorFunc) Decorate(ctx DecorationContext) (DecorationResult, bool) {
	return f(ctx)
}

// hpOverride normalizes a decoration HP: non-positive or non-finite values
// mean "no override".
func (r DecorationResult) hpOverride() (int, bool) {
	if r.HP <= 0 || math.IsInf(r.HP, 0) || math.IsNaN(r.HP) {
		return 0, false
	}
	return int(math.Round(r.HP)), true
}

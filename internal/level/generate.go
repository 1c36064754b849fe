package level

import "math"

// fortifiedHPStepFactor is the fraction of base HP added when a brick is
// fortified, floored at one point.
const fortifiedHPStepFactor = 0.35

// Options is the configuration bag for Generate. The zero value produces a
// plain deterministic layout: no voids, no fortified or gamble bricks, no
// decoration, default tuning.
type Options struct {
	// Random drives every probabilistic feature. Nil disables them all.
	Random RandomSource

	FortifiedChance     float64
	VoidColumnChance    float64
	CenterFortifiedBias float64
	GambleChance        float64

	// MaxVoidColumns bounds voided columns; values above the tuning cap
	// are clamped. Zero means "use the tuning cap".
	MaxVoidColumns int

	// MaxGambleBricks bounds gamble bricks per level. Zero or negative
	// means unlimited (still at most one per row).
	MaxGambleBricks int

	// Decorate, when non-nil, may override shape and traits per brick.
	Decorate Decorator

	// Tuning overrides the stock constants; nil means DefaultTuning.
	Tuning *Tuning
}

// ApplyScaling copies a loop descriptor's generation knobs into the options,
// wiring the progression table into layout generation.
func (o Options) ApplyScaling(sc LoopScaling) Options {
	o.FortifiedChance = sc.FortifiedChance
	o.VoidColumnChance = sc.VoidColumnChance
	o.CenterFortifiedBias = sc.CenterFortifiedBias
	o.MaxVoidColumns = sc.MaxVoidColumns
	return o
}

func (o Options) tuning() Tuning {
	if o.Tuning != nil {
		return *o.Tuning
	}
	return DefaultTuning()
}

// Generate turns a declarative spec into a concrete, non-overlapping grid
// of bricks. Degenerate geometry (a field too narrow for a single brick) is
// not an error: the result is a structurally valid empty layout.
func Generate(spec Spec, brickW, brickH, fieldW float64, opts Options) Layout {
	tun := opts.tuning()

	plan := resolveColumns(spec.Cols, brickW, fieldW, spec.Gap, tun)
	if !plan.ok || spec.Rows <= 0 {
		return Layout{Spec: spec}
	}

	var walls map[int]bool
	if opts.Random != nil || plan.trimmed {
		walls = planWallSlots(plan.cols, plan.trimmed, opts.Random)
	}

	maxVoid := opts.MaxVoidColumns
	if maxVoid <= 0 || maxVoid > tun.MaxVoidColumnsCap {
		maxVoid = tun.MaxVoidColumnsCap
	}
	voids := selectVoidColumns(plan.cols, opts.VoidColumnChance, maxVoid, opts.Random)

	maxGamble := opts.MaxGambleBricks
	if maxGamble <= 0 {
		maxGamble = math.MaxInt
	}
	gambleUsed := 0

	bricks := make([]Brick, 0, spec.Rows*plan.cols)
	breakable := 0

	for row := 0; row < spec.Rows; row++ {
		rowHasGamble := false
		y := spec.StartY - float64(row)*(brickH+plan.gap)

		for slot := 0; slot < plan.cols; slot++ {
			if voids[slot] {
				continue
			}

			col := plan.firstCol + slot
			x := plan.startX + float64(slot)*(brickW+plan.gap)
			hp := spec.HPForRow(row)
			traits := TraitSet(0)

			if opts.Random != nil && opts.FortifiedChance > 0 {
				chance := fortifiedChanceAt(slot, plan.cols, opts.FortifiedChance, opts.CenterFortifiedBias)
				if opts.Random() < chance {
					hp += fortifiedHPStep(hp)
					traits = traits.Add(TraitFortified)
				}
			}

			if !traits.Has(TraitFortified) && opts.Random != nil && opts.GambleChance > 0 &&
				gambleUsed < maxGamble && !rowHasGamble && opts.Random() < opts.GambleChance {
				traits = traits.Add(TraitGamble)
				hp = tun.GamblePrimeHP
				gambleUsed++
				rowHasGamble = true
			}

			form := FormRectangle
			hasForm := false
			var breakOverride *bool
			sensor := false
			hpOverridden := false

			if opts.Decorate != nil {
				res, ok := opts.Decorate.Decorate(DecorationContext{
					Row:       row,
					Col:       col,
					SlotIndex: slot,
					SlotCount: plan.cols,
					Spec:      spec,
					Traits:    traits,
					Random:    opts.Random,
				})
				if ok {
					traits = traits.Union(res.Traits)
					if res.HasForm {
						form = res.Form
						hasForm = true
					}
					breakOverride = res.Breakable
					if res.Sensor != nil {
						sensor = *res.Sensor
					}
					if v, has := res.hpOverride(); has {
						hp = v
						hpOverridden = true
					}
				}
			}

			// Decoration wins; the wall plan only applies when it left
			// breakability undecided, and never on gamble bricks.
			isBreakable := true
			plannedWall := false
			if breakOverride != nil {
				isBreakable = *breakOverride
			} else if walls[slot] && !traits.Has(TraitGamble) {
				isBreakable = false
				plannedWall = true
			}

			if plannedWall {
				traits = traits.Add(TraitWall)
				if !hasForm {
					if slot%2 == 0 {
						form = FormDiamond
					} else {
						form = FormCircle
					}
				}
				if !hpOverridden {
					hp = tun.WallHP
				}
			}

			if isBreakable {
				if hp < 1 {
					hp = 1
				}
				if hp > tun.MaxHP {
					hp = tun.MaxHP
				}
				breakable++
			}

			bricks = append(bricks, Brick{
				Row:       row,
				Col:       col,
				X:         x,
				Y:         y,
				HP:        hp,
				Traits:    traits,
				Form:      form,
				Breakable: isBreakable,
				Sensor:    sensor,
			})
		}
	}

	return Layout{Bricks: bricks, BreakableCount: breakable, Spec: spec}
}

// fortifiedChanceAt boosts the fortified chance for slots near the grid's
// horizontal center.
func fortifiedChanceAt(slot, slotCount int, chance, centerBias float64) float64 {
	if slotCount <= 1 {
		return clamp01(chance * (1 + centerBias))
	}
	half := float64(slotCount-1) / 2
	dist := math.Abs(float64(slot)-half) / half
	return clamp01(chance * (1 + centerBias*(1-dist)))
}

// fortifiedHPStep is the flat bonus a fortified brick gains.
func fortifiedHPStep(hp int) int {
	step := int(math.Round(float64(hp) * fortifiedHPStepFactor))
	if step < 1 {
		step = 1
	}
	return step
}

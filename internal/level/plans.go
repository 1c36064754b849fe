package level

// TransformPlan is an authored transform sequence for one preset, used for
// staged or looping arrangements that are not simple loop remixes.
type TransformPlan struct {
	Directives []Directive

	// ApplyPhaseIndex is the phase the orchestrator should start play on;
	// zero means the base layout.
	ApplyPhaseIndex int
}

// transformPlans keys authored plans by preset index (see BuiltinPresets
// for the ordering).
var transformPlans = map[int]TransformPlan{
	// conveyor: three full sideways steps, played from the first shifted
	// phase so the opening arrangement already looks in motion.
	5: {
		Directives: []Directive{
			ShiftRows{Steps: 3, Label: "conveyor"},
		},
		ApplyPhaseIndex: 1,
	},
	// checkers: overlay the checker wall pattern on the base layout.
	6: {
		Directives: []Directive{
			ApplyPattern{Pattern: PatternChecker},
		},
	},
	// bands: swap the top and bottom halves, then nudge the middle rows.
	7: {
		Directives: []Directive{
			SwapBands{First: RowRange{From: 0, To: 3}, Second: RowRange{From: 4, To: 7}},
			ShiftRows{Rows: []int{3, 4}, Steps: 1},
		},
	},
}

// TransformPlanFor looks up the authored transform plan for a level index,
// resolved through the catalog's preset rotation.
func (c *Catalog) TransformPlanFor(levelIndex int) (TransformPlan, bool) {
	if c.Len() == 0 {
		return TransformPlan{}, false
	}
	_, presetIdx := c.PresetFor(levelIndex)
	plan, ok := transformPlans[presetIdx]
	return plan, ok
}

// TransformPlanFor looks up a plan via the process-wide catalog.
func TransformPlanFor(levelIndex int) (TransformPlan, bool) {
	return defaultCatalog.TransformPlanFor(levelIndex)
}

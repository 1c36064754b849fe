package level

import (
	"sync"
	"time"
)

// Preset is one hand-authored level template.
type Preset struct {
	ID   string
	Name string
	Spec Spec
}

// Catalog is an ordered, fixed list of presets plus a rotation offset that
// remaps which preset corresponds to level zero (seeded/daily rotation).
// The offset is the only mutable state and is guarded so reads stay
// consistent within a single generation call.
type Catalog struct {
	mu      sync.RWMutex
	presets []Preset
	offset  int
}

// NewCatalog creates a catalog from a preset list.
func NewCatalog(presets []Preset) *Catalog {
	return &Catalog{presets: presets}
}

// Len returns the number of presets.
func (c *Catalog) Len() int { return len(c.presets) }

// SetPresetOffset sets the rotation offset, normalized and wrapped modulo
// the preset count.
func (c *Catalog) SetPresetOffset(offset int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.presets)
	if n == 0 {
		c.offset = 0
		return
	}
	c.offset = ((offset % n) + n) % n
}

// PresetOffset returns the current rotation offset.
func (c *Catalog) PresetOffset() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// PresetFor resolves a level index to its preset and preset index,
// wrapping around the catalog. An empty catalog is a configuration error
// and panics: it should abort startup, not surface per call.
func (c *Catalog) PresetFor(levelIndex int) (Preset, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := len(c.presets)
	if n == 0 {
		panic("level: preset catalog is empty")
	}
	idx := (((levelIndex%n)+n)%n + c.offset) % n
	return c.presets[idx], idx
}

// SpecFor returns the spec for a level index.
func (c *Catalog) SpecFor(levelIndex int) Spec {
	p, _ := c.PresetFor(levelIndex)
	return p.Spec
}

// LoopFor returns how many full catalog passes precede a level index.
func (c *Catalog) LoopFor(levelIndex int) int {
	n := c.Len()
	if n == 0 || levelIndex < 0 {
		return 0
	}
	return levelIndex / n
}

// DailyOffset derives a rotation offset from a calendar date, so every
// player sees the same rotation on the same day.
func (c *Catalog) DailyOffset(t time.Time) int {
	n := c.Len()
	if n == 0 {
		return 0
	}
	y, m, d := t.Date()
	key := uint64(y)*10000 + uint64(m)*100 + uint64(d)
	// splitmix64 finalizer, enough mixing for a date key
	key ^= key >> 30
	key *= 0xbf58476d1ce4e5b9
	key ^= key >> 27
	return int(key % uint64(n))
}

// BuiltinPresets returns the authored preset catalog. Order matters: the
// index here is the preset index transform plans key on.
func BuiltinPresets() []Preset {
	return []Preset{
		{ID: "classic", Name: "Classic", Spec: Spec{
			Rows: 5, Cols: 10, StartY: 420, Gap: 4,
		}},
		{ID: "gradient", Name: "Gradient", Spec: Spec{
			Rows: 6, Cols: 11, StartY: 440, Gap: 4,
			HPPerRow: func(row int) int {
				if row < 2 {
					return 2
				}
				return 1
			},
		}},
		{ID: "tight", Name: "Tight Grid", Spec: Spec{
			Rows: 7, Cols: 12, StartY: 450, Gap: 2,
		}},
		{ID: "open", Name: "Open Field", Spec: Spec{
			Rows: 4, Cols: 8, StartY: 400, Gap: 10,
			PowerUpChanceMultiplier: 1.25,
		}},
		{ID: "fortress", Name: "Fortress", Spec: Spec{
			Rows: 6, Cols: 9, StartY: 430, Gap: 4,
			HPPerRow: ConstantHP(2),
		}},
		{ID: "conveyor", Name: "Conveyor", Spec: Spec{
			Rows: 3, Cols: 12, StartY: 410, Gap: 3,
		}},
		{ID: "checkers", Name: "Checkers", Spec: Spec{
			Rows: 6, Cols: 10, StartY: 430, Gap: 4,
		}},
		{ID: "bands", Name: "Banded", Spec: Spec{
			Rows: 8, Cols: 9, StartY: 460, Gap: 3,
			PowerUpChanceMultiplier: 0.9,
		}},
	}
}

var defaultCatalog = NewCatalog(BuiltinPresets())

// DefaultCatalog returns the process-wide catalog.
func DefaultCatalog() *Catalog { return defaultCatalog }

// SpecFor returns the spec for a level index from the process-wide catalog.
func SpecFor(levelIndex int) Spec { return defaultCatalog.SpecFor(levelIndex) }

// PresetCount returns the process-wide catalog size.
func PresetCount() int { return defaultCatalog.Len() }

// SetPresetOffset sets the process-wide rotation offset.
func SetPresetOffset(offset int) { defaultCatalog.SetPresetOffset(offset) }

// PresetOffset returns the process-wide rotation offset.
func PresetOffset() int { return defaultCatalog.PresetOffset() }

// DifficultyMultiplier is the speed multiplier for a level index:
// the scaling of the loop the index falls in.
func DifficultyMultiplier(levelIndex int) float64 {
	return ScalingFor(defaultCatalog.LoopFor(levelIndex)).SpeedMultiplier
}

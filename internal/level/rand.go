package level

// RandomSource yields pseudo-random float64 values in [0, 1). Callers own
// seeding; the engine never reseeds. A nil source disables every randomized
// feature and generation falls back to deterministic defaults.
type RandomSource func() float64

// XorShift is a deterministic xorshift64 pseudo-random generator. It is the
// canonical RandomSource implementation for seeded/replayable runs.
type XorShift struct {
	state uint64
}

// NewXorShift creates a generator with the given seed. A zero seed is
// replaced with a fixed non-zero constant (xorshift cannot leave state 0).
func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = 88172645463325252
	}
	return &XorShift{state: seed}
}

// Next returns the next random uint64.
func (r *XorShift) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *XorShift) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n).
func (r *XorShift) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Source adapts the generator to the RandomSource function contract.
func (r *XorShift) Source() RandomSource {
	return r.Float
}

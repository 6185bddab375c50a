package breakout

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so a seed fully determines a game.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Bool returns a fair coin flip.
// Uses the top bit; the low bits of an LCG have short periods.
func (r *SimpleRNG) Bool() bool {
	return r.Next()>>63 == 1
}

// Sign returns +1 or -1 with equal probability.
func (r *SimpleRNG) Sign() float64 {
	if r.Bool() {
		return 1
	}
	return -1
}

package vmath

// --- Randomness ---

// FastRand is a xorshift64 generator
// Every random draw of the simulation goes through one instance, so a seed fully determines a run
type FastRand struct {
	state uint64
	seed  uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed, seed: seed}
}

// Seed returns the effective seed the generator was created with
func (r *FastRand) Seed() uint64 {
	return r.seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a value in [lo, hi)
func (r *FastRand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// IntRange returns an integer in [lo, hi], both ends inclusive
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Chance reports true with probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}

// Pick returns an index in [0, n)
func (r *FastRand) Pick(n int) int {
	return r.Intn(n)
}

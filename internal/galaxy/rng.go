package galaxy

import "math"

// RNG is a deterministic pseudo-random number generator (xorshift64*).
// It uses no platform-dependent state, so a seed yields the same sequence
// everywhere.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed. Every seed, including 0,
// is scrambled with splitmix64 so nearby seeds give unrelated streams.
func NewRNG(seed int64) *RNG {
	s := splitmix64(uint64(seed))
	if s == 0 {
		s = 88172645463325252 // xorshift state must be non-zero
	}
	return &RNG{state: s}
}

// stream derives an independent generator for a secondary purpose
// (home selection, naming) so it never shifts the placement sequence.
func stream(seed int64, salt uint64) *RNG {
	return NewRNG(int64(splitmix64(uint64(seed) ^ salt)))
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a random float64 in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + float64((max-min)*r.Float())
}

// Signed returns a random float64 in [-1, 1).
func (r *RNG) Signed() float64 {
	return float64(2*r.Float()) - 1
}

// Angle returns a random angle in [0, 2π).
func (r *RNG) Angle() float64 {
	return float64(2 * math.Pi * r.Float())
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

package colorutil

import (
	"fmt"
	"math/rand/v2"
)

// maxColor is the largest packed 24-bit color
const maxColor = 0xffffff

// Source supplies uniformly distributed integers for RandomHex
type Source interface {
	// Intn returns a value in [0,n), n > 0
	Intn(n int) int
}

// globalSource wraps the runtime-seeded math/rand/v2 generator, safe for concurrent use
type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.IntN(n)
}

// DefaultSource is used when no source is supplied
var DefaultSource Source = globalSource{}

// --- Randomness ---

// FastRand is a seeded xorshift64 generator for reproducible output
// Not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, a zero seed is replaced by 1
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next advances the state and returns the raw 64-bit output
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0,n), or 0 when n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// RandomHex returns a uniformly random "#rrggbb" color drawn from src
// A nil src uses DefaultSource
func RandomHex(src Source) string {
	if src == nil {
		src = DefaultSource
	}
	n := src.Intn(maxColor + 1)
	// Guard against sources that ignore the bound
	return fmt.Sprintf("#%06x", uint32(n)&maxColor)
}

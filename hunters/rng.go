package hunters

import "math/rand/v2"

// RNG is the narrow interface every simulation component draws random
// numbers from. Nothing in this package touches the global math/rand
// source, so two runs with the same seed are bit-for-bit identical
// regardless of call order elsewhere in the process.
type RNG struct {
	r *rand.Rand
}

// NewRNG derives a per-run seed deterministically from a build's index
// in its generation batch and the run index within that build's batch
// of repeated simulations, so a caller can reproduce any single
// run in isolation.
func NewRNG(buildIndex, runIndex int64) *RNG {
	seed := mixSeed(buildIndex, runIndex)
	var seedBytes [32]byte
	for i := 0; i < 4; i++ {
		s := mixSeed(seed, int64(i))
		for b := 0; b < 8; b++ {
			seedBytes[i*8+b] = byte(s >> (8 * b))
		}
	}
	return &RNG{r: rand.New(rand.NewChaCha8(seedBytes))}
}

// mixSeed combines two indices with a splitmix64-style finalizer so
// adjacent (buildIndex, runIndex) pairs don't produce correlated
// sequences.
func mixSeed(a, b int64) int64 {
	x := uint64(a)*0x9E3779B97F4A7C15 + uint64(b)*0xBF58476D1CE4E5B9
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return int64(x)
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Chance reports whether a roll against p succeeds, treating p <= 0 as
// never and p >= 1 as always without consuming a draw.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

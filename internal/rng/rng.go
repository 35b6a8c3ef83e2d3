// Package rng wraps the single deterministic generator shared by the
// simulation. It is seeded once and never reseeded.
package rng

import (
	"math/rand/v2"
)

// Rand is a seeded PCG generator.
type Rand struct {
	src *rand.PCG
	r   *rand.Rand
}

// New creates a generator from a 64-bit seed.
func New(seed uint64) *Rand {
	src := rand.NewPCG(seed, seed^0xda3e39cb94b95bdb)
	return &Rand{src: src, r: rand.New(src)}
}

// Float32 returns a uniform float in [0,1).
func (g *Rand) Float32() float32 { return g.r.Float32() }

// Float64 returns a uniform float in [0,1).
func (g *Rand) Float64() float64 { return g.r.Float64() }

// Bool returns a fair coin.
func (g *Rand) Bool() bool { return g.r.Uint64()&1 == 1 }

// IntN returns a uniform int in [0,n). It panics if n <= 0.
func (g *Rand) IntN(n int) int { return g.r.IntN(n) }

// Range returns a uniform int in [lo,hi).
func (g *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.IntN(hi-lo)
}

// Uint64 returns 64 random bits.
func (g *Rand) Uint64() uint64 { return g.r.Uint64() }

// State returns the marshalled generator state.
func (g *Rand) State() []byte {
	b, err := g.src.MarshalBinary()
	if err != nil {
		// PCG.MarshalBinary never fails.
		panic(err)
	}
	return b
}

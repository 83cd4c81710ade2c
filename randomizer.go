package gomath3d

import (
	"math"

	"github.com/MichaelTJones/pcg"
	"golang.org/x/exp/rand"
)

// Stream selector for the PCG32 generator; any odd constant works.
const pcgSequence = 0xda3e39cb94b95bdb

// Randomizer draws uniform and Gaussian samples from a generator it owns.
// Two Randomizers built from the same seed produce the same sequence.
//
// A Randomizer is not safe for concurrent use. Give each goroutine its own
// instance, or guard a shared one with a mutex.
type Randomizer struct {
	next func() float64

	// BoxMuller produces samples in pairs; the second standard normal is
	// kept here for the following call.
	spare    float64
	hasSpare bool
}

// NewRandomizer seeds a PCG32 generator.
func NewRandomizer(seed uint64) *Randomizer {
	gen := pcg.NewPCG32()
	gen.Seed(seed, pcgSequence)
	return &Randomizer{
		next: func() float64 {
			return (float64(gen.Random()) + 0.5) / (1 << 32)
		},
	}
}

// NewRandomizerFromSource draws from an x/exp/rand Source instead, e.g.
// rand.NewSource(seed).
func NewRandomizerFromSource(src rand.Source) *Randomizer {
	r := rand.New(src)
	return &Randomizer{
		next: func() float64 {
			return (float64(r.Uint64()>>11) + 0.5) / (1 << 53)
		},
	}
}

// Uniform returns a sample from the open interval (0, 1). Zero is never
// returned, so the result is always safe to pass to math.Log.
func (r *Randomizer) Uniform() float64 {
	return r.next()
}

// Range returns a uniform sample from (min, max).
func (r *Randomizer) Range(min, max float64) float64 {
	return min + (max-min)*r.next()
}

// BoxMuller returns a normally distributed sample with the given mean and
// standard deviation. Each pair of uniform draws yields two independent
// standard normals; the second is cached and used, rescaled, by the next
// call.
func (r *Randomizer) BoxMuller(mean, stddev float64) float64 {
	if r.hasSpare {
		r.hasSpare = false
		return mean + stddev*r.spare
	}
	u1, u2 := r.next(), r.next()
	radius := math.Sqrt(-2 * math.Log(u1))
	s, c := math.Sincos(2 * math.Pi * u2)

	r.spare = radius * s
	r.hasSpare = true
	return mean + stddev*radius*c
}

// Reset discards the cached Box-Muller sample.
func (r *Randomizer) Reset() {
	r.hasSpare = false
	r.spare = 0
}

package core

import "math/rand"

// Sampler provides random samples for Monte Carlo estimation.
// Can be swapped out for deterministic testing or different sampling patterns.
// The shading core never seeds or owns randomness; callers supply a sampler
// per in-flight path so independent worker threads never share state.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get4D() (Vec2, Vec2)
	GetIndex(n int) int
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get4D returns four random float64 values in [0, 1)
func (r *RandomSampler) Get4D() (Vec2, Vec2) {
	return r.Get2D(), r.Get2D()
}

// GetIndex returns a uniform random index in [0, n)
func (r *RandomSampler) GetIndex(n int) int {
	idx := int(r.random.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

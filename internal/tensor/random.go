package tensor

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator is an explicit, seedable random source for sampling tensors and
// drawing augmentation parameters.
//
// Draws form one strictly ordered sequence: the same seed and the same call
// order always produce the same values. A Generator is not safe for concurrent
// use; give each goroutine its own.
type Generator struct {
	seed uint64
	src  *rand.PCG
	rng  *rand.Rand
}

// NewGenerator creates a Generator seeded with seed.
//
// Example:
//
//	rng := tensor.NewGenerator(42)
//	w, err := tensor.Rand[float32](rng, Shape{6, 4}, -1, 1, backend, SampleConfig{})
func NewGenerator(seed uint64) *Generator {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Generator{
		seed: seed,
		src:  src,
		rng:  rand.New(src),
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Float64 returns one uniform draw in [0, 1).
func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

// Uniform returns one draw from U(low, high), in [low, high).
func (g *Generator) Uniform(low, high float64) float64 {
	return distuv.Uniform{Min: low, Max: high, Src: g.src}.Rand()
}

// Normal returns one draw from N(mean, std²).
func (g *Generator) Normal(mean, std float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: std, Src: g.src}.Rand()
}

// Randint returns size integers drawn uniformly from [low, high).
// Panics if high <= low or size < 0.
func (g *Generator) Randint(low, high, size int) []int {
	if high <= low {
		panic(fmt.Sprintf("randint: empty range [%d, %d)", low, high))
	}
	if size < 0 {
		panic(fmt.Sprintf("randint: negative size %d", size))
	}
	out := make([]int, size)
	for i := range out {
		out[i] = low + g.rng.IntN(high-low)
	}
	return out
}

// Package random draws seeded pseudo-random tensors and Tucker
// decompositions for tests, examples and benchmarks.
package random

import (
	"fmt"
	"math/rand"

	"github.com/zhangyaqian0701/tensorly/internal/tensor"
	"github.com/zhangyaqian0701/tensorly/internal/tucker"
)

// NewSource returns a deterministic generator seeded with seed. Equal
// seeds reproduce equal draw sequences.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Tensor draws a tensor of the given shape with entries uniform in [0, 1).
func Tensor[T tensor.Float, B tensor.Backend](shape tensor.Shape, rng *rand.Rand, backend B) (*tensor.Tensor[T, B], error) {
	return tensor.Rand[T](shape, rng, backend)
}

// Tucker draws a random decomposition of the given full shape and
// multilinear rank: a core of shape rank and one factor of shape
// (shape[i], rank[i]) per mode.
func Tucker[T tensor.Float, B tensor.Backend](shape, rank tensor.Shape, rng *rand.Rand, backend B) (*tucker.Decomposition[T, B], error) {
	if len(shape) != len(rank) {
		return nil, fmt.Errorf("random: shape has %d modes but rank has %d", len(shape), len(rank))
	}
	core, err := tensor.Rand[T](rank, rng, backend)
	if err != nil {
		return nil, fmt.Errorf("random: core: %w", err)
	}
	factors := make([]*tensor.Tensor[T, B], len(shape))
	for i := range shape {
		factors[i], err = tensor.Rand[T](tensor.Shape{shape[i], rank[i]}, rng, backend)
		if err != nil {
			return nil, fmt.Errorf("random: factor %d: %w", i, err)
		}
	}
	return tucker.New(core, factors)
}

// TuckerFull draws a random decomposition and returns its reconstruction.
func TuckerFull[T tensor.Float, B tensor.Backend](shape, rank tensor.Shape, rng *rand.Rand, backend B) (*tensor.Tensor[T, B], error) {
	d, err := Tucker[T](shape, rank, rng, backend)
	if err != nil {
		return nil, err
	}
	return d.ToTensor()
}

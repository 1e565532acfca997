// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random draws seeded pseudo-random tensors and Tucker
// decompositions.
package random

import (
	"math/rand"

	"github.com/zhangyaqian0701/tensorly/internal/random"
	"github.com/zhangyaqian0701/tensorly/internal/tensor"
	"github.com/zhangyaqian0701/tensorly/internal/tucker"
)

// NewSource returns a deterministic generator seeded with seed. Equal
// seeds reproduce equal draw sequences.
func NewSource(seed int64) *rand.Rand {
	return random.NewSource(seed)
}

// Tensor draws a tensor of the given shape with entries uniform in [0, 1).
func Tensor[T tensor.Float, B tensor.Backend](shape tensor.Shape, rng *rand.Rand, backend B) (*tensor.Tensor[T, B], error) {
	return random.Tensor[T](shape, rng, backend)
}

// Tucker draws a random decomposition of the given full shape and
// multilinear rank: a core of shape rank and one factor of shape
// (shape[i], rank[i]) per mode.
//
// Example:
//
//	backend := cpu.New()
//	rng := random.NewSource(12345)
//	d, err := random.Tucker[float64](tensor.Shape{3, 4, 5}, tensor.Shape{3, 2, 4}, rng, backend)
func Tucker[T tensor.Float, B tensor.Backend](shape, rank tensor.Shape, rng *rand.Rand, backend B) (*tucker.Decomposition[T, B], error) {
	return random.Tucker[T](shape, rank, rng, backend)
}

// TuckerFull draws a random decomposition and returns its
// reconstruction.
func TuckerFull[T tensor.Float, B tensor.Backend](shape, rank tensor.Shape, rng *rand.Rand, backend B) (*tensor.Tensor[T, B], error) {
	return random.TuckerFull[T](shape, rank, rng, backend)
}

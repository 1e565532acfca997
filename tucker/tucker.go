// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tucker provides the Tucker tensor format: a core tensor plus
// one factor matrix per mode, reconstructed by contracting factor i
// along mode i.
//
// Example:
//
//	backend := cpu.New()
//	d, _ := random.Tucker[float64](tensor.Shape{5, 4, 3}, tensor.Shape{2, 2, 2}, rng, backend)
//	full, err := d.ToTensor()        // Shape: [5, 4, 3]
//	unf, err := d.ToUnfolded(1)      // Shape: [4, 15]
//	vec, err := d.ToVec()            // Shape: [60]
package tucker

import (
	"github.com/zhangyaqian0701/tensorly/internal/tensor"
	"github.com/zhangyaqian0701/tensorly/internal/tucker"
)

// Common errors.
var (
	ErrTooFewFactors = tucker.ErrTooFewFactors
	ErrFactorCount   = tucker.ErrFactorCount
	ErrFactorShape   = tucker.ErrFactorShape
	ErrRankMismatch  = tucker.ErrRankMismatch
)

// Decomposition holds a core tensor together with one factor matrix
// per core mode.
type Decomposition[T tensor.DType, B tensor.Backend] = tucker.Decomposition[T, B]

// Option configures reconstruction.
type Option = tucker.Option

// SkipFactor leaves factor i out of the reconstruction, so the result
// keeps the core extent along that mode.
func SkipFactor(i int) Option { return tucker.SkipFactor(i) }

// TransposeFactors contracts with the transpose of every factor.
func TransposeFactors() Option { return tucker.TransposeFactors() }

// New validates core and factors and wraps them in a Decomposition.
func New[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B]) (*Decomposition[T, B], error) {
	return tucker.New(core, factors)
}

// Validate checks that core and factors form a well-formed Tucker
// tensor and returns the full tensor shape and the multilinear rank.
// Factor i must be a matrix with one column per extent of core mode i;
// its row count gives the reconstructed extent of that mode.
func Validate[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B]) (shape, rank tensor.Shape, err error) {
	return tucker.Validate(core, factors)
}

// ToTensor reconstructs the full tensor from a core and its factors.
func ToTensor[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B], opts ...Option) (*tensor.Tensor[T, B], error) {
	return tucker.ToTensor(core, factors, opts...)
}

// ToUnfolded reconstructs the full tensor and returns its mode-n
// unfolding.
func ToUnfolded[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B], mode int, opts ...Option) (*tensor.Tensor[T, B], error) {
	return tucker.ToUnfolded(core, factors, mode, opts...)
}

// ToVec reconstructs the full tensor and flattens it row-major.
func ToVec[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B], opts ...Option) (*tensor.Tensor[T, B], error) {
	return tucker.ToVec(core, factors, opts...)
}

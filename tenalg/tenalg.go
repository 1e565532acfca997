// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tenalg provides tensor algebra: n-mode products of tensors
// with matrices, chained multi-mode products and Kronecker products.
//
// Every operation is expressed as matrix multiplications on mode-n
// unfoldings, so the heavy lifting runs on the backend's MatMul.
//
// Example:
//
//	backend := cpu.New()
//	t, _ := tensor.Rand[float64](tensor.Shape{3, 4, 2}, rng, backend)
//	u, _ := tensor.Rand[float64](tensor.Shape{5, 4}, rng, backend)
//	res, err := tenalg.ModeDot(t, u, 1)  // Shape: [3, 5, 2]
package tenalg

import (
	"github.com/zhangyaqian0701/tensorly/internal/tenalg"
	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// Common errors.
var (
	ErrModeOutOfRange    = tenalg.ErrModeOutOfRange
	ErrNotMatrix         = tenalg.ErrNotMatrix
	ErrDimensionMismatch = tenalg.ErrDimensionMismatch
	ErrModeCount         = tenalg.ErrModeCount
)

// Option configures a mode product.
type Option = tenalg.Option

// Skip leaves the i-th matrix (after sorting by mode) out of a
// multi-mode product. An index outside the matrix range skips nothing.
func Skip(i int) Option { return tenalg.Skip(i) }

// Transpose contracts with the transpose of each matrix.
func Transpose() Option { return tenalg.Transpose() }

// Modes assigns an explicit contraction mode to each matrix of a
// multi-mode product instead of the default 0, 1, 2, ...
func Modes(modes ...int) Option { return tenalg.Modes(modes...) }

// ModeDot computes the n-mode product of tensor t with matrix m along
// mode: every mode-n fiber of t is multiplied by m. The mode's extent
// changes from m's column count to m's row count.
func ModeDot[T tensor.DType, B tensor.Backend](t, m *tensor.Tensor[T, B], mode int, opts ...Option) (*tensor.Tensor[T, B], error) {
	return tenalg.ModeDot(t, m, mode, opts...)
}

// MultiModeDot contracts t with a series of matrices, one mode each,
// in ascending mode order. See Skip, Transpose and Modes for variants.
func MultiModeDot[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], matrices []*tensor.Tensor[T, B], opts ...Option) (*tensor.Tensor[T, B], error) {
	return tenalg.MultiModeDot(t, matrices, opts...)
}

// KronOption configures a Kronecker product.
type KronOption = tenalg.KronOption

// SkipMatrix leaves the i-th matrix out of a Kronecker product.
func SkipMatrix(i int) KronOption { return tenalg.SkipMatrix(i) }

// Reverse multiplies the matrices in reverse order.
func Reverse() KronOption { return tenalg.Reverse() }

// Kronecker computes the Kronecker product of the matrices in order.
// For inputs of shape (m_i, n_i) the result has shape
// (prod m_i, prod n_i).
func Kronecker[T tensor.DType, B tensor.Backend](matrices []*tensor.Tensor[T, B], opts ...KronOption) (*tensor.Tensor[T, B], error) {
	return tenalg.Kronecker(matrices, opts...)
}

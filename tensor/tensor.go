// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense tensors.
//
// The package defines core interfaces and types for type-safe tensor
// operations:
//   - Tensor[T, B]: high-level generic tensor with type safety
//   - RawTensor: low-level untyped tensor for advanced use cases
//   - Backend: interface for device-specific compute implementations
//   - Shape, DataType: core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
//	m := tensor.Unfold(x, 1)
package tensor

import (
	"math/rand"

	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64.
type DType = tensor.DType

// Float is the floating-point subset of DType.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Backend is defined in backend.go as a proper interface.

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32, float64, int32, int64).
// B is the backend implementation.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	y := x.Reshape(3, 2)
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Full(tensor.Shape{2, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) (*Tensor[T, B], error) {
	return tensor.Full[T, B](shape, value, b)
}

// Arange creates a 1D tensor holding 0, 1, ..., n-1.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Arange[int64](10, backend)  // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](n int, b B) (*Tensor[T, B], error) {
	return tensor.Arange[T, B](n, b)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	backend := cpu.New()
//	identity, err := tensor.Eye[float64](3, backend)  // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) (*Tensor[T, B], error) {
	return tensor.Eye[T, B](n, b)
}

// Rand creates a tensor filled with random values from the uniform
// distribution U(0, 1), drawn from rng.
//
// Example:
//
//	backend := cpu.New()
//	rng := rand.New(rand.NewSource(42))
//	x, err := tensor.Rand[float64](tensor.Shape{2, 3}, rng, backend)
func Rand[T Float, B Backend](shape Shape, rng *rand.Rand, b B) (*Tensor[T, B], error) {
	return tensor.Rand[T, B](shape, rng, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions
// like Zeros, FromSlice or Rand instead.
func New[T DType, B Backend](raw *RawTensor, b B) (*Tensor[T, B], error) {
	return tensor.New[T, B](raw, b)
}

// Unfolding adapters

// Unfold returns the mode-n unfolding of t: a matrix whose rows index
// mode, with the remaining modes raveled row-major along the columns.
// The result is a view sharing t's buffer.
func Unfold[T DType, B Backend](t *Tensor[T, B], mode int) *Tensor[T, B] {
	return tensor.Unfold(t, mode)
}

// Fold inverts Unfold: it folds a mode-n unfolding back into a tensor
// of the given shape.
func Fold[T DType, B Backend](m *Tensor[T, B], mode int, shape Shape) *Tensor[T, B] {
	return tensor.Fold(m, mode, shape)
}

// ToVec flattens t into a 1D tensor in row-major order. The result is a
// view sharing t's buffer.
func ToVec[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return tensor.ToVec(t)
}

// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/zhangyaqian0701/tensorly/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The contract is deliberately small: every higher-level operation in
// this library reduces to matrix multiplication plus shape bookkeeping,
// so a backend that can multiply, reshape and transpose can run all of
// them.
//
// Implementations:
//   - backend/cpu: gonum-backed BLAS matmul with parallel integer kernels
//
// Example:
//
//	import (
//	    "github.com/zhangyaqian0701/tensorly/backend/cpu"
//	    "github.com/zhangyaqian0701/tensorly/tensor"
//	)
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	y := x.MatMul(x)  // Uses backend.MatMul under the hood
type Backend interface {
	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor // Matrix multiplication for 2D tensors.

	// Shape operations.
	Reshape(t *RawTensor, shape Shape) *RawTensor  // Reinterpret shape; shares the buffer.
	Transpose(t *RawTensor, axes []int) *RawTensor // Permute dimensions.

	// Metadata.
	Name() string // Backend name (e.g., "cpu").
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)

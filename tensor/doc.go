// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe dense tensors with a fixed
// row-major layout.
//
// # Overview
//
// Tensors are the fundamental data structure of this library. This
// package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Row-major (C-order) storage with a documented unfolding convention
//   - Zero-copy reshape, unfold and vectorize views
//   - Backend abstraction for the compute kernels
//
// # Basic Usage
//
//	import (
//	    "github.com/zhangyaqian0701/tensorly/backend/cpu"
//	    "github.com/zhangyaqian0701/tensorly/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x, _ := tensor.Arange[float64](24, backend)
//	    t := x.Reshape(3, 4, 2)
//
//	    // Unfold along a mode, flatten, fold back
//	    m := tensor.Unfold(t, 1)                       // Shape: [4, 6]
//	    v := tensor.ToVec(t)                           // Shape: [24]
//	    u := tensor.Fold(m, 1, tensor.Shape{3, 4, 2})  // Shape: [3, 4, 2]
//	    _, _, _ = m, v, u
//	}
//
// # Unfolding Convention
//
// Unfold(t, mode) moves mode to the front and reshapes row-major, so
// row r of the unfolding is the subtensor t[..., r, ...] with the
// remaining modes raveled in ascending order. ToVec(t) equals the
// row-major ravel of t, which reads Unfold(t, 0) row by row. Fold is
// the exact inverse of Unfold for a matching shape.
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType
// constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
package tensor

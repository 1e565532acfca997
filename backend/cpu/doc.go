// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU backend for tensor operations.
//
// # Overview
//
// This package implements the tensor.Backend contract with:
//   - gonum mat.Dense multiplication for float64
//   - gonum blas32 Gemm for float32
//   - chunked parallel loops for int32 and int64
//   - zero-copy reshape views
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
//	    a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	    b, _ := tensor.Eye[float64](2, backend)
//	    c := a.MatMul(b)
//	    _ = c
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation is
// isolated and does not share mutable state.
package cpu

// Copyright 2025 The Tensorly Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/zhangyaqian0701/tensorly/internal/backend/cpu"
	"github.com/zhangyaqian0701/tensorly/internal/parallel"
	"github.com/zhangyaqian0701/tensorly/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend delegates float matrix products to gonum's BLAS
// routines and runs integer kernels on a chunked worker pool.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// Config controls the worker pool used by the parallel kernels.
type Config = parallel.Config

// New creates a new CPU backend with the default worker pool.
//
// Example:
//
//	import (
//	    "github.com/zhangyaqian0701/tensorly/backend/cpu"
//	    "github.com/zhangyaqian0701/tensorly/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x, _ := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	    _ = x
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with an explicit worker pool
// configuration. Config{} disables parallelism entirely.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the worker pool configuration used by New.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

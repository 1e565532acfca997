// Package cpu implements the CPU backend. Matrix products are delegated to
// gonum's BLAS routines; data movement uses parallel stride-walk kernels.
package cpu

import (
	"fmt"

	"github.com/zhangyaqian0701/tensorly/internal/parallel"
	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// CPUBackend implements tensor operations on the CPU.
type CPUBackend struct {
	pool parallel.Config
}

// Compile-time check that CPUBackend satisfies the backend contract.
var _ tensor.Backend = (*CPUBackend)(nil)

// New creates a CPU backend with the default worker pool.
func New() *CPUBackend {
	return &CPUBackend{pool: parallel.DefaultConfig()}
}

// NewWithConfig creates a CPU backend with a custom worker pool.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{pool: cfg}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "cpu"
}

// Reshape returns a view of t under a new shape. The view shares t's buffer;
// only the shape metadata changes.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := t.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

// Transpose permutes the tensor's modes. axes must be a permutation
// of 0..ndim-1.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes []int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRawZeros(newShape, t.DType())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	switch t.DType() {
	case tensor.Float32:
		transposeKernel(result.AsFloat32(), t.AsFloat32(), shape, newShape, axes, cpu.pool)
	case tensor.Float64:
		transposeKernel(result.AsFloat64(), t.AsFloat64(), shape, newShape, axes, cpu.pool)
	case tensor.Int32:
		transposeKernel(result.AsInt32(), t.AsInt32(), shape, newShape, axes, cpu.pool)
	case tensor.Int64:
		transposeKernel(result.AsInt64(), t.AsInt64(), shape, newShape, axes, cpu.pool)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}

	return result
}

// transposeKernel scatters src into dst according to the axis permutation.
// Each destination element is written exactly once, so rows can be handled
// by independent workers.
func transposeKernel[T tensor.DType](dst, src []T, srcShape, dstShape tensor.Shape, axes []int, pool parallel.Config) {
	ndim := len(srcShape)
	srcStrides := srcShape.ComputeStrides()
	dstStrides := dstShape.ComputeStrides()

	parallel.For(len(dst), func(i int) {
		// Decode the destination index, then map each coordinate back to
		// the source axis it came from.
		rem := i
		srcIdx := 0
		for dim := 0; dim < ndim; dim++ {
			coord := rem / dstStrides[dim]
			rem %= dstStrides[dim]
			srcIdx += coord * srcStrides[axes[dim]]
		}
		dst[i] = src[srcIdx]
	}, pool)
}

package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"

	"github.com/zhangyaqian0701/tensorly/internal/parallel"
	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Float kernels go through gonum's GEMM routines; integer kernels use an
// exact loop parallelized over rows.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch %s vs %s", a.DType(), b.DType()))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result, err := tensor.NewRawZeros(tensor.Shape{m, n}, a.DType())
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		matmulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Float64:
		matmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
	case tensor.Int32:
		matmulInt(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n, cpu.pool)
	case tensor.Int64:
		matmulInt(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n, cpu.pool)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulFloat64 runs DGEMM via gonum/mat, writing into c's backing slice.
func matmulFloat64(c, a, b []float64, m, k, n int) {
	am := mat.NewDense(m, k, a)
	bm := mat.NewDense(k, n, b)
	cm := mat.NewDense(m, n, c)
	cm.Mul(am, bm)
}

// matmulFloat32 runs SGEMM via gonum/blas32.
func matmulFloat32(c, a, b []float32, m, k, n int) {
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas32.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas32.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas32.General{Rows: m, Cols: n, Stride: n, Data: c})
}

// matmulInt keeps integer arithmetic exact; gonum has no integer GEMM.
// Rows of the output are independent, so the loop parallelizes over m.
func matmulInt[T int32 | int64](c, a, b []T, m, k, n int, pool parallel.Config) {
	parallel.For(m, func(i int) {
		row := c[i*n : (i+1)*n]
		for l := 0; l < k; l++ {
			av := a[i*k+l]
			if av == 0 {
				continue
			}
			bRow := b[l*n : (l+1)*n]
			for j, bv := range bRow {
				row[j] += av * bv
			}
		}
	}, pool)
}

package tensor

import "fmt"

// MockBackend is a small pure-Go backend used by unit tests in this package
// and by packages that test against the tensor API without pulling in a real
// backend. Kernels are naive but exact.
type MockBackend struct{}

// Name returns the backend identifier.
func (MockBackend) Name() string { return "mock" }

// MatMul multiplies two 2-D tensors with a naive triple loop.
func (MockBackend) MatMul(a, b *RawTensor) *RawTensor {
	if len(a.Shape()) != 2 || len(b.Shape()) != 2 {
		panic(fmt.Sprintf("matmul: both tensors must be 2-D, got %v and %v", a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}
	m, k := a.Shape()[0], a.Shape()[1]
	if b.Shape()[0] != k {
		panic(fmt.Sprintf("matmul: inner dimensions mismatch: (%d, %d) x (%d, %d)",
			m, k, b.Shape()[0], b.Shape()[1]))
	}
	n := b.Shape()[1]

	out := &RawTensor{
		data:  make([]byte, m*n*a.DType().Size()),
		shape: Shape{m, n},
		dtype: a.DType(),
	}
	switch a.DType() {
	case Float32:
		naiveMatMul(a.AsFloat32(), b.AsFloat32(), out.AsFloat32(), m, k, n)
	case Float64:
		naiveMatMul(a.AsFloat64(), b.AsFloat64(), out.AsFloat64(), m, k, n)
	case Int32:
		naiveMatMul(a.AsInt32(), b.AsInt32(), out.AsInt32(), m, k, n)
	case Int64:
		naiveMatMul(a.AsInt64(), b.AsInt64(), out.AsInt64(), m, k, n)
	}
	return out
}

func naiveMatMul[T DType](a, b, c []T, m, k, n int) {
	for i := 0; i < m; i++ {
		for l := 0; l < k; l++ {
			av := a[i*k+l]
			if av == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				c[i*n+j] += av * b[l*n+j]
			}
		}
	}
}

// Reshape returns a view of t under a new shape.
func (MockBackend) Reshape(t *RawTensor, shape Shape) *RawTensor {
	out, err := t.WithShape(shape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return out
}

// Transpose permutes the tensor's modes with a per-element stride walk.
func (MockBackend) Transpose(t *RawTensor, axes []int) *RawTensor {
	oldShape := t.Shape()
	n := len(oldShape)
	if len(axes) != n {
		panic(fmt.Sprintf("transpose: got %d axes for %d-mode tensor", len(axes), n))
	}
	seen := make([]bool, n)
	for _, a := range axes {
		if a < 0 || a >= n || seen[a] {
			panic(fmt.Sprintf("transpose: axes %v is not a permutation of 0..%d", axes, n-1))
		}
		seen[a] = true
	}

	newShape := make(Shape, n)
	for i, a := range axes {
		newShape[i] = oldShape[a]
	}

	elemSize := t.DType().Size()
	src := t.Data()
	dst := make([]byte, len(src))
	oldStrides := oldShape.ComputeStrides()
	newStrides := newShape.ComputeStrides()

	total := t.NumElements()
	for flat := 0; flat < total; flat++ {
		rem := flat
		srcFlat := 0
		for i := 0; i < n; i++ {
			idx := rem / newStrides[i]
			rem %= newStrides[i]
			srcFlat += idx * oldStrides[axes[i]]
		}
		copy(dst[flat*elemSize:(flat+1)*elemSize], src[srcFlat*elemSize:(srcFlat+1)*elemSize])
	}

	return &RawTensor{data: dst, shape: newShape, dtype: t.DType()}
}

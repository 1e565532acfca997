// Package tenalg implements the multi-mode contraction engine: n-mode
// products, their chained form, and the Kronecker reference path.
package tenalg

import (
	"fmt"

	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// ModeDot computes the n-mode product of t with a matrix along the given
// mode: each output entry along that mode is a weighted sum over the mode's
// fibers, weights taken from the matrix rows. The product is evaluated as a
// matrix multiplication against the mode unfolding, never as nested index
// loops, so chains over many modes stay viable.
//
// With Transpose the matrix is contracted in transposed orientation, mapping
// from the output dimension back to the rank dimension. Skip and Modes have
// no effect on a single product.
func ModeDot[T tensor.DType, B tensor.Backend](t, m *tensor.Tensor[T, B], mode int, opts ...Option) (*tensor.Tensor[T, B], error) {
	o := newOptions(opts)
	return modeDot(t, m, mode, o.transpose)
}

func modeDot[T tensor.DType, B tensor.Backend](t, m *tensor.Tensor[T, B], mode int, transpose bool) (*tensor.Tensor[T, B], error) {
	if mode < 0 || mode >= t.NDim() {
		return nil, fmt.Errorf("%w: mode %d for %d-mode tensor", ErrModeOutOfRange, mode, t.NDim())
	}
	if m.NDim() != 2 {
		return nil, fmt.Errorf("%w: got %d modes, want 2", ErrNotMatrix, m.NDim())
	}

	rows, cols := m.Shape()[0], m.Shape()[1]
	contractDim, outDim := cols, rows
	orientation := "matrix"
	if transpose {
		contractDim, outDim = rows, cols
		orientation = "transposed matrix"
	}

	if contractDim != t.Shape()[mode] {
		return nil, fmt.Errorf("%w: %s has %d columns but tensor mode %d has extent %d",
			ErrDimensionMismatch, orientation, contractDim, mode, t.Shape()[mode])
	}

	factor := m
	if transpose {
		factor = m.T()
	}

	newShape := t.Shape().Clone()
	newShape[mode] = outDim

	product := factor.MatMul(tensor.Unfold(t, mode))
	return tensor.Fold(product, mode, newShape), nil
}

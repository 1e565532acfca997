package tenalg

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// KronOption configures Kronecker.
type KronOption func(*kronOptions)

type kronOptions struct {
	skip    int
	reverse bool
}

// SkipMatrix omits the i-th matrix from the product.
func SkipMatrix(i int) KronOption { return func(o *kronOptions) { o.skip = i } }

// Reverse multiplies the matrices in reverse order.
func Reverse() KronOption { return func(o *kronOptions) { o.reverse = true } }

// Kronecker computes the Kronecker product of the matrices, in order. It is
// the reference path for cross-checking reconstructions; the contraction
// engine itself never goes through it, since the product's size grows as the
// product of all matrix sizes.
func Kronecker[T tensor.DType, B tensor.Backend](matrices []*tensor.Tensor[T, B], opts ...KronOption) (*tensor.Tensor[T, B], error) {
	o := kronOptions{skip: -1}
	for _, opt := range opts {
		opt(&o)
	}

	selected := make([]*tensor.Tensor[T, B], 0, len(matrices))
	for i, m := range matrices {
		if i == o.skip {
			continue
		}
		if m.NDim() != 2 {
			return nil, fmt.Errorf("%w: matrix %d has %d modes", ErrNotMatrix, i, m.NDim())
		}
		selected = append(selected, m)
	}
	if len(selected) == 0 {
		return nil, errors.New("kronecker: no matrices to multiply")
	}
	if o.reverse {
		slices.Reverse(selected)
	}

	first := selected[0]
	data := first.Data()
	rows, cols := first.Shape()[0], first.Shape()[1]
	for _, m := range selected[1:] {
		data, rows, cols = kron2(data, rows, cols, m.Data(), m.Shape()[0], m.Shape()[1])
	}

	// FromSlice copies, so aliasing first's buffer in the single-matrix case
	// is safe.
	return tensor.FromSlice(data, tensor.Shape{rows, cols}, first.Backend())
}

// kron2 computes the Kronecker product of two matrices given as flat
// row-major slices, returning the flat product and its dimensions.
func kron2[T tensor.DType](a []T, am, an int, b []T, bm, bn int) ([]T, int, int) {
	rm, rn := am*bm, an*bn
	out := make([]T, rm*rn)
	for i := 0; i < am; i++ {
		for j := 0; j < an; j++ {
			av := a[i*an+j]
			if av == 0 {
				continue
			}
			for r := 0; r < bm; r++ {
				dstRow := (i*bm + r) * rn
				srcRow := r * bn
				for s := 0; s < bn; s++ {
					out[dstRow+j*bn+s] = av * b[srcRow+s]
				}
			}
		}
	}
	return out, rm, rn
}

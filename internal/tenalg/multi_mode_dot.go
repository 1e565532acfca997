package tenalg

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// Option configures ModeDot and MultiModeDot.
type Option func(*options)

type options struct {
	skip      int
	transpose bool
	modes     []int
}

func newOptions(opts []Option) options {
	o := options{skip: -1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Skip excludes the i-th matrix from a MultiModeDot chain; the tensor keeps
// its original extent along that matrix's mode. An index that matches no
// matrix skips nothing.
func Skip(i int) Option { return func(o *options) { o.skip = i } }

// Transpose contracts every matrix in transposed orientation.
func Transpose() Option { return func(o *options) { o.transpose = true } }

// Modes assigns a mode to each matrix. By default matrix i is contracted
// along mode i.
func Modes(modes ...int) Option { return func(o *options) { o.modes = modes } }

// MultiModeDot contracts t with each matrix along its mode. Products are
// applied in ascending mode order; since n-mode products over distinct modes
// commute, the result does not depend on that order beyond floating-point
// associativity.
func MultiModeDot[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B], matrices []*tensor.Tensor[T, B], opts ...Option) (*tensor.Tensor[T, B], error) {
	o := newOptions(opts)

	modes := o.modes
	if modes == nil {
		modes = make([]int, len(matrices))
		for i := range modes {
			modes[i] = i
		}
	}
	if len(modes) != len(matrices) {
		return nil, fmt.Errorf("%w: %d matrices, %d modes", ErrModeCount, len(matrices), len(modes))
	}

	type pair struct {
		matrix *tensor.Tensor[T, B]
		mode   int
	}
	pairs := make([]pair, len(matrices))
	for i := range matrices {
		pairs[i] = pair{matrices[i], modes[i]}
	}
	// Stable: matrices sharing a mode keep their given order.
	slices.SortStableFunc(pairs, func(a, b pair) int { return cmp.Compare(a.mode, b.mode) })

	res := t
	for i, p := range pairs {
		if i == o.skip {
			continue
		}
		var err error
		res, err = modeDot(res, p.matrix, p.mode, o.transpose)
		if err != nil {
			return nil, fmt.Errorf("matrix %d (mode %d): %w", i, p.mode, err)
		}
	}
	return res, nil
}

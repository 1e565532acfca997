// Package tucker implements the Tucker format: a core tensor contracted
// with one factor matrix per mode. A decomposition with core G and
// factors U_0..U_{n-1} represents the full tensor
//
//	X = G x_0 U_0 x_1 U_1 ... x_{n-1} U_{n-1}
//
// where factor i has one column per extent of core mode i and one row
// per extent of mode i in the reconstructed tensor.
package tucker

import (
	"fmt"

	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// Decomposition holds a core tensor together with one factor matrix per
// core mode. Construct it with New to guarantee the shapes line up.
type Decomposition[T tensor.DType, B tensor.Backend] struct {
	Core    *tensor.Tensor[T, B]
	Factors []*tensor.Tensor[T, B]
}

// New validates core and factors and wraps them in a Decomposition.
func New[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B]) (*Decomposition[T, B], error) {
	if _, _, err := Validate(core, factors); err != nil {
		return nil, err
	}
	return &Decomposition[T, B]{Core: core, Factors: factors}, nil
}

// Validate checks that core and factors form a well-formed Tucker
// tensor. Factor i must be a matrix whose column count equals the
// extent of core mode i. On success it returns the shape of the full
// tensor (row counts of the factors) and the multilinear rank (column
// counts, equal to the core shape).
func Validate[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B]) (shape, rank tensor.Shape, err error) {
	if len(factors) < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewFactors, len(factors))
	}
	if len(factors) != core.NDim() {
		return nil, nil, fmt.Errorf("%w: %d factors for a %d-mode core", ErrFactorCount, len(factors), core.NDim())
	}
	shape = make(tensor.Shape, len(factors))
	rank = make(tensor.Shape, len(factors))
	for i, f := range factors {
		if f.NDim() != 2 {
			return nil, nil, fmt.Errorf("%w: factors[%d] has %d modes, want 2", ErrFactorShape, i, f.NDim())
		}
		rows, cols := f.Shape()[0], f.Shape()[1]
		if cols != core.Shape()[i] {
			return nil, nil, fmt.Errorf("%w: factors[%d] has %d columns but core mode %d has extent %d",
				ErrRankMismatch, i, cols, i, core.Shape()[i])
		}
		shape[i] = rows
		rank[i] = cols
	}
	return shape, rank, nil
}

// Validate re-checks the decomposition and returns the full tensor
// shape and the multilinear rank.
func (d *Decomposition[T, B]) Validate() (shape, rank tensor.Shape, err error) {
	return Validate(d.Core, d.Factors)
}

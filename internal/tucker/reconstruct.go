package tucker

import (
	"fmt"

	"github.com/zhangyaqian0701/tensorly/internal/tenalg"
	"github.com/zhangyaqian0701/tensorly/internal/tensor"
)

// Option configures reconstruction.
type Option func(*options)

type options struct {
	skip      int
	transpose bool
}

// SkipFactor leaves factor i out of the reconstruction, so the result
// keeps the core extent along that mode. An index outside the factor
// range skips nothing.
func SkipFactor(i int) Option {
	return func(o *options) { o.skip = i }
}

// TransposeFactors contracts with the transpose of every factor. With
// orthonormal factors this projects a full tensor back onto the core.
func TransposeFactors() Option {
	return func(o *options) { o.transpose = true }
}

func (o options) tenalg() []tenalg.Option {
	var opts []tenalg.Option
	if o.skip >= 0 {
		opts = append(opts, tenalg.Skip(o.skip))
	}
	if o.transpose {
		opts = append(opts, tenalg.Transpose())
	}
	return opts
}

// ToTensor reconstructs the full tensor from a core and its factors by
// contracting factor i along mode i. The shapes are not validated up
// front; a mismatched factor surfaces as a mode product error.
func ToTensor[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B], opts ...Option) (*tensor.Tensor[T, B], error) {
	o := options{skip: -1}
	for _, opt := range opts {
		opt(&o)
	}
	return tenalg.MultiModeDot(core, factors, o.tenalg()...)
}

// ToUnfolded reconstructs the full tensor and returns its unfolding
// along mode.
func ToUnfolded[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B], mode int, opts ...Option) (*tensor.Tensor[T, B], error) {
	if mode < 0 || mode >= core.NDim() {
		return nil, fmt.Errorf("%w: mode %d for %d-mode tensor", tenalg.ErrModeOutOfRange, mode, core.NDim())
	}
	full, err := ToTensor(core, factors, opts...)
	if err != nil {
		return nil, err
	}
	return tensor.Unfold(full, mode), nil
}

// ToVec reconstructs the full tensor and flattens it row-major.
func ToVec[T tensor.DType, B tensor.Backend](core *tensor.Tensor[T, B], factors []*tensor.Tensor[T, B], opts ...Option) (*tensor.Tensor[T, B], error) {
	full, err := ToTensor(core, factors, opts...)
	if err != nil {
		return nil, err
	}
	return tensor.ToVec(full), nil
}

// ToTensor reconstructs the full tensor represented by d.
func (d *Decomposition[T, B]) ToTensor(opts ...Option) (*tensor.Tensor[T, B], error) {
	return ToTensor(d.Core, d.Factors, opts...)
}

// ToUnfolded reconstructs the full tensor and unfolds it along mode.
func (d *Decomposition[T, B]) ToUnfolded(mode int, opts ...Option) (*tensor.Tensor[T, B], error) {
	return ToUnfolded(d.Core, d.Factors, mode, opts...)
}

// ToVec reconstructs the full tensor and flattens it row-major.
func (d *Decomposition[T, B]) ToVec(opts ...Option) (*tensor.Tensor[T, B], error) {
	return ToVec(d.Core, d.Factors, opts...)
}

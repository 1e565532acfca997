package tensor

import "fmt"

// MatMul multiplies two 2-D tensors and returns the product.
// Panics (in the backend) if the tensors are not matrices with
// compatible inner dimensions.
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	raw := t.backend.MatMul(t.raw, other.raw)
	return fromRaw[T](raw, t.backend)
}

// Reshape returns a tensor with the same elements under a new shape.
// The element count must be unchanged.
func (t *Tensor[T, B]) Reshape(shape ...int) *Tensor[T, B] {
	raw := t.backend.Reshape(t.raw, Shape(shape))
	return fromRaw[T](raw, t.backend)
}

// Transpose permutes the tensor's modes. With no arguments the mode order
// is reversed; otherwise axes must be a permutation of 0..ndim-1.
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	if len(axes) == 0 {
		axes = make([]int, t.NDim())
		for i := range axes {
			axes[i] = t.NDim() - 1 - i
		}
	}
	raw := t.backend.Transpose(t.raw, axes)
	return fromRaw[T](raw, t.backend)
}

// T returns the transpose of a 2-D tensor.
// Panics for tensors with more or fewer than two modes.
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	if t.NDim() != 2 {
		panic(fmt.Sprintf("transpose: T requires a 2-D tensor, got %d modes", t.NDim()))
	}
	return t.Transpose(1, 0)
}

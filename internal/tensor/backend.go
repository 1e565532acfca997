package tensor

// Backend defines the computation contract tensors are bound to.
//
// The contraction engine expresses every multi-mode product through matrix
// multiplication on unfoldings, so a backend only has to provide dense matmul
// plus the two data-movement primitives unfoldings are built from. Backends
// panic on malformed inputs; shape validation happens at the call sites that
// return errors.
type Backend interface {
	// MatMul multiplies two 2-D tensors of the same dtype.
	// Shapes must be (m, k) and (k, n); the result is (m, n).
	MatMul(a, b *RawTensor) *RawTensor

	// Reshape returns a tensor with the same elements under a new shape.
	// The element count must be unchanged.
	Reshape(t *RawTensor, shape Shape) *RawTensor

	// Transpose permutes the tensor's modes. axes must be a permutation
	// of 0..ndim-1.
	Transpose(t *RawTensor, axes []int) *RawTensor

	// Name identifies the backend in logs and error messages.
	Name() string
}

package tensor

import "fmt"

// Matricization adapters. The layout convention is fixed across the module:
// storage is row-major, Unfold moves the chosen mode to the front and
// flattens the remaining modes in their original order, and ToVec is the
// plain row-major ravel. Row-raveling Unfold(t, 0) therefore equals ToVec(t).

// Unfold returns the mode-n unfolding of t: mode becomes the row index and
// the remaining modes, kept in their original order, form the columns. The
// result has shape (shape[mode], NumElements/shape[mode]).
// Panics if mode is out of range.
func Unfold[T DType, B Backend](t *Tensor[T, B], mode int) *Tensor[T, B] {
	n := t.NDim()
	if mode < 0 || mode >= n {
		panic(fmt.Sprintf("unfold: mode %d out of range for %d-mode tensor", mode, n))
	}

	perm := make([]int, 0, n)
	perm = append(perm, mode)
	for i := 0; i < n; i++ {
		if i != mode {
			perm = append(perm, i)
		}
	}

	shape := t.Shape()
	rows := shape[mode]
	cols := t.NumElements() / rows

	moved := t.backend.Transpose(t.raw, perm)
	return fromRaw[T](t.backend.Reshape(moved, Shape{rows, cols}), t.backend)
}

// Fold inverts Unfold: it rebuilds a tensor with the given shape from its
// mode-n unfolding. The matrix must have shape[mode] rows.
// Panics if mode is out of range or m is not a matching 2-D unfolding.
func Fold[T DType, B Backend](m *Tensor[T, B], mode int, shape Shape) *Tensor[T, B] {
	n := len(shape)
	if mode < 0 || mode >= n {
		panic(fmt.Sprintf("fold: mode %d out of range for shape %v", mode, shape))
	}
	if m.NDim() != 2 {
		panic(fmt.Sprintf("fold: expected a 2-D unfolding, got %d modes", m.NDim()))
	}
	if m.Shape()[0] != shape[mode] {
		panic(fmt.Sprintf("fold: unfolding has %d rows but shape %v expects %d at mode %d",
			m.Shape()[0], shape, shape[mode], mode))
	}

	// Reshape to the mode-first layout, then permute the mode back in place.
	movedShape := make(Shape, 0, n)
	movedShape = append(movedShape, shape[mode])
	for i := 0; i < n; i++ {
		if i != mode {
			movedShape = append(movedShape, shape[i])
		}
	}
	moved := m.backend.Reshape(m.raw, movedShape)

	inv := make([]int, n)
	for j := 0; j < n; j++ {
		switch {
		case j == mode:
			inv[j] = 0
		case j < mode:
			inv[j] = j + 1
		default:
			inv[j] = j
		}
	}
	return fromRaw[T](m.backend.Transpose(moved, inv), m.backend)
}

// ToVec flattens t into a 1-D tensor in row-major order. The result is a
// view sharing t's buffer.
func ToVec[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return fromRaw[T](t.backend.Reshape(t.raw, Shape{t.NumElements()}), t.backend)
}

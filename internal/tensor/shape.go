package tensor

import (
	"fmt"
	"slices"
)

// Shape holds the extent of each mode of a tensor. The empty shape is a
// scalar.
type Shape []int

// NumElements returns the number of elements a tensor of this shape holds.
// A scalar holds one.
func (s Shape) NumElements() int {
	n := 1
	for _, extent := range s {
		n *= extent
	}
	return n
}

// Validate reports whether every extent is positive.
func (s Shape) Validate() error {
	for mode, extent := range s {
		if extent <= 0 {
			return fmt.Errorf("shape %v: mode %d has non-positive extent %d", s, mode, extent)
		}
	}
	return nil
}

// Equal reports whether s and other have the same extents in the same order.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// ComputeStrides returns the row-major strides of the shape: the last mode is
// contiguous, and each stride is the element count of the modes after it.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	stride := 1
	for mode := len(s) - 1; mode >= 0; mode-- {
		strides[mode] = stride
		stride *= s[mode]
	}
	return strides
}

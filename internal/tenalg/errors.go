package tenalg

import "errors"

// Common errors.
var (
	ErrModeOutOfRange    = errors.New("mode out of range")
	ErrNotMatrix         = errors.New("operand is not a matrix")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrModeCount         = errors.New("matrix and mode counts differ")
)

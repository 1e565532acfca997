package tucker

import "errors"

// Common errors.
var (
	ErrTooFewFactors = errors.New("tucker tensor needs at least two factors")
	ErrFactorCount   = errors.New("factor count does not match core modes")
	ErrFactorShape   = errors.New("factor is not a matrix")
	ErrRankMismatch  = errors.New("factor rank does not match core extent")
)

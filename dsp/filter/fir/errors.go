package fir

import "errors"

var (
	// ErrInvalidFilterSpec indicates a tap count or cutoff outside the
	// designable range.
	ErrInvalidFilterSpec = errors.New("fir: invalid filter spec")
	// ErrCoefficientRange indicates a coefficient that does not fit the Q15
	// headroom bound.
	ErrCoefficientRange = errors.New("fir: coefficient out of range")
)

package quarter

import (
	"errors"

	"github.com/cwbudde/algo-sdr/dsp/filter/fir"
)

var (
	// ErrInvalidFilterSpec indicates an invalid tap count or cutoff.
	ErrInvalidFilterSpec = fir.ErrInvalidFilterSpec
	// ErrCoefficientRange indicates a coefficient beyond the Q15 headroom bound.
	ErrCoefficientRange = fir.ErrCoefficientRange
	// ErrEmptyCoefficients indicates an empty coefficient sequence.
	ErrEmptyCoefficients = errors.New("quarter: empty coefficients")
	// ErrDecimationAlignment indicates an input block whose length is not a
	// multiple of the decimation factor.
	ErrDecimationAlignment = errors.New("quarter: block length not a multiple of 4")
	// ErrShortOutput indicates a destination slice too small for the output.
	ErrShortOutput = errors.New("quarter: output buffer too small")
)

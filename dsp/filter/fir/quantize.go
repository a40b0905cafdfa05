package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sdr/dsp/iq"
)

const (
	// CoeffShift is the number of fractional bits of a coefficient.
	CoeffShift = 15
	// CoeffOne is the Q15 representation of 1.0.
	CoeffOne = 1 << CoeffShift
	// MaxCoeff is the largest coefficient component magnitude accepted.
	MaxCoeff = CoeffOne
)

// Quantize converts real taps to Q15 coefficients with zero imaginary part.
// Each tap is scaled by 2^15 and rounded half to even.
func Quantize(taps []float64) ([]iq.Sample, error) {
	out := make([]iq.Sample, len(taps))

	for i, h := range taps {
		v := math.RoundToEven(h * CoeffOne)
		if math.IsNaN(v) || math.Abs(v) > MaxCoeff {
			return nil, fmt.Errorf("%w: tap %d = %v", ErrCoefficientRange, i, h)
		}

		out[i] = iq.Sample{Re: int32(v)}
	}

	return out, nil
}

// CheckRange verifies every component of coeffs is within ±MaxCoeff.
func CheckRange(coeffs []iq.Sample) error {
	for i, c := range coeffs {
		if c.Re > MaxCoeff || c.Re < -MaxCoeff || c.Im > MaxCoeff || c.Im < -MaxCoeff {
			return fmt.Errorf("%w: coefficient %d = %+v exceeds ±%d", ErrCoefficientRange, i, c, MaxCoeff)
		}
	}

	return nil
}

// DesignQuarterRate designs a lowpass, quantizes it and rotates it to Fs/4.
func DesignQuarterRate(numTaps int, cutoff float64, opts ...Option) ([]iq.Sample, error) {
	taps, err := Design(numTaps, cutoff, opts...)
	if err != nil {
		return nil, err
	}

	coeffs, err := Quantize(taps)
	if err != nil {
		return nil, err
	}

	return RotateToQuarterRate(coeffs, true), nil
}

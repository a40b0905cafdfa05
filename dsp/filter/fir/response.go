package fir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sdr/dsp/core"
	"github.com/cwbudde/algo-sdr/dsp/iq"
)

// Response computes the complex frequency response of Q15 coefficients at
// normalized frequency freq (cycles per sample), with unity mapped to 1.0:
//
//	H(f) = sum_k c[k] * e^{-j*2*pi*f*k} / 2^15
func Response(coeffs []iq.Sample, freq float64) complex128 {
	w := 2 * math.Pi * freq

	var h complex128
	for k, c := range coeffs {
		h += c.Complex128() * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h / CoeffOne
}

// MagnitudeDB returns the magnitude response in dB at freq.
func MagnitudeDB(coeffs []iq.Sample, freq float64) float64 {
	return core.LinearToDB(cmplx.Abs(Response(coeffs, freq)))
}

// CenterFrequency returns the power-weighted circular mean of the magnitude
// response over a grid of points frequencies, as a normalized frequency in
// [-0.5, 0.5]. For a response symmetric about f0 the result is f0.
func CenterFrequency(coeffs []iq.Sample, points int) float64 {
	if points <= 0 {
		points = 1024
	}

	var acc complex128
	for i := range points {
		f := -0.5 + float64(i+1)/float64(points)
		h := Response(coeffs, f)
		p := real(h)*real(h) + imag(h)*imag(h)
		acc += complex(p, 0) * cmplx.Exp(complex(0, 2*math.Pi*f))
	}

	return cmplx.Phase(acc) / (2 * math.Pi)
}

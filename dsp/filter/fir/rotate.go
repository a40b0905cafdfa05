package fir

import "github.com/cwbudde/algo-sdr/dsp/iq"

// RotateToQuarterRate returns a copy of coeffs. When isBaseband is true, tap n
// is multiplied by the quarter-rate rotation e^(j*pi*n/2), which cycles
// through {1, j, -1, -j} and moves a baseband lowpass up to +Fs/4. When false
// the coefficients are assumed to be centred already and are copied unchanged.
//
// With H(f) = sum_n h[n] e^(-j*2*pi*f*n), multiplying h[n] by e^(j*2*pi*f0*n)
// moves the response from 0 to f0; f0 = 1/4 gives the sequence above. The
// conjugate sequence {1, -j, -1, j} would centre the band at -Fs/4 instead.
func RotateToQuarterRate(coeffs []iq.Sample, isBaseband bool) []iq.Sample {
	out := make([]iq.Sample, len(coeffs))
	if !isBaseband {
		copy(out, coeffs)
		return out
	}

	for n, c := range coeffs {
		out[n] = rotateQuarter(c, n)
	}

	return out
}

// rotateQuarter returns c * j^n.
//
//	(a + jb) *  1 =  a + jb
//	(a + jb) *  j = -b + ja
//	(a + jb) * -1 = -a - jb
//	(a + jb) * -j =  b - ja
func rotateQuarter(c iq.Sample, n int) iq.Sample {
	switch n & 3 {
	case 1:
		return iq.Sample{Re: -c.Im, Im: c.Re}
	case 2:
		return iq.Sample{Re: -c.Re, Im: -c.Im}
	case 3:
		return iq.Sample{Re: c.Im, Im: -c.Re}
	default:
		return c
	}
}

package iq

// Sample is a complex sample with int32 components.
type Sample struct {
	Re int32
	Im int32
}

// Acc is a complex accumulator with int64 components.
type Acc struct {
	Re int64
	Im int64
}

// New returns the sample re + j*im.
func New(re, im int32) Sample {
	return Sample{Re: re, Im: im}
}

// IsZero reports whether both components are zero.
func (s Sample) IsZero() bool {
	return s.Re == 0 && s.Im == 0
}

// Conj returns the complex conjugate. An imaginary part of math.MinInt32
// saturates to math.MaxInt32.
func (s Sample) Conj() Sample {
	return Sample{Re: s.Re, Im: Saturate(-int64(s.Im))}
}

// Complex128 converts s to a complex128 without scaling.
func (s Sample) Complex128() complex128 {
	return complex(float64(s.Re), float64(s.Im))
}

// FromComplex128 rounds c to the nearest sample, half to even.
// Components outside the int32 range saturate.
func FromComplex128(c complex128) Sample {
	return Sample{Re: SaturateFloat(real(c)), Im: SaturateFloat(imag(c))}
}

// MulAcc adds s*c to acc using int64 products.
//
//	acc.Re += s.Re*c.Re - s.Im*c.Im
//	acc.Im += s.Re*c.Im + s.Im*c.Re
func (acc *Acc) MulAcc(s, c Sample) {
	sr, si := int64(s.Re), int64(s.Im)
	cr, ci := int64(c.Re), int64(c.Im)
	acc.Re += sr*cr - si*ci
	acc.Im += sr*ci + si*cr
}

// Zero reports whether the accumulator holds exactly zero.
func (acc Acc) Zero() bool {
	return acc.Re == 0 && acc.Im == 0
}

// ToComplex128 converts a slice of samples to complex128.
func ToComplex128(in []Sample) []complex128 {
	out := make([]complex128, len(in))
	for i, s := range in {
		out[i] = s.Complex128()
	}
	return out
}

// FromComplex128Slice rounds each value with [FromComplex128].
func FromComplex128Slice(in []complex128) []Sample {
	out := make([]Sample, len(in))
	for i, c := range in {
		out[i] = FromComplex128(c)
	}
	return out
}

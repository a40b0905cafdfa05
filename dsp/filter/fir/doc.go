// Package fir designs the fixed-point coefficient sequences used by the
// quarter-rate decimation filter.
//
// Design is a pure pipeline:
//
//	Design              real windowed-sinc lowpass, unity DC gain
//	Quantize            real taps -> Q15 complex coefficients
//	RotateToQuarterRate multiply tap n by j^n, moving the passband to +Fs/4
//
// [DesignQuarterRate] runs all three. The rotation is exact: it only swaps and
// negates integer components while cycling through {1, j, -1, -j}, so no
// trigonometry is evaluated per tap and no rounding is introduced.
//
// Coefficients are Q15: a coefficient component c represents c / 2^15.
package fir

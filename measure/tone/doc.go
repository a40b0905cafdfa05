// Package tone estimates the frequency and level of the dominant tone in a
// block of complex baseband samples.
//
// Frequencies are signed and normalized to the block's sample rate, so a tone
// below the centre reports a negative value. The estimator windows the block,
// zero-pads it, runs a complex FFT and refines the peak bin by parabolic
// interpolation of the log power spectrum.
package tone

// Package quarter implements a streaming, fixed-point complex FIR filter that
// bandpass-filters an I/Q stream around one quarter of its sample rate and
// decimates it by four in the same step.
//
// Because the passband is centred on +Fs/4, keeping every fourth output
// aliases that band straight to 0 Hz: the decimated stream is the wanted
// signal at baseband without a separate mixer. The centre frequency and the
// decimation factor are coupled; changing one without the other breaks the
// shift.
//
// A [Filter] carries the last N-1 input samples between [Filter.Process]
// calls, so a stream may be fed in blocks of any length that is a multiple of
// four and the output is bit-identical to filtering it in one call.
//
// # Fixed point
//
// Samples are int32 and coefficients Q15. Each output is
//
//	acc = sum_k x[n-k] * h[k]      (int64 complex multiply-accumulate)
//	y   = round_half_even(acc / 2^15), saturated to int32
//
// Half-to-even rounding is symmetric around zero, so an all-zero input always
// produces an all-zero output and rounding adds no DC bias.
//
// A Filter is not safe for concurrent use. Use one Filter per stream; [Filter.Clone]
// produces an independent copy including its history.
package quarter

// Package iq provides fixed-point complex samples and the deinterleaving of
// raw 8-bit I/Q streams.
//
// Raw samples from RTL-SDR class receivers arrive as interleaved signed bytes
// (I0, Q0, I1, Q1, ...). [Deinterleave] widens each component to int32 and
// pairs them into a [Sample]. Convolution sums are carried in [Acc], whose
// components are int64, so a product of a sample and a Q15 coefficient plus
// the sum over a filter's taps never overflows.
//
// Widening is always explicit: int8 -> int32 in this package, int32 -> int64
// in [Sample.MulAcc], int64 -> int32 in the filter that owns the accumulator.
package iq

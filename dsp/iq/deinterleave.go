package iq

// Deinterleave widens interleaved signed 8-bit I/Q pairs into samples.
// A trailing unpaired byte is ignored.
func Deinterleave(raw []int8) []Sample {
	out := make([]Sample, len(raw)/2)
	DeinterleaveTo(out, raw)
	return out
}

// DeinterleaveTo writes min(len(dst), len(raw)/2) samples into dst and
// returns the number written.
func DeinterleaveTo(dst []Sample, raw []int8) int {
	n := min(len(dst), len(raw)/2)
	for i := range n {
		dst[i] = Sample{
			Re: int32(raw[2*i]),
			Im: int32(raw[2*i+1]),
		}
	}
	return n
}

// DeinterleaveBytes is [Deinterleave] for byte buffers. Each byte is read as
// a two's complement int8, which is how 8-bit receivers deliver signed I/Q.
func DeinterleaveBytes(raw []byte) []Sample {
	out := make([]Sample, len(raw)/2)
	DeinterleaveBytesTo(out, raw)
	return out
}

// DeinterleaveBytesTo is [DeinterleaveTo] for byte buffers.
func DeinterleaveBytesTo(dst []Sample, raw []byte) int {
	n := min(len(dst), len(raw)/2)
	for i := range n {
		dst[i] = Sample{
			Re: int32(int8(raw[2*i])),
			Im: int32(int8(raw[2*i+1])),
		}
	}
	return n
}

// Interleave narrows samples back to interleaved int8 pairs, saturating
// components outside [-128, 127].
func Interleave(in []Sample) []int8 {
	out := make([]int8, 2*len(in))
	for i, s := range in {
		out[2*i] = saturate8(s.Re)
		out[2*i+1] = saturate8(s.Im)
	}
	return out
}

func saturate8(v int32) int8 {
	switch {
	case v > 127:
		return 127
	case v < -128:
		return -128
	default:
		return int8(v)
	}
}

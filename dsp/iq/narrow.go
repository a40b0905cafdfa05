package iq

import "math"

// ShiftRoundEven returns acc / 2^shift rounded half to even.
//
// This is the single narrowing rule used for fixed-point results in this
// module. It is symmetric around zero, so it adds no DC bias, and a zero
// accumulator always narrows to zero.
func ShiftRoundEven(acc int64, shift uint) int64 {
	if shift == 0 {
		return acc
	}

	q := acc >> shift // floor
	r := acc - q<<shift
	half := int64(1) << (shift - 1)

	if r > half || (r == half && q&1 != 0) {
		q++
	}

	return q
}

// Saturate clamps v to the int32 range.
func Saturate(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}

// SaturateFloat rounds v half to even and clamps it to the int32 range.
// NaN maps to zero.
func SaturateFloat(v float64) int32 {
	if math.IsNaN(v) {
		return 0
	}

	r := math.RoundToEven(v)

	switch {
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(r)
	}
}

// Narrow rescales acc by 2^-shift with [ShiftRoundEven] and saturates each
// component to int32.
func (acc Acc) Narrow(shift uint) Sample {
	return Sample{
		Re: Saturate(ShiftRoundEven(acc.Re, shift)),
		Im: Saturate(ShiftRoundEven(acc.Im, shift)),
	}
}

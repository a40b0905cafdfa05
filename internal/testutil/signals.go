package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sdr/dsp/iq"
)

// DeterministicTone generates a complex exponential at normalized frequency
// freq (cycles per sample), rounded to integer samples.
func DeterministicTone(freq, amplitude float64, length int) []iq.Sample {
	out := make([]iq.Sample, length)
	step := 2 * math.Pi * freq
	for i := range out {
		s, c := math.Sincos(step * float64(i))
		out[i] = iq.FromComplex128(complex(amplitude*c, amplitude*s))
	}
	return out
}

// DeterministicNoise generates 8-bit-range complex noise with a fixed seed.
func DeterministicNoise(seed int64, length int) []iq.Sample {
	out := make([]iq.Sample, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = iq.New(int32(rng.Intn(256)-128), int32(rng.Intn(256)-128))
	}
	return out
}

// Impulse generates a real impulse of the given amplitude at pos.
func Impulse(length, pos int, amplitude int32) []iq.Sample {
	out := make([]iq.Sample, length)
	if pos >= 0 && pos < length {
		out[pos] = iq.New(amplitude, 0)
	}
	return out
}

// Zeros returns n zero samples.
func Zeros(n int) []iq.Sample {
	return make([]iq.Sample, n)
}

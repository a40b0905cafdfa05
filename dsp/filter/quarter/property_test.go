package quarter

import (
	"testing"

	"github.com/cwbudde/algo-sdr/dsp/iq"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func genSamples(n int) *rapid.Generator[[]iq.Sample] {
	return rapid.Custom(func(t *rapid.T) []iq.Sample {
		re := rapid.SliceOfN(rapid.Int8(), n, n).Draw(t, "re")
		im := rapid.SliceOfN(rapid.Int8(), n, n).Draw(t, "im")
		out := make([]iq.Sample, n)
		for i := range out {
			out[i] = iq.New(int32(re[i]), int32(im[i]))
		}
		return out
	})
}

func TestPropertyBlockBoundaryTransparency(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numTaps := rapid.IntRange(1, 80).Draw(rt, "numTaps")
		cutoff := rapid.Float64Range(0.01, 0.49).Draw(rt, "cutoff")
		quads := rapid.IntRange(0, 128).Draw(rt, "quads")
		in := genSamples(4*quads).Draw(rt, "in")

		whole, err := New(numTaps, cutoff)
		require.NoError(rt, err)
		want, err := whole.Process(in)
		require.NoError(rt, err)

		split, err := New(numTaps, cutoff)
		require.NoError(rt, err)

		got := []iq.Sample{}
		for pos := 0; pos < len(in); {
			n := 4 * rapid.IntRange(1, (len(in)-pos)/4).Draw(rt, "block")
			out, err := split.Process(in[pos : pos+n])
			require.NoError(rt, err)
			require.Len(rt, out, n/4)
			got = append(got, out...)
			pos += n
		}

		require.Equal(rt, want, got)
		require.Equal(rt, whole.History(), split.History())
	})
}

func TestPropertyMatchesReference(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numTaps := rapid.IntRange(1, 40).Draw(rt, "numTaps")
		coeffs := make([]iq.Sample, numTaps)
		for i := range coeffs {
			coeffs[i] = iq.New(
				rapid.Int32Range(-32768, 32768).Draw(rt, "re"),
				rapid.Int32Range(-32768, 32768).Draw(rt, "im"),
			)
		}
		baseband := rapid.Bool().Draw(rt, "baseband")
		in := genSamples(4*rapid.IntRange(0, 64).Draw(rt, "quads")).Draw(rt, "in")

		f, err := NewFromCoefficients(coeffs, baseband)
		require.NoError(rt, err)

		got, err := f.Process(in)
		require.NoError(rt, err)
		require.Equal(rt, reference(f.Coefficients(), in), got)
	})
}

func TestPropertyZeroInZeroOut(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numTaps := rapid.IntRange(1, 200).Draw(rt, "numTaps")
		cutoff := rapid.Float64Range(0.001, 0.499).Draw(rt, "cutoff")
		n := 4 * rapid.IntRange(0, 256).Draw(rt, "quads")

		f, err := New(numTaps, cutoff)
		require.NoError(rt, err)

		out, err := f.Process(make([]iq.Sample, n))
		require.NoError(rt, err)
		for i, s := range out {
			require.Truef(rt, s.IsZero(), "out[%d] = %+v", i, s)
		}
	})
}

func TestPropertyMisalignedRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 1000).Filter(func(v int) bool { return v%4 != 0 }).Draw(rt, "n")

		f, err := New(31, 0.1)
		require.NoError(rt, err)

		out, err := f.Process(make([]iq.Sample, n))
		require.ErrorIs(rt, err, ErrDecimationAlignment)
		require.Nil(rt, out)
		require.Equal(rt, StateReady, f.State())
	})
}

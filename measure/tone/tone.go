package tone

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sdr/dsp/core"
	"github.com/cwbudde/algo-sdr/dsp/iq"
	"github.com/cwbudde/algo-sdr/dsp/window"
)

const defaultZeroPad = 4

var (
	// ErrEmptyInput is returned for a zero-length block.
	ErrEmptyInput = errors.New("tone: empty input")
	// ErrInvalidFFTSize is returned when the FFT size is smaller than the block.
	ErrInvalidFFTSize = errors.New("tone: invalid fft size")
)

// Config holds estimator parameters. Zero values pick defaults: a Hann
// window, an FFT four times the block length rounded up to a power of
// two, and normalized frequencies (sample rate 1).
type Config struct {
	SampleRate float64
	FFTSize    int
	// Window is the taper. The zero value selects Hann; set Rectangular
	// to measure without a window.
	Window      window.Type
	Rectangular bool
}

// Result describes the dominant tone.
type Result struct {
	// Frequency is in cycles per sample, in [-0.5, 0.5).
	Frequency float64
	// FrequencyHz is Frequency scaled by the configured sample rate.
	FrequencyHz float64
	// Bin is the FFT bin of the raw peak.
	Bin int
	// LevelDB is the window-corrected peak level relative to amplitude 1.
	LevelDB float64
	// RMS is the time-domain RMS of the unwindowed block.
	RMS float64
}

type scratch struct {
	in, out []complex128
	re, im  []float64
	power   []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{} },
}

// Estimate finds the strongest spectral component of x.
func Estimate(x []complex128, cfg Config) (Result, error) {
	if len(x) == 0 {
		return Result{}, ErrEmptyInput
	}

	cfg = normalizeConfig(cfg, len(x))
	if cfg.FFTSize < len(x) {
		return Result{}, fmt.Errorf("%w: %d < block length %d", ErrInvalidFFTSize, cfg.FFTSize, len(x))
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidFFTSize, err)
	}

	buf := scratchPool.Get().(*scratch)
	defer scratchPool.Put(buf)

	n := cfg.FFTSize
	buf.in = core.EnsureLen(buf.in, n)
	buf.out = core.EnsureLen(buf.out, n)
	buf.re = core.EnsureLen(buf.re, n)
	buf.im = core.EnsureLen(buf.im, n)
	buf.power = core.EnsureLen(buf.power, n)

	coeffs := window.Generate(cfg.Window, len(x))
	gain := 0.0
	for _, w := range coeffs {
		gain += w
	}

	core.Zero(buf.re)
	core.Zero(buf.im)
	for i, v := range x {
		buf.re[i] = real(v)
		buf.im[i] = imag(v)
	}
	if err := window.ApplyCoefficientsInPlace(buf.re[:len(x)], coeffs); err != nil {
		return Result{}, err
	}
	if err := window.ApplyCoefficientsInPlace(buf.im[:len(x)], coeffs); err != nil {
		return Result{}, err
	}
	for i := range buf.in {
		buf.in[i] = complex(buf.re[i], buf.im[i])
	}

	if err := plan.Forward(buf.out, buf.in); err != nil {
		return Result{}, fmt.Errorf("tone: fft: %w", err)
	}

	for i, c := range buf.out {
		buf.re[i] = real(c)
		buf.im[i] = imag(c)
	}
	vecmath.Power(buf.power, buf.re, buf.im)

	peak := 0
	for i, p := range buf.power {
		if p > buf.power[peak] {
			peak = i
		}
	}

	delta := interpolate(buf.power, peak)
	freq := core.WrapFrequency((float64(peak) + delta) / float64(n))

	res := Result{
		Frequency:   freq,
		FrequencyHz: freq * cfg.SampleRate,
		Bin:         peak,
		RMS:         rms(x),
	}
	if gain > 0 {
		res.LevelDB = core.LinearPowerToDB(buf.power[peak] / (gain * gain))
	} else {
		res.LevelDB = math.Inf(-1)
	}
	return res, nil
}

// EstimateSamples is Estimate for fixed-point samples.
func EstimateSamples(x []iq.Sample, cfg Config) (Result, error) {
	return Estimate(iq.ToComplex128(x), cfg)
}

// LevelAt returns the window-corrected level in dB of x at the normalized
// frequency freq, evaluated as a single DFT term.
func LevelAt(x []complex128, freq float64, wt window.Type) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	coeffs := window.Generate(wt, len(x))
	var (
		acc  complex128
		gain float64
	)
	for i, v := range x {
		_, frac := math.Modf(freq * float64(i))
		acc += v * complex(coeffs[i], 0) * cmplx.Rect(1, -2*math.Pi*frac)
		gain += coeffs[i]
	}
	if gain == 0 {
		return math.Inf(-1), nil
	}

	a := cmplx.Abs(acc) / gain
	return core.LinearPowerToDB(a * a), nil
}

// ImageRejectionDB returns how far the component at -freq sits below the one
// at +freq. An ideal complex signal at +freq has no image.
func ImageRejectionDB(x []complex128, freq float64, wt window.Type) (float64, error) {
	pos, err := LevelAt(x, freq, wt)
	if err != nil {
		return 0, err
	}
	neg, err := LevelAt(x, -freq, wt)
	if err != nil {
		return 0, err
	}
	return pos - neg, nil
}

func normalizeConfig(cfg Config, length int) Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 1
	}
	if cfg.FFTSize <= 0 {
		cfg.FFTSize = nextPow2(defaultZeroPad * length)
	}
	switch {
	case cfg.Rectangular:
		cfg.Window = window.TypeRectangular
	case cfg.Window == window.TypeRectangular:
		cfg.Window = window.TypeHann
	}
	return cfg
}

// interpolate fits a parabola through the log power of the peak and its
// circular neighbours and returns the vertex offset in bins.
func interpolate(power []float64, k int) float64 {
	n := len(power)
	if n < 3 {
		return 0
	}
	const floor = 1e-300
	a := math.Log(max(power[(k-1+n)%n], floor))
	b := math.Log(max(power[k], floor))
	c := math.Log(max(power[(k+1)%n], floor))

	den := a - 2*b + c
	if den == 0 {
		return 0
	}
	d := 0.5 * (a - c) / den
	return max(-0.5, min(0.5, d))
}

func rms(x []complex128) float64 {
	sum := 0.0
	for _, v := range x {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum / float64(len(x)))
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

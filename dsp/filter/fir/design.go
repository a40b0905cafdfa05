package fir

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sdr/dsp/core"
	"github.com/cwbudde/algo-sdr/dsp/window"
)

const zeroSumEps = 1e-12

const (
	// MaxTaps bounds the tap count so a full convolution sum of int32 samples
	// and Q15 coefficients stays inside an int64 accumulator.
	MaxTaps = 1 << 15

	// DefaultWindow is the taper used by [Design] unless overridden.
	DefaultWindow = window.TypeHamming
)

type config struct {
	window     window.Type
	kaiserBeta float64
}

// Option configures lowpass design.
type Option func(*config)

// WithWindow selects the window used to taper the ideal sinc response.
// Windows that vanish at both ends (Hann, Blackman) would leave a two-tap
// design empty; for those lengths the window is evaluated on two extra
// points and its zero endpoints are dropped.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

// WithKaiserBeta sets the Kaiser beta. It only applies with
// WithWindow(window.TypeKaiser).
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta >= 0 {
			cfg.kaiserBeta = beta
		}
	}
}

func defaultConfig() config {
	return config{
		window:     DefaultWindow,
		kaiserBeta: window.DefaultKaiserBeta,
	}
}

// ValidateSpec reports whether numTaps and cutoff describe a designable
// lowpass. cutoff is in cycles per sample and must lie in (0, 0.5).
func ValidateSpec(numTaps int, cutoff float64) error {
	if numTaps <= 0 || numTaps > MaxTaps {
		return fmt.Errorf("%w: num taps must be in [1, %d], got %d", ErrInvalidFilterSpec, MaxTaps, numTaps)
	}

	if !(cutoff > 0 && cutoff < 0.5) {
		return fmt.Errorf("%w: cutoff must be in (0, 0.5), got %v", ErrInvalidFilterSpec, cutoff)
	}

	return nil
}

// Design returns a real linear-phase lowpass FIR of numTaps taps with
// normalized cutoff frequency cutoff:
//
//	h[n] = 2*fc * sinc(2*fc*(n - (N-1)/2)) * w[n]
//
// scaled so the taps sum to one. The result is symmetric and deterministic.
func Design(numTaps int, cutoff float64, opts ...Option) ([]float64, error) {
	if err := ValidateSpec(numTaps, cutoff); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var winOpts []window.Option
	if cfg.window == window.TypeKaiser {
		winOpts = append(winOpts, window.WithAlpha(cfg.kaiserBeta))
	}

	taps := taper(window.Generate(cfg.window, numTaps, winOpts...), cutoff)
	sum := floats.Sum(taps)

	if core.NearlyEqual(sum, 0, zeroSumEps) {
		padded := window.Generate(cfg.window, numTaps+2, winOpts...)
		taps = taper(padded[1:numTaps+1], cutoff)
		sum = floats.Sum(taps)
	}

	if core.NearlyEqual(sum, 0, zeroSumEps) {
		return nil, fmt.Errorf("%w: designed zero-sum filter", ErrInvalidFilterSpec)
	}

	floats.Scale(1/sum, taps)

	return taps, nil
}

// taper multiplies the window w in place by the ideal lowpass response.
// Symmetric windows give exactly symmetric taps.
func taper(w []float64, cutoff float64) []float64 {
	center := 0.5 * float64(len(w)-1)
	for n := range w {
		t := float64(n) - center
		w[n] *= 2 * cutoff * sinc(2*cutoff*t)
	}

	return w
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}

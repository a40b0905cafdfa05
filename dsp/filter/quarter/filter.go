package quarter

import (
	"fmt"

	"github.com/cwbudde/algo-sdr/dsp/core"
	"github.com/cwbudde/algo-sdr/dsp/filter/fir"
	"github.com/cwbudde/algo-sdr/dsp/iq"
)

// Decimation is the fixed decimation factor.
const Decimation = 4

// State reports whether a filter has consumed data since construction or the
// last Reset.
type State int

const (
	// StateReady means the history is all zero.
	StateReady State = iota
	// StateStreaming means at least one block has been processed.
	StateStreaming
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateStreaming:
		return "streaming"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Filter is a quarter-rate bandpass-and-decimate FIR filter.
type Filter struct {
	coeffs []iq.Sample // Q15, as designed
	rev    []iq.Sample // coeffs reversed, for a forward inner loop

	history []iq.Sample // last N-1 inputs
	work    []iq.Sample // history ++ block, reused between calls

	state State
}

// New designs a lowpass of numTaps taps with normalized cutoff (cycles per
// sample, 0 < cutoff < 0.5), quantizes it and rotates it to +Fs/4.
func New(numTaps int, cutoff float64, opts ...fir.Option) (*Filter, error) {
	coeffs, err := fir.DesignQuarterRate(numTaps, cutoff, opts...)
	if err != nil {
		return nil, err
	}

	return newFilter(coeffs), nil
}

// NewFromCoefficients wraps caller-supplied Q15 coefficients. When isBaseband
// is true they are rotated to +Fs/4 first. The coefficients are copied.
func NewFromCoefficients(coeffs []iq.Sample, isBaseband bool) (*Filter, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoefficients
	}

	if len(coeffs) > fir.MaxTaps {
		return nil, fmt.Errorf("%w: %d taps exceeds %d", ErrInvalidFilterSpec, len(coeffs), fir.MaxTaps)
	}

	if err := fir.CheckRange(coeffs); err != nil {
		return nil, err
	}

	return newFilter(fir.RotateToQuarterRate(coeffs, isBaseband)), nil
}

func newFilter(coeffs []iq.Sample) *Filter {
	n := len(coeffs)
	rev := make([]iq.Sample, n)
	for k, c := range coeffs {
		rev[n-1-k] = c
	}

	return &Filter{
		coeffs:  coeffs,
		rev:     rev,
		history: make([]iq.Sample, n-1),
	}
}

// NumTaps returns the number of coefficients.
func (f *Filter) NumTaps() int {
	return len(f.coeffs)
}

// Decimation returns the decimation factor, always 4.
func (f *Filter) Decimation() int {
	return Decimation
}

// State returns the streaming state.
func (f *Filter) State() State {
	return f.state
}

// Coefficients returns a copy of the rotated Q15 coefficients.
func (f *Filter) Coefficients() []iq.Sample {
	c := make([]iq.Sample, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// History returns a copy of the carried input history, oldest first.
func (f *Filter) History() []iq.Sample {
	h := make([]iq.Sample, len(f.history))
	copy(h, f.history)
	return h
}

// Reset clears the history to zero.
func (f *Filter) Reset() {
	core.Zero(f.history)
	f.state = StateReady
}

// Clone returns an independent filter with its own copies of the
// coefficients and the history. The clone and f can then be used from
// different goroutines.
func (f *Filter) Clone() *Filter {
	c := newFilter(f.Coefficients())
	copy(c.history, f.history)
	c.state = f.state
	return c
}

// OutputLen returns the number of samples Process produces for n inputs.
func OutputLen(n int) int {
	return n / Decimation
}

// Process filters in and returns len(in)/4 decimated baseband samples.
//
// If len(in) is not a multiple of 4 it returns ErrDecimationAlignment, no
// output, and leaves the history untouched so the call can be retried with a
// corrected block. An empty block is valid and yields an empty result.
func (f *Filter) Process(in []iq.Sample) ([]iq.Sample, error) {
	if err := checkAlignment(len(in)); err != nil {
		return nil, err
	}

	out := make([]iq.Sample, OutputLen(len(in)))
	f.process(out, in)

	return out, nil
}

// ProcessTo is Process writing into dst. It returns the number of samples
// written. dst must hold at least len(in)/4 samples.
func (f *Filter) ProcessTo(dst, in []iq.Sample) (int, error) {
	if err := checkAlignment(len(in)); err != nil {
		return 0, err
	}

	n := OutputLen(len(in))
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrShortOutput, n, len(dst))
	}

	f.process(dst[:n], in)

	return n, nil
}

func checkAlignment(n int) error {
	if n%Decimation != 0 {
		return fmt.Errorf("%w: got %d samples", ErrDecimationAlignment, n)
	}
	return nil
}

// process computes only the retained outputs. Over the extended sequence
// e = history ++ in, output m is
//
//	y[m] = sum_k h[k] * e[N-1 + 4m - k] = sum_i rev[i] * e[4m + i]
//
// where rev is h reversed. The three discarded phases are never computed.
func (f *Filter) process(dst, in []iq.Sample) {
	if len(in) == 0 {
		return
	}

	hist := len(f.history)

	f.work = core.EnsureLen(f.work, hist+len(in))
	copy(f.work, f.history)
	copy(f.work[hist:], in)

	rev := f.rev
	for m := range dst {
		window := f.work[Decimation*m : Decimation*m+len(rev)]

		var acc iq.Acc
		for i, c := range rev {
			acc.MulAcc(window[i], c)
		}

		dst[m] = acc.Narrow(fir.CoeffShift)
	}

	copy(f.history, f.work[len(f.work)-hist:])
	f.state = StateStreaming
}

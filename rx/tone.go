package rx

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-sdr/dsp/core"
	"github.com/cwbudde/algo-sdr/dsp/signal"
)

// ToneSource is a synthetic Source emitting one 8-bit complex tone, offset
// from the tuner centre.
type ToneSource struct {
	osc        *signal.Oscillator
	buf        []complex128
	shortEvery int
	limit      int
	produced   int
	reads      int
}

// ToneOption configures a ToneSource.
type ToneOption func(*ToneSource)

// WithShortReads makes every n-th read deliver only half of the request.
func WithShortReads(n int) ToneOption {
	return func(s *ToneSource) {
		if n > 0 {
			s.shortEvery = n
		}
	}
}

// WithLimit ends the stream with io.EOF after n complex samples.
func WithLimit(n int) ToneOption {
	return func(s *ToneSource) {
		if n > 0 {
			s.limit = n
		}
	}
}

// NewToneSource creates a tone at offsetHz from the centre of a stream
// sampled at sampleRate. Amplitude is in 8-bit units; values above 127 clip.
func NewToneSource(sampleRate, offsetHz, amplitude float64, opts ...ToneOption) (*ToneSource, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("rx: tone sample rate must be > 0: %f", sampleRate)
	}
	g := signal.NewGenerator(core.WithSampleRate(sampleRate))
	osc, err := g.Oscillator(offsetHz, amplitude)
	if err != nil {
		return nil, fmt.Errorf("rx: %w", err)
	}

	s := &ToneSource{osc: osc}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Frequency returns the tone frequency in cycles per sample.
func (s *ToneSource) Frequency() float64 {
	return s.osc.Frequency()
}

// Read fills buf with whole I/Q pairs.
func (s *ToneSource) Read(buf []byte) (int, error) {
	n := len(buf) / 2
	if s.limit > 0 {
		if s.produced >= s.limit {
			return 0, io.EOF
		}
		n = min(n, s.limit-s.produced)
	}

	s.reads++
	if s.shortEvery > 0 && s.reads%s.shortEvery == 0 {
		n /= 2
	}

	s.buf = core.EnsureLen(s.buf, n)
	s.osc.Read(s.buf)
	signal.QuantizeIQ8(buf, s.buf)
	s.produced += n
	return 2 * n, nil
}

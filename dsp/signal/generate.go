package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sdr/dsp/core"
	"github.com/cwbudde/algo-sdr/dsp/iq"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sine generates a real sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// ComplexTone generates amplitude·e^{j2πf n/Fs}. Negative frequencies are
// allowed and land below the centre.
func (g *Generator) ComplexTone(freqHz, amplitude float64, samples int) ([]complex128, error) {
	osc, err := g.Oscillator(freqHz, amplitude)
	if err != nil {
		return nil, err
	}
	if samples <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", samples)
	}
	out := make([]complex128, samples)
	osc.Read(out)
	return out, nil
}

// ComplexNoise generates deterministic noise with each component uniform in
// [-amplitude, amplitude].
func (g *Generator) ComplexNoise(amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]complex128, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out, nil
}

// Oscillator returns a phase-continuous complex tone at the generator rate.
func (g *Generator) Oscillator(freqHz, amplitude float64) (*Oscillator, error) {
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("tone sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if amplitude < 0 || math.IsNaN(amplitude) {
		return nil, fmt.Errorf("tone amplitude must be >= 0: %f", amplitude)
	}
	return &Oscillator{
		freq:      core.WrapFrequency(freqHz / g.cfg.SampleRate),
		amplitude: amplitude,
	}, nil
}

// Oscillator produces consecutive blocks of one complex tone. The phase is
// derived from the absolute sample index so long runs do not drift.
type Oscillator struct {
	freq      float64
	amplitude float64
	n         uint64
}

// Frequency returns the normalized frequency in cycles per sample.
func (o *Oscillator) Frequency() float64 {
	return o.freq
}

// Read fills dst with the next len(dst) samples.
func (o *Oscillator) Read(dst []complex128) {
	for i := range dst {
		// Reduce the phase in cycles before scaling to radians.
		_, frac := math.Modf(o.freq * float64(o.n))
		s, c := math.Sincos(2 * math.Pi * frac)
		dst[i] = complex(o.amplitude*c, o.amplitude*s)
		o.n++
	}
}

// Reset rewinds the oscillator to phase zero.
func (o *Oscillator) Reset() {
	o.n = 0
}

// QuantizeIQ8 writes x as interleaved signed 8-bit I/Q bytes, the layout
// RTL-SDR style dongles deliver. Values are rounded and clipped to
// [-128, 127]. It returns the number of complex samples written.
func QuantizeIQ8(dst []byte, x []complex128) int {
	n := min(len(dst)/2, len(x))
	for i := range n {
		s := iq.FromComplex128(x[i])
		dst[2*i] = byte(clip8(s.Re))
		dst[2*i+1] = byte(clip8(s.Im))
	}
	return n
}

// ToSamples converts to fixed-point samples with round-half-to-even.
func ToSamples(x []complex128) []iq.Sample {
	return iq.FromComplex128Slice(x)
}

func clip8(v int32) int8 {
	switch {
	case v > math.MaxInt8:
		return math.MaxInt8
	case v < math.MinInt8:
		return math.MinInt8
	default:
		return int8(v)
	}
}

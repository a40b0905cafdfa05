package rx

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/cwbudde/algo-sdr/dsp/core"
	"github.com/cwbudde/algo-sdr/dsp/filter/quarter"
	"github.com/cwbudde/algo-sdr/dsp/iq"
)

// Default channel filter.
const (
	DefaultTaps   = 63
	DefaultCutoff = 0.1
)

var (
	// ErrSource wraps read failures from the underlying source.
	ErrSource = errors.New("rx: source")
	// ErrInvalidBlockSize is returned for a non-positive block size.
	ErrInvalidBlockSize = errors.New("rx: invalid block size")
)

// Source delivers interleaved signed 8-bit I/Q bytes. Read may return fewer
// bytes than requested.
type Source interface {
	Read(buf []byte) (int, error)
}

// Stats counts what a Receiver has seen.
type Stats struct {
	Reads      int
	Underflows int
	InSamples  int
	OutSamples int
}

// Option configures a Receiver.
type Option func(*Receiver)

// WithLogger sets the logger used for underflow warnings.
func WithLogger(l *log.Logger) Option {
	return func(r *Receiver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithFilter replaces the default 63-tap channel filter.
func WithFilter(f *quarter.Filter) Option {
	return func(r *Receiver) {
		if f != nil {
			r.filter = f
		}
	}
}

// Receiver turns raw reads into decimated baseband blocks. It is not safe
// for concurrent use.
type Receiver struct {
	src    Source
	filter *quarter.Filter
	log    *log.Logger

	raw     []byte
	odd     byte
	hasOdd  bool
	samples []iq.Sample
	carry   []iq.Sample
	out     []iq.Sample
	stats   Stats
}

// NewReceiver creates a receiver reading blockSize complex samples per call.
func NewReceiver(src Source, blockSize int, opts ...Option) (*Receiver, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	r := &Receiver{
		src:   src,
		raw:   make([]byte, 2*blockSize),
		carry: make([]iq.Sample, 0, quarter.Decimation-1),
		out:   make([]iq.Sample, quarter.OutputLen(blockSize+quarter.Decimation-1)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	if r.filter == nil {
		f, err := quarter.New(DefaultTaps, DefaultCutoff)
		if err != nil {
			return nil, err
		}
		r.filter = f
	}
	if r.log == nil {
		r.log = log.Default().WithPrefix("rx")
	}
	return r, nil
}

// BlockSize returns the number of complex samples requested per read.
func (r *Receiver) BlockSize() int {
	return len(r.raw) / 2
}

// Filter returns the channel filter.
func (r *Receiver) Filter() *quarter.Filter {
	return r.filter
}

// Stats returns the counters accumulated since creation or Reset.
func (r *Receiver) Stats() Stats {
	return r.stats
}

// Carry returns the number of samples held back for the next call.
func (r *Receiver) Carry() int {
	return len(r.carry)
}

// Next reads one raw block and returns its decimated output. The returned
// slice is reused by the following call. A source error discards the block
// and is returned wrapped in ErrSource; the receiver state is unchanged.
func (r *Receiver) Next(ctx context.Context) ([]iq.Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := 0
	if r.hasOdd {
		r.raw[0] = r.odd
		start = 1
	}

	want := len(r.raw) - start
	n, err := r.src.Read(r.raw[start:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	r.stats.Reads++
	if n < want {
		r.stats.Underflows++
		r.log.Warn("underflow", "read", n, "want", want)
	}

	total := start + n
	r.hasOdd = total%2 == 1
	if r.hasOdd {
		r.odd = r.raw[total-1]
	}

	pairs := total / 2
	held := len(r.carry)
	r.samples = core.EnsureLen(r.samples, held+pairs)
	copy(r.samples, r.carry)
	iq.DeinterleaveBytesTo(r.samples[held:], r.raw[:2*pairs])
	r.stats.InSamples += pairs

	aligned := len(r.samples) - len(r.samples)%quarter.Decimation
	m, err := r.filter.ProcessTo(r.out, r.samples[:aligned])
	if err != nil {
		return nil, err
	}
	r.carry = append(r.carry[:0], r.samples[aligned:]...)
	r.stats.OutSamples += m

	return r.out[:m], nil
}

// Run calls fn with every block until the context is cancelled, the source
// reports io.EOF, or fn or the source fails. io.EOF ends the run without an
// error.
func (r *Receiver) Run(ctx context.Context, fn func([]iq.Sample) error) error {
	for {
		out, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(out) == 0 {
			continue
		}
		if err := fn(out); err != nil {
			return err
		}
	}
}

// Reset drops carried samples, clears the filter history and zeroes the
// counters.
func (r *Receiver) Reset() {
	r.carry = r.carry[:0]
	r.hasOdd = false
	r.filter.Reset()
	r.stats = Stats{}
}

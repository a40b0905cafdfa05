package signal

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-sdr/dsp/core"
	"github.com/cwbudde/algo-sdr/dsp/iq"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestDefaultRate(t *testing.T) {
	g := NewGenerator()
	if g.Config().SampleRate != core.DefaultSampleRate {
		t.Fatalf("SampleRate = %v, want %v", g.Config().SampleRate, core.DefaultSampleRate)
	}
	if g.Seed() != 1 {
		t.Fatalf("Seed() = %d, want 1", g.Seed())
	}
}

func TestComplexToneMagnitudeAndPhase(t *testing.T) {
	const fs = 1000.0
	g := NewGenerator(core.WithSampleRate(fs))
	x, err := g.ComplexTone(-100, 2, 50)
	if err != nil {
		t.Fatalf("ComplexTone() error = %v", err)
	}
	for i, v := range x {
		if !core.NearlyEqual(cmplx.Abs(v), 2, 1e-12) {
			t.Fatalf("|x[%d]| = %v, want 2", i, cmplx.Abs(v))
		}
		want := cmplx.Rect(2, -2*math.Pi*0.1*float64(i))
		if cmplx.Abs(v-want) > 1e-9 {
			t.Fatalf("x[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestOscillatorContinuity(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1_058_400))
	whole, err := g.ComplexTone(275_000, 50, 300)
	if err != nil {
		t.Fatalf("ComplexTone() error = %v", err)
	}

	osc, err := g.Oscillator(275_000, 50)
	if err != nil {
		t.Fatalf("Oscillator() error = %v", err)
	}
	parts := make([]complex128, 0, 300)
	for _, n := range []int{7, 128, 1, 164} {
		buf := make([]complex128, n)
		osc.Read(buf)
		parts = append(parts, buf...)
	}
	for i := range whole {
		if whole[i] != parts[i] {
			t.Fatalf("sample %d: %v != %v", i, parts[i], whole[i])
		}
	}

	osc.Reset()
	first := make([]complex128, 1)
	osc.Read(first)
	if first[0] != complex(50, 0) {
		t.Fatalf("after Reset got %v, want (50+0i)", first[0])
	}
}

func TestOscillatorFrequencyWraps(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	osc, err := g.Oscillator(900, 1)
	if err != nil {
		t.Fatalf("Oscillator() error = %v", err)
	}
	if !core.NearlyEqual(osc.Frequency(), -0.1, 1e-12) {
		t.Fatalf("Frequency() = %v, want -0.1", osc.Frequency())
	}
}

func TestGeneratorErrors(t *testing.T) {
	g := NewGenerator()
	if _, err := g.ComplexTone(1000, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.ComplexTone(1000, -1, 8); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
	if _, err := g.ComplexNoise(-1, 8); err == nil {
		t.Fatal("expected error for negative noise amplitude")
	}
	if _, err := g.Sine(1000, 1, -1); err == nil {
		t.Fatal("expected error for negative sine length")
	}
}

func TestComplexNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.ComplexNoise(10, 32)
	if err != nil {
		t.Fatalf("ComplexNoise() error = %v", err)
	}
	n2, err := g2.ComplexNoise(10, 32)
	if err != nil {
		t.Fatalf("ComplexNoise() error = %v", err)
	}
	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if math.Abs(real(n1[i])) > 10 || math.Abs(imag(n1[i])) > 10 {
			t.Fatalf("noise[%d] = %v out of range", i, n1[i])
		}
	}
}

func TestQuantizeIQ8(t *testing.T) {
	x := []complex128{
		complex(0.5, 1.5),
		complex(127.4, -127.6),
		complex(-129, 300),
	}
	dst := make([]byte, 2*len(x))
	if n := QuantizeIQ8(dst, x); n != 3 {
		t.Fatalf("QuantizeIQ8() = %d, want 3", n)
	}
	got := iq.DeinterleaveBytes(dst)
	want := []iq.Sample{{Re: 0, Im: 2}, {Re: 127, Im: -128}, {Re: -128, Im: 127}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestQuantizeIQ8ShortDestination(t *testing.T) {
	dst := make([]byte, 5)
	n := QuantizeIQ8(dst, make([]complex128, 4))
	if n != 2 {
		t.Fatalf("QuantizeIQ8() = %d, want 2", n)
	}
}

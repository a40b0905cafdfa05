package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(2_048_000))
	if cfg.SampleRate != 2_048_000 {
		t.Fatalf("sample rate = %v, want 2048000", cfg.SampleRate)
	}
	if cfg.BlockSize != 512 {
		t.Fatalf("block size = %d, want 512", cfg.BlockSize)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithSampleRate(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
	if def.SampleRate != 1_058_400 {
		t.Fatalf("default sample rate = %v", def.SampleRate)
	}
}

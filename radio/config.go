package radio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-sdr/dsp/core"
)

// GainMode selects how the tuner gain is controlled.
type GainMode string

const (
	GainAuto   GainMode = "auto"
	GainManual GainMode = "manual"
)

// Validate reports whether m is a known mode.
func (m GainMode) Validate() error {
	switch m {
	case GainAuto, GainManual:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidGainMode, string(m), GainAuto, GainManual)
	}
}

// DefaultChannelHz is the channel tuned when nothing else is configured.
const DefaultChannelHz = 88_300_000

// Config is the receiver configuration document.
type Config struct {
	SampleRate   uint32   `yaml:"sample_rate"`
	ChannelHz    uint32   `yaml:"channel_hz"`
	GainMode     GainMode `yaml:"gain_mode"`
	GainTenthsDB int      `yaml:"gain_tenths_db"`
	AGC          bool     `yaml:"agc"`
	BlockSize    int      `yaml:"block_size"`
}

// DefaultConfig returns the stock front-end configuration.
func DefaultConfig() Config {
	pc := core.DefaultProcessorConfig()
	return Config{
		SampleRate: uint32(pc.SampleRate),
		ChannelHz:  DefaultChannelHz,
		GainMode:   GainAuto,
		BlockSize:  pc.BlockSize,
	}
}

// ParseConfig decodes a YAML document on top of DefaultConfig. Unknown keys
// are rejected. An empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks everything that can be checked without a device. Manual
// gains are checked against the tuner in Configure.
func (c Config) Validate() error {
	if c.SampleRate == 0 {
		return fmt.Errorf("%w: sample rate must be > 0", ErrInvalidConfig)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size must be > 0: %d", ErrInvalidConfig, c.BlockSize)
	}
	if err := ValidateChannel(c.ChannelHz); err != nil {
		return err
	}
	if c.SampleRate/4 >= c.ChannelHz {
		return fmt.Errorf("%w: sample rate %d too high for channel %s", ErrInvalidConfig, c.SampleRate, FormatMHz(c.ChannelHz))
	}
	if err := c.GainMode.Validate(); err != nil {
		return err
	}
	if c.GainMode == GainManual && c.GainTenthsDB < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidGain, formatGain(c.GainTenthsDB))
	}
	return nil
}

// OutputRate is the sample rate after quarter-rate decimation.
func (c Config) OutputRate() uint32 {
	return c.SampleRate / 4
}

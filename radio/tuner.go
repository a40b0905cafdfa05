package radio

import "fmt"

// Tuner is the subset of an RTL-SDR style device the front end programs.
// Gains are in tenths of a dB.
type Tuner interface {
	SetSampleRate(hz uint32) error
	SetTunerBandwidth(hz uint32) error
	SetCenterFreq(hz uint32) error
	SetTunerGainMode(manual bool) error
	TunerGains() ([]int, error)
	SetTunerGain(tenthsDB int) error
	SetAGCMode(on bool) error
	ResetBuffer() error
}

// Settings are the concrete values written to the tuner.
type Settings struct {
	SampleRate   uint32
	Bandwidth    uint32
	ChannelHz    uint32
	CenterHz     uint32
	Manual       bool
	GainTenthsDB int
	AGC          bool
}

// Plan derives tuner settings from cfg. The analog bandwidth is 80% of the
// sample rate and the centre sits Fs/4 below the channel.
func Plan(cfg Config) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return Settings{
		SampleRate:   cfg.SampleRate,
		Bandwidth:    cfg.SampleRate / 10 * 8,
		ChannelHz:    cfg.ChannelHz,
		CenterHz:     cfg.ChannelHz - cfg.SampleRate/4,
		Manual:       cfg.GainMode == GainManual,
		GainTenthsDB: cfg.GainTenthsDB,
		AGC:          cfg.AGC,
	}, nil
}

// Configure programs t for cfg and leaves its buffer reset, ready to stream.
// The configuration is validated before the device is touched. The first
// failing step aborts and is reported as ErrTuner with the step name.
func Configure(t Tuner, cfg Config) (Settings, error) {
	s, err := Plan(cfg)
	if err != nil {
		return Settings{}, err
	}

	if err := t.SetSampleRate(s.SampleRate); err != nil {
		return s, tunerError("set sample rate", err)
	}
	if err := t.SetTunerBandwidth(s.Bandwidth); err != nil {
		return s, tunerError("set tuner bandwidth", err)
	}
	if err := t.SetCenterFreq(s.CenterHz); err != nil {
		return s, tunerError("set center frequency", err)
	}

	if s.Manual {
		if err := t.SetTunerGainMode(true); err != nil {
			return s, tunerError("set gain mode to manual", err)
		}
		gains, err := t.TunerGains()
		if err != nil {
			return s, tunerError("get tuner gains", err)
		}
		if err := ValidateGain(s.GainTenthsDB, gains); err != nil {
			return s, err
		}
		if err := t.SetTunerGain(s.GainTenthsDB); err != nil {
			return s, tunerError("set tuner gain", err)
		}
	} else if err := t.SetTunerGainMode(false); err != nil {
		return s, tunerError("set gain mode to auto", err)
	}

	if err := t.SetAGCMode(s.AGC); err != nil {
		return s, tunerError("set agc mode", err)
	}
	if err := t.ResetBuffer(); err != nil {
		return s, tunerError("reset buffer", err)
	}
	return s, nil
}

func tunerError(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTuner, step, err)
}

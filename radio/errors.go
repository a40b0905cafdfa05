package radio

import "errors"

var (
	// ErrInvalidChannel is returned for a frequency off the FM channel raster.
	ErrInvalidChannel = errors.New("radio: invalid channel")
	// ErrInvalidGain is returned for a manual gain the tuner does not offer.
	ErrInvalidGain = errors.New("radio: invalid gain")
	// ErrInvalidGainMode is returned for a gain mode other than auto or manual.
	ErrInvalidGainMode = errors.New("radio: invalid gain mode")
	// ErrInvalidConfig is returned for malformed or out-of-range settings.
	ErrInvalidConfig = errors.New("radio: invalid config")
	// ErrTuner wraps failures reported by the device.
	ErrTuner = errors.New("radio: tuner")
)

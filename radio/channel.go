package radio

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// FM broadcast raster.
const (
	FirstChannelHz = 87_900_000
	ChannelStepHz  = 200_000
	NumChannels    = 101
	LastChannelHz  = FirstChannelHz + (NumChannels-1)*ChannelStepHz
)

// Channels returns every valid channel centre in Hz, lowest first.
func Channels() []uint32 {
	out := make([]uint32, NumChannels)
	for i := range out {
		out[i] = FirstChannelHz + uint32(i)*ChannelStepHz
	}
	return out
}

// ValidateChannel reports whether hz is on the raster.
func ValidateChannel(hz uint32) error {
	if hz < FirstChannelHz || hz > LastChannelHz || (hz-FirstChannelHz)%ChannelStepHz != 0 {
		return fmt.Errorf("%w: %s; valid FM channels range from %s to %s",
			ErrInvalidChannel, FormatMHz(hz), FormatMHz(FirstChannelHz), FormatMHz(LastChannelHz))
	}
	return nil
}

// ChannelFromMHz converts a frequency in MHz to a validated channel in Hz.
// The value is rounded to the nearest kHz, so 88.3 maps to 88 300 000 even
// when it went through single precision.
func ChannelFromMHz(mhz float64) (uint32, error) {
	if math.IsNaN(mhz) || mhz <= 0 || mhz*1e6 > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %v MHz", ErrInvalidChannel, mhz)
	}
	hz := uint32(math.Round(mhz*1e3)) * 1000
	if err := ValidateChannel(hz); err != nil {
		return 0, err
	}
	return hz, nil
}

// FormatMHz renders hz as MHz with one decimal, the raster's resolution.
func FormatMHz(hz uint32) string {
	return fmt.Sprintf("%.1f MHz", float64(hz)/1e6)
}

// ValidateGain checks a manual gain in tenths of a dB against the gains the
// tuner reports.
func ValidateGain(tenthsDB int, available []int) error {
	if slices.Contains(available, tenthsDB) {
		return nil
	}
	return fmt.Errorf("%w: %s; valid gains: %s", ErrInvalidGain, formatGain(tenthsDB), formatGains(available))
}

func formatGain(tenthsDB int) string {
	return fmt.Sprintf("%.1f dB", float64(tenthsDB)/10)
}

func formatGains(gains []int) string {
	if len(gains) == 0 {
		return "none"
	}
	parts := make([]string, len(gains))
	for i, g := range gains {
		parts[i] = fmt.Sprintf("%.1f", float64(g)/10)
	}
	return strings.Join(parts, ", ") + " dB"
}

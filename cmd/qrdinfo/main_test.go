package main

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sdr/radio"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out, io.Discard, log.New(io.Discard))
	return out.String(), err
}

func measured(t *testing.T, out string) float64 {
	t.Helper()
	m := regexp.MustCompile(`Tone measured\s+(-?[0-9.]+) Hz`).FindStringSubmatch(out)
	require.Len(t, m, 2, "output:\n%s", out)
	v, err := strconv.ParseFloat(m[1], 64)
	require.NoError(t, err)
	return v
}

func TestRunDefaults(t *testing.T) {
	out, err := runArgs(t)
	require.NoError(t, err)

	assert.Contains(t, out, "88.3 MHz")
	assert.Contains(t, out, "88035400 Hz")
	assert.Contains(t, out, "264600 Hz")
	assert.Regexp(t, `Hamming\s+1\.36\s+-42\.7\s+0\.2500`, out)
	assert.InDelta(t, 10_000, measured(t, out), 200)
}

func TestRunNegativeOffsetWithShortReads(t *testing.T) {
	out, err := runArgs(t, "--offset", "-25000", "--short-every", "3", "--window", "kaiser", "-n", "127")
	require.NoError(t, err)
	assert.Contains(t, out, "short)")
	assert.NotContains(t, out, "(0 short)")
	assert.Regexp(t, `Kaiser\s+1\.72\s+-62\.5`, out)
	assert.InDelta(t, -25_000, measured(t, out), 200)
}

func TestRunDumpConfig(t *testing.T) {
	out, err := runArgs(t, "--dump-config", "--channel", "101.1")
	require.NoError(t, err)

	cfg, err := radio.ParseConfig([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, uint32(101_100_000), cfg.ChannelHz)
}

func TestRunInlineYAML(t *testing.T) {
	out, err := runArgs(t, "--yaml", "channel_hz: 107900000\nblock_size: 256\n")
	require.NoError(t, err)
	assert.Contains(t, out, "107.9 MHz")
	assert.Contains(t, out, "256 samples")

	out, err = runArgs(t, "--yaml", "block_size: 256", "--block-size", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "1000 samples")
}

func TestRunCoefficients(t *testing.T) {
	out, err := runArgs(t, "--coeffs", "--taps", "15", "--blocks", "1")
	require.NoError(t, err)

	rows := 0
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err == nil {
			rows++
		}
	}
	assert.Equal(t, 15, rows)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "off raster channel", args: []string{"--channel", "88.4"}, want: radio.ErrInvalidChannel},
		{name: "help", args: []string{"--help"}, want: pflag.ErrHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runArgs(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := runArgs(t, "--window", "triangle")
	assert.Error(t, err)

	_, err = runArgs(t, "--taps", "0")
	assert.Error(t, err)

	_, err = runArgs(t, "--yaml", "channel: 88.3")
	assert.ErrorIs(t, err, radio.ErrInvalidConfig)

	_, err = runArgs(t, "--block-size", "-4")
	assert.ErrorIs(t, err, radio.ErrInvalidConfig)
}

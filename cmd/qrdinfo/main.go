// Command qrdinfo prints the quarter-rate channel filter design and runs it
// on a synthetic receive chain.
//
// Usage:
//
//	qrdinfo [flags]
//
// The tuner settings are planned from the receiver configuration (defaults,
// then an inline YAML document, then flags). A synthetic 8-bit tone is placed at
// the channel plus an offset, pushed through the receiver, and the measured
// baseband frequency is compared with the expected one.
//
// Examples:
//
//	qrdinfo
//	qrdinfo --channel 101.1 --taps 127 --window kaiser
//	qrdinfo --yaml 'block_size: 256' --offset -25000 --short-every 4
//	qrdinfo --dump-config
//	qrdinfo --coeffs --taps 15
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-sdr/dsp/filter/fir"
	"github.com/cwbudde/algo-sdr/dsp/filter/quarter"
	"github.com/cwbudde/algo-sdr/dsp/iq"
	"github.com/cwbudde/algo-sdr/dsp/window"
	"github.com/cwbudde/algo-sdr/measure/tone"
	"github.com/cwbudde/algo-sdr/radio"
	"github.com/cwbudde/algo-sdr/rx"
)

// transient is the number of leading output samples skipped before measuring.
const transient = 32

type options struct {
	yamlDoc    string
	blockSize  int
	channelMHz float64
	taps       int
	cutoff     float64
	windowName string
	beta       float64
	offsetHz   float64
	amplitude  float64
	blocks     int
	shortEvery int
	dumpConfig bool
	coeffs     bool
	verbose    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "qrdinfo"})
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, logger); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, *pflag.FlagSet, error) {
	var o options

	fs := pflag.NewFlagSet("qrdinfo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.yamlDoc, "yaml", "", "inline YAML receiver configuration")
	fs.IntVar(&o.blockSize, "block-size", 0, "complex samples per read (overrides the configuration)")
	fs.Float64Var(&o.channelMHz, "channel", float64(radio.DefaultChannelHz)/1e6, "FM channel in MHz")
	fs.IntVarP(&o.taps, "taps", "n", rx.DefaultTaps, "filter length")
	fs.Float64VarP(&o.cutoff, "cutoff", "c", rx.DefaultCutoff, "low-pass cutoff in cycles per input sample")
	fs.StringVarP(&o.windowName, "window", "w", "hamming", "design window (rectangular, hann, hamming, blackman, kaiser)")
	fs.Float64Var(&o.beta, "beta", window.DefaultKaiserBeta, "Kaiser beta")
	fs.Float64Var(&o.offsetHz, "offset", 10_000, "test tone offset from the channel in Hz")
	fs.Float64Var(&o.amplitude, "amplitude", 100, "test tone amplitude in 8-bit units")
	fs.IntVar(&o.blocks, "blocks", 16, "number of blocks to run")
	fs.IntVar(&o.shortEvery, "short-every", 0, "make every n-th read short (0 disables)")
	fs.BoolVar(&o.dumpConfig, "dump-config", false, "print the effective configuration as YAML and exit")
	fs.BoolVar(&o.coeffs, "coeffs", false, "print the rotated Q15 coefficients")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: qrdinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints the quarter-rate filter design and runs a synthetic receive chain.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}
	return o, fs, nil
}

func loadConfig(o options, fs *pflag.FlagSet) (radio.Config, error) {
	cfg := radio.DefaultConfig()
	if o.yamlDoc != "" {
		var err error
		if cfg, err = radio.ParseConfig([]byte(o.yamlDoc)); err != nil {
			return radio.Config{}, err
		}
	}
	if fs.Changed("block-size") {
		cfg.BlockSize = o.blockSize
	}
	if fs.Changed("channel") {
		hz, err := radio.ChannelFromMHz(o.channelMHz)
		if err != nil {
			return radio.Config{}, err
		}
		cfg.ChannelHz = hz
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, logger *log.Logger) error {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(o, fs)
	if err != nil {
		return err
	}
	if o.dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	settings, err := radio.Plan(cfg)
	if err != nil {
		return err
	}
	logger.Debug("planned tuner", "centre", settings.CenterHz, "bandwidth", settings.Bandwidth)

	wt, err := window.ParseType(o.windowName)
	if err != nil {
		return err
	}
	filter, err := quarter.New(o.taps, o.cutoff, fir.WithWindow(wt), fir.WithKaiserBeta(o.beta))
	if err != nil {
		return err
	}

	if err := printPlan(stdout, cfg, settings); err != nil {
		return err
	}
	if err := printDesign(stdout, filter, o.cutoff, wt); err != nil {
		return err
	}
	if o.coeffs {
		if err := printCoefficients(stdout, filter.Coefficients()); err != nil {
			return err
		}
	}

	return runChain(ctx, stdout, logger, cfg, filter, o)
}

func printPlan(w io.Writer, cfg radio.Config, s radio.Settings) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\t%s\n", radio.FormatMHz(s.ChannelHz))
	fmt.Fprintf(tw, "Tuner centre\t%d Hz\n", s.CenterHz)
	fmt.Fprintf(tw, "Sample rate\t%d Hz\n", s.SampleRate)
	fmt.Fprintf(tw, "Bandwidth\t%d Hz\n", s.Bandwidth)
	fmt.Fprintf(tw, "Output rate\t%d Hz\n", cfg.OutputRate())
	fmt.Fprintf(tw, "Gain\t%s\n", gainLabel(cfg))
	fmt.Fprintf(tw, "Block\t%d samples\n", cfg.BlockSize)
	fmt.Fprintln(tw)
	return tw.Flush()
}

func gainLabel(cfg radio.Config) string {
	if cfg.GainMode == radio.GainManual {
		return fmt.Sprintf("manual %.1f dB", float64(cfg.GainTenthsDB)/10)
	}
	return string(cfg.GainMode)
}

func printDesign(w io.Writer, f *quarter.Filter, cutoff float64, wt window.Type) error {
	c := f.Coefficients()
	info := window.Info(wt)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Taps\tCutoff\tWindow\tENBW [bins]\tSidelobe [dB]\tCentre\tGain +Fs/4 [dB]\tGain -Fs/4 [dB]\tEdge [dB]\n")
	fmt.Fprintf(tw, "----\t------\t------\t-----------\t-------------\t------\t---------------\t---------------\t---------\n")
	fmt.Fprintf(tw, "%d\t%.3f\t%s\t%.2f\t%.1f\t%.4f\t%.2f\t%.2f\t%.2f\n",
		f.NumTaps(),
		cutoff,
		info.Name,
		info.ENBW,
		info.HighestSidelobe,
		fir.CenterFrequency(c, 0),
		fir.MagnitudeDB(c, 0.25),
		fir.MagnitudeDB(c, -0.25),
		fir.MagnitudeDB(c, 0.25+cutoff),
	)
	fmt.Fprintln(tw)
	return tw.Flush()
}

func printCoefficients(w io.Writer, c []iq.Sample) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "n\tre\tim\t\n")
	for n, s := range c {
		fmt.Fprintf(tw, "%d\t%d\t%d\t\n", n, s.Re, s.Im)
	}
	fmt.Fprintln(tw)
	return tw.Flush()
}

func runChain(ctx context.Context, w io.Writer, logger *log.Logger, cfg radio.Config, f *quarter.Filter, o options) error {
	fs := float64(cfg.SampleRate)
	limit := o.blocks * cfg.BlockSize

	var srcOpts []rx.ToneOption
	srcOpts = append(srcOpts, rx.WithLimit(limit))
	if o.shortEvery > 0 {
		srcOpts = append(srcOpts, rx.WithShortReads(o.shortEvery))
	}

	// The channel lands at +Fs/4 relative to the tuner centre.
	src, err := rx.NewToneSource(fs, fs/4+o.offsetHz, o.amplitude, srcOpts...)
	if err != nil {
		return err
	}
	recv, err := rx.NewReceiver(src, cfg.BlockSize, rx.WithFilter(f), rx.WithLogger(logger))
	if err != nil {
		return err
	}

	out := make([]iq.Sample, 0, quarter.OutputLen(limit))
	err = recv.Run(ctx, func(block []iq.Sample) error {
		logger.Debug("block", "samples", len(block))
		out = append(out, block...)
		return nil
	})
	if err != nil {
		return err
	}

	stats := recv.Stats()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Reads\t%d (%d short)\n", stats.Reads, stats.Underflows)
	fmt.Fprintf(tw, "Samples\t%d in, %d out\n", stats.InSamples, stats.OutSamples)

	if len(out) <= transient {
		fmt.Fprintf(tw, "Tone\ttoo few output samples to measure\n")
		return tw.Flush()
	}

	res, err := tone.EstimateSamples(out[transient:], tone.Config{SampleRate: float64(cfg.OutputRate())})
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "Tone expected\t%.1f Hz\n", o.offsetHz)
	fmt.Fprintf(tw, "Tone measured\t%.1f Hz\n", res.FrequencyHz)
	fmt.Fprintf(tw, "Tone level\t%.2f dB\n", res.LevelDB)
	return tw.Flush()
}

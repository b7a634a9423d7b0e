// SPDX-License-Identifier: EPL-2.0

// Command deinvert descrambles voice-inverted audio.
//
// Raw 16-bit little-endian mono PCM is read from stdin and written to stdout
// unless -i or -o name files:
//
//	sox scrambled.wav -t raw -r 44100 -e signed -b 16 -c 1 - | deinvert -p 1 | aplay -f S16_LE -r 44100
//	deinvert -f 2632 -i scrambled.mp3 -o clear.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/ik5/deinvert"
	"github.com/ik5/deinvert/audio"
	"github.com/ik5/deinvert/formats/aiff"
	"github.com/ik5/deinvert/formats/mp3"
	"github.com/ik5/deinvert/formats/raw"
	"github.com/ik5/deinvert/formats/vorbis"
	"github.com/ik5/deinvert/formats/wav"
	"github.com/ik5/deinvert/internal/config"
	"github.com/ik5/deinvert/invert"
)

const (
	programName = "deinvert"
	version     = "1.0.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, showVersion, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return 1
	}

	if showVersion {
		fmt.Fprintf(stdout, "%s %s\n", programName, version)
		return 0
	}

	logger := initLogger(cfg.Logging, stderr)

	logger.Info("Descrambler starting",
		slog.String("version", version),
		slog.Float64("frequency", cfg.Carrier()),
		slog.Int("preset", cfg.Preset),
		slog.Bool("filter", !cfg.NoFilter),
		slog.String("input", describe(cfg.Input.Type, cfg.Input.File)),
		slog.String("output", describe(cfg.Output.Type, cfg.Output.File)),
	)

	st, err := descramble(cfg, stdin, stdout, logger)
	if err != nil {
		logger.Error("Descrambling failed", slog.String("error", err.Error()))
		return 1
	}

	logger.Info("Descrambling complete",
		slog.Int("blocks", st.Blocks),
		slog.Int("samples", st.Samples),
	)

	return 0
}

// parseArgs builds the run configuration. Values from -config are loaded
// first; flags given on the command line override them.
func parseArgs(args []string, stderr io.Writer) (config.Config, bool, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  string
		frequency   float64
		preset      int
		inputFile   string
		outputFile  string
		noFilter    bool
		sampleRate  float64
		resample    int
		blockSize   int
		filterOrder int
		logLevel    string
		logFormat   string
		showVersion bool
	)

	def := config.Default()

	fs.StringVar(&configPath, "config", "", "YAML configuration `file`")
	fs.Float64Var(&frequency, "f", def.Frequency, "frequency of the inversion carrier, in Hz")
	fs.Float64Var(&frequency, "frequency", def.Frequency, "alias for -f")
	fs.IntVar(&preset, "p", 0, fmt.Sprintf("scrambler frequency preset (1-%d, Selectone ST-20B)", len(config.Presets)))
	fs.IntVar(&preset, "preset", 0, "alias for -p")
	fs.StringVar(&inputFile, "i", "", "read an audio `file` (wav, aiff, mp3, ogg) instead of stdin")
	fs.StringVar(&inputFile, "input-file", "", "alias for -i")
	fs.StringVar(&outputFile, "o", "", "write a WAV `file` instead of stdout; an existing file is overwritten")
	fs.StringVar(&outputFile, "output-file", "", "alias for -o")
	fs.BoolVar(&noFilter, "n", false, "disable filtering (faster)")
	fs.BoolVar(&noFilter, "nofilter", false, "alias for -n")
	fs.Float64Var(&sampleRate, "r", def.SampleRate, "sample `rate` of raw input, in Hz")
	fs.Float64Var(&sampleRate, "samplerate", def.SampleRate, "alias for -r")
	fs.IntVar(&resample, "resample", 0, "resample input to `rate` Hz before descrambling (0 keeps the input rate)")
	fs.IntVar(&blockSize, "block-size", def.BlockSize, "samples read per block")
	fs.IntVar(&filterOrder, "filter-order", def.FilterOrder, fmt.Sprintf("low-pass filter order (1-%d)", invert.MaxFilterOrder))
	fs.StringVar(&logLevel, "log-level", def.Logging.Level, "log level: debug, info, warn or error")
	fs.StringVar(&logFormat, "log-format", def.Logging.Format, "log format: text or json")
	fs.BoolVar(&showVersion, "v", false, "display version string")
	fs.BoolVar(&showVersion, "version", false, "alias for -v")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [OPTIONS]\n\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return def, false, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return def, false, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if showVersion {
		return def, true, nil
	}

	cfg := def
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return def, false, err
		}
		cfg = loaded
	}

	presetSet := false

	// Visit runs in lexical order, so -p lands after -f and wins.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f", "frequency":
			cfg.Frequency = frequency
			cfg.Preset = 0
		case "p", "preset":
			cfg.Preset = preset
			presetSet = true
		case "i", "input-file":
			cfg.Input = config.InputConfig{Type: config.InputFile, File: inputFile}
		case "o", "output-file":
			cfg.Output = config.OutputConfig{Type: config.OutputWAV, File: outputFile}
		case "n", "nofilter":
			cfg.NoFilter = noFilter
		case "r", "samplerate":
			cfg.SampleRate = sampleRate
		case "resample":
			cfg.Resample = resample
		case "block-size":
			cfg.BlockSize = blockSize
		case "filter-order":
			cfg.FilterOrder = filterOrder
		case "log-level":
			cfg.Logging.Level = logLevel
		case "log-format":
			cfg.Logging.Format = logFormat
		}
	})

	// 0 means "no preset" in a config file but is not a preset to ask for.
	if presetSet && (preset < 1 || preset > len(config.Presets)) {
		return def, false, fmt.Errorf("%w: %d, want 1-%d", config.ErrInvalidPreset, preset, len(config.Presets))
	}

	if err := cfg.Validate(); err != nil {
		return def, false, err
	}

	return cfg, false, nil
}

func initLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("program", programName))
}

func describe(kind, file string) string {
	if file == "" {
		return kind
	}

	return kind + ":" + file
}

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// openInput returns the configured input as a Source. The caller closes it.
func openInput(cfg config.Config, stdin io.Reader) (audio.Source, error) {
	if cfg.Input.Type == config.InputStdin {
		return raw.Decoder{SampleRate: int(math.Round(cfg.SampleRate))}.Decode(stdin)
	}

	dec, ok := newRegistry().ForFile(cfg.Input.File)
	if !ok {
		dec = wav.Decoder{}
	}

	f, err := os.Open(cfg.Input.File)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", cfg.Input.File, err)
	}

	return src, nil
}

// openOutput creates the configured sink at rate Hz.
func openOutput(cfg config.Config, rate int, stdout io.Writer) (audio.SampleSink, error) {
	if cfg.Output.Type == config.OutputStdout {
		return raw.NewWriter(stdout), nil
	}

	return wav.Create(cfg.Output.File, rate)
}

// descramble wires input, Inverter and output together. Every parameter is
// checked before the output is created, so a bad carrier never leaves an
// empty output file behind.
func descramble(cfg config.Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) (deinvert.Stats, error) {
	in, err := openInput(cfg, stdin)
	if err != nil {
		return deinvert.Stats{}, err
	}

	var src audio.Source = audio.NewMonoMixer(in)
	if cfg.Resample > 0 && cfg.Resample != src.SampleRate() {
		res, err := audio.NewResampler(src, cfg.Resample)
		if err != nil {
			_ = src.Close()
			return deinvert.Stats{}, err
		}
		logger.Debug("Resampling input",
			slog.Int("from", src.SampleRate()),
			slog.Int("to", cfg.Resample),
		)
		src = res
	}

	br, err := audio.NewBlockReader(src, cfg.BlockSize)
	if err != nil {
		_ = src.Close()
		return deinvert.Stats{}, err
	}
	defer func() {
		if err := br.Close(); err != nil {
			logger.Warn("Failed to close input", slog.String("error", err.Error()))
		}
	}()

	inv, err := invert.New(invert.Params{
		SampleRate:  br.SampleRate(),
		Frequency:   cfg.Carrier(),
		Filter:      !cfg.NoFilter,
		FilterOrder: cfg.FilterOrder,
	})
	if err != nil {
		return deinvert.Stats{}, err
	}

	sink, err := openOutput(cfg, int(br.SampleRate()), stdout)
	if err != nil {
		return deinvert.Stats{}, err
	}

	p := deinvert.Pipeline{
		Source:   br,
		Inverter: inv,
		Sink:     sink,
		Logger:   logger,
	}

	return p.Run()
}

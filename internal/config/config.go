// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/deinvert/invert"
)

const (
	InputStdin = "stdin"
	InputFile  = "file"

	OutputStdout = "stdout"
	OutputWAV    = "wav"
)

// Presets are the carrier frequencies of the Selectone ST-20B scrambler,
// selected as preset 1 through 8.
var Presets = [...]float64{2632, 2718, 2868, 3023, 3196, 3339, 3495, 3729}

// Config is the run configuration. It is read once at start-up and not
// modified afterwards.
type Config struct {
	SampleRate  float64       `yaml:"sample_rate"` // raw input only; decoded files carry their own
	Frequency   float64       `yaml:"frequency"`
	Preset      int           `yaml:"preset"` // 1-8, overrides Frequency; 0 = none
	NoFilter    bool          `yaml:"nofilter"`
	FilterOrder int           `yaml:"filter_order"`
	Resample    int           `yaml:"resample"` // 0 keeps the input rate
	BlockSize   int           `yaml:"block_size"`
	Input       InputConfig   `yaml:"input"`
	Output      OutputConfig  `yaml:"output"`
	Logging     LoggingConfig `yaml:"logging"`
}

type InputConfig struct {
	Type string `yaml:"type"` // stdin or file
	File string `yaml:"file"`
}

type OutputConfig struct {
	Type string `yaml:"type"` // stdout or wav
	File string `yaml:"file"`
}

// LoggingConfig selects the slog handler. Logs always go to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		SampleRate:  44100,
		Frequency:   1000,
		FilterOrder: invert.DefaultFilterOrder,
		BlockSize:   4096,
		Input:       InputConfig{Type: InputStdin},
		Output:      OutputConfig{Type: OutputStdout},
		Logging:     LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Carrier is the inversion frequency after applying Preset.
func (c *Config) Carrier() float64 {
	if c.Preset >= 1 && c.Preset <= len(Presets) {
		return Presets[c.Preset-1]
	}

	return c.Frequency
}

// Validate reports the first invalid field. Whether the carrier lies below
// Nyquist depends on the input's rate and is checked when the inverter is
// built.
func (c *Config) Validate() error {
	if !finite(c.SampleRate) || c.SampleRate < invert.MinSampleRate {
		return fmt.Errorf("%w: %v Hz, want at least %v", ErrInvalidSampleRate, c.SampleRate, invert.MinSampleRate)
	}

	if c.Preset < 0 || c.Preset > len(Presets) {
		return fmt.Errorf("%w: %d, want 1-%d", ErrInvalidPreset, c.Preset, len(Presets))
	}

	if f := c.Carrier(); !finite(f) || f <= 0 {
		return fmt.Errorf("%w: %v Hz", ErrInvalidFrequency, f)
	}

	if c.FilterOrder < 1 || c.FilterOrder > invert.MaxFilterOrder {
		return fmt.Errorf("%w: %d, want 1-%d", ErrInvalidFilterOrder, c.FilterOrder, invert.MaxFilterOrder)
	}

	if c.Resample != 0 && c.Resample < int(invert.MinSampleRate) {
		return fmt.Errorf("%w: %d Hz, want 0 or at least %v", ErrInvalidResample, c.Resample, invert.MinSampleRate)
	}

	if c.BlockSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, c.BlockSize)
	}

	if err := c.Input.Validate(); err != nil {
		return err
	}

	if err := c.Output.Validate(); err != nil {
		return err
	}

	return c.Logging.Validate()
}

func (i *InputConfig) Validate() error {
	switch i.Type {
	case InputStdin:
	case InputFile:
		if i.File == "" {
			return fmt.Errorf("%w: type file needs a file name", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: type must be stdin or file, got %q", ErrInvalidInput, i.Type)
	}

	return nil
}

func (o *OutputConfig) Validate() error {
	switch o.Type {
	case OutputStdout:
	case OutputWAV:
		if o.File == "" {
			return fmt.Errorf("%w: type wav needs a file name", ErrInvalidOutput)
		}
	default:
		return fmt.Errorf("%w: type must be stdout or wav, got %q", ErrInvalidOutput, o.Type)
	}

	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("%w: level must be one of [debug, info, warn, error], got %q", ErrInvalidLogging, l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("%w: format must be 'json' or 'text', got %q", ErrInvalidLogging, l.Format)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

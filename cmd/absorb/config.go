package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"honnef.co/go/absorb"
	"honnef.co/go/absorb/chart"
)

var errInvalidConfig = errors.New("invalid configuration")

// Config holds everything a run needs. The zero value is not valid; start
// from DefaultConfig.
type Config struct {
	Coefficients []float64 `yaml:"coefficients"`
	Offset       float64   `yaml:"x0"`
	Lo           float64   `yaml:"lo"`
	Hi           float64   `yaml:"hi"`
	Samples      int       `yaml:"samples"`

	Output   string  `yaml:"output"`
	Open     bool    `yaml:"open"`
	Smooth   bool    `yaml:"smooth"`
	Accuracy float64 `yaml:"accuracy"`
	Legend   bool    `yaml:"legend"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Title    string  `yaml:"title"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig reproduces the classic plot: four curves over 50 samples of
// [0, 2], written to absorb.svg.
func DefaultConfig() Config {
	return Config{
		Coefficients: absorb.DefaultCoefficients(),
		Offset:       absorb.DefaultOffset,
		Lo:           absorb.DefaultLo,
		Hi:           absorb.DefaultHi,
		Samples:      absorb.DefaultSampleCount,
		Output:       "absorb.svg",
		Accuracy:     chart.DefaultAccuracy,
		Width:        chart.DefaultWidth,
		Height:       chart.DefaultHeight,
		LogLevel:     "info",
	}
}

// LoadConfig reads a YAML file on top of base. Keys missing from the file keep
// their value from base; unknown keys are an error. An empty file is valid.
func LoadConfig(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	cfg := base
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first problem with cfg.
func (cfg Config) Validate() error {
	switch {
	case len(cfg.Coefficients) == 0:
		return fmt.Errorf("%w: no coefficients", errInvalidConfig)
	case cfg.Samples < 1:
		return fmt.Errorf("%w: samples must be at least 1, got %d", errInvalidConfig, cfg.Samples)
	case !(cfg.Hi >= cfg.Lo):
		return fmt.Errorf("%w: interval [%g, %g] is empty", errInvalidConfig, cfg.Lo, cfg.Hi)
	case !(cfg.Accuracy > 0):
		return fmt.Errorf("%w: accuracy must be positive, got %g", errInvalidConfig, cfg.Accuracy)
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("%w: size %dx%d is not positive", errInvalidConfig, cfg.Width, cfg.Height)
	case cfg.Output == "":
		return fmt.Errorf("%w: no output", errInvalidConfig)
	case cfg.Open && cfg.Output == "-":
		return fmt.Errorf("%w: cannot open a viewer on standard output", errInvalidConfig)
	case hclog.LevelFromString(cfg.LogLevel) == hclog.NoLevel:
		return fmt.Errorf("%w: unknown log level %q", errInvalidConfig, cfg.LogLevel)
	}
	return nil
}

func (cfg Config) chartOptions() chart.Options {
	return chart.Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Title:    cfg.Title,
		Legend:   cfg.Legend,
		Smooth:   cfg.Smooth,
		Accuracy: cfg.Accuracy,
	}
}

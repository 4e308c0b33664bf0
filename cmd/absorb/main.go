// Command absorb plots F(x) = exp(coe·(x−X0)) + coe·(X0−x) − 1 for several
// coefficients on one chart.
//
// Without flags it samples 50 points of [0, 2], draws coe = 1, 2, 3, 4 with
// X0 = 1, and writes the chart to absorb.svg.
//
// Usage:
//
//	absorb [flags]
//	absorb --coe 0.5,1,2 --x0 0 --lo -2 --hi 2 --legend -o chart.svg
//	absorb --config plot.yaml --open
package main

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"honnef.co/go/absorb"
	"honnef.co/go/absorb/chart"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := DefaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:           "absorb",
		Short:         "Plot exp(coe·(x−X0)) + coe·(X0−x) − 1 for several coefficients",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath, flags)
			logger := newLogger(stderr, cfg.LogLevel)
			if err != nil {
				logger.Error("invalid configuration", "error", err)
				return err
			}
			if err := run(cfg, logger, stdout); err != nil {
				logger.Error("absorb failed", "error", err)
				return err
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with default values for the flags")
	f.Float64SliceVar(&flags.Coefficients, "coe", flags.Coefficients, "coefficients, one curve each")
	f.Float64Var(&flags.Offset, "x0", flags.Offset, "offset X0 shared by all curves")
	f.Float64Var(&flags.Lo, "lo", flags.Lo, "first sample")
	f.Float64Var(&flags.Hi, "hi", flags.Hi, "last sample")
	f.IntVar(&flags.Samples, "samples", flags.Samples, "number of evenly spaced samples")
	f.StringVarP(&flags.Output, "output", "o", flags.Output, `output SVG file, "-" for standard output`)
	f.BoolVar(&flags.Open, "open", flags.Open, "open the chart in the system viewer and wait for it")
	f.BoolVar(&flags.Smooth, "smooth", flags.Smooth, "draw fitted curves of the function instead of lines between samples")
	f.Float64Var(&flags.Accuracy, "accuracy", flags.Accuracy, "maximum deviation of smooth curves, in pixels")
	f.BoolVar(&flags.Legend, "legend", flags.Legend, "draw a legend")
	f.IntVar(&flags.Width, "width", flags.Width, "chart width in pixels")
	f.IntVar(&flags.Height, "height", flags.Height, "chart height in pixels")
	f.StringVar(&flags.Title, "title", flags.Title, "chart title")
	f.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level (trace, debug, info, warn, error)")
	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags,
// in increasing order of precedence.
func resolveConfig(cmd *cobra.Command, configPath string, flags Config) (Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = LoadConfig(configPath, cfg)
		if err != nil {
			return cfg, err
		}
	}
	set := map[string]func(){
		"coe":       func() { cfg.Coefficients = flags.Coefficients },
		"x0":        func() { cfg.Offset = flags.Offset },
		"lo":        func() { cfg.Lo = flags.Lo },
		"hi":        func() { cfg.Hi = flags.Hi },
		"samples":   func() { cfg.Samples = flags.Samples },
		"output":    func() { cfg.Output = flags.Output },
		"open":      func() { cfg.Open = flags.Open },
		"smooth":    func() { cfg.Smooth = flags.Smooth },
		"accuracy":  func() { cfg.Accuracy = flags.Accuracy },
		"legend":    func() { cfg.Legend = flags.Legend },
		"width":     func() { cfg.Width = flags.Width },
		"height":    func() { cfg.Height = flags.Height },
		"title":     func() { cfg.Title = flags.Title },
		"log-level": func() { cfg.LogLevel = flags.LogLevel },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, level string) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "absorb",
		Level:  lvl,
		Output: w,
	})
}

// run samples the function, plots one curve per coefficient and displays the
// chart.
func run(cfg Config, logger hclog.Logger, stdout io.Writer) error {
	xs := absorb.Linspace(cfg.Lo, cfg.Hi, cfg.Samples)
	logger.Debug("sampled interval", "lo", cfg.Lo, "hi", cfg.Hi, "samples", len(xs))

	ch := chart.New(cfg.chartOptions())
	for _, cv := range absorb.Family(xs, cfg.Coefficients, cfg.Offset) {
		if lo, _, ok := cv.Min(); ok {
			logger.Debug("evaluated curve", "coe", cv.Func.Coe, "x0", cv.Func.X0, "min_x", lo.X, "min_y", lo.Y)
		}
		if !cv.Finite() {
			logger.Warn("curve has non-finite values", "coe", cv.Func.Coe)
		}
		if err := ch.PlotCurve(cv); err != nil {
			return err
		}
	}

	if err := ch.Show(display(cfg, stdout)); err != nil {
		return err
	}
	if cfg.Output != "-" {
		logger.Info("wrote chart", "path", cfg.Output, "curves", len(cfg.Coefficients))
	}
	return nil
}

func display(cfg Config, stdout io.Writer) chart.Display {
	switch {
	case cfg.Output == "-":
		return chart.WriterDisplay{W: stdout}
	case cfg.Open:
		return chart.ViewerDisplay{Path: cfg.Output}
	default:
		return chart.FileDisplay{Path: cfg.Output}
	}
}

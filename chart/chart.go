// Package chart renders line series onto a single 2D chart and writes it as an
// SVG document.
//
// A chart accumulates series submitted with [Chart.Plot] or [Chart.PlotCurve]
// and is drawn once, when [Chart.WriteSVG] or [Chart.Show] is called. Axis
// limits are computed from the finite points of all series; non-finite points
// break a series' line instead of stretching the axes.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"honnef.co/go/absorb"
)

// ErrLengthMismatch is returned by [Chart.Plot] when x and y differ in length.
var ErrLengthMismatch = errors.New("chart: x and y differ in length")

// Default option values, used for zero fields of [Options].
const (
	DefaultWidth    = 640
	DefaultHeight   = 480
	DefaultAccuracy = 0.25
	DefaultMargin   = 0.05
)

// Options configures a chart.
type Options struct {
	// Width and Height are the size of the document in pixels.
	Width, Height int
	Title         string
	XLabel        string
	YLabel        string
	// Legend draws a legend box in the upper left corner of the plot area.
	Legend bool
	// Smooth draws series that carry their function, such as those added by
	// [Chart.PlotCurve], as fitted cubic Béziers of the function itself
	// instead of straight lines between samples.
	Smooth bool
	// Accuracy is the maximum deviation, in pixels, of smooth curves.
	Accuracy float64
	// Margin is the fraction of the data range added on every side of the
	// axis limits. A negative value disables the padding.
	Margin float64
}

func (opts Options) withDefaults() Options {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Accuracy <= 0 {
		opts.Accuracy = DefaultAccuracy
	}
	switch {
	case opts.Margin == 0:
		opts.Margin = DefaultMargin
	case opts.Margin < 0:
		opts.Margin = 0
	}
	return opts
}

// Series is one line on a chart.
type Series struct {
	Label string
	X, Y  []float64
	// Color is a CSS color. It is assigned from [Palette] when the series is
	// added.
	Color string
	// Func is the function the series samples, if known.
	Func *absorb.Func
}

// Chart is a 2D line chart.
type Chart struct {
	opts   Options
	series []Series
}

// New returns an empty chart.
func New(opts Options) *Chart {
	return &Chart{opts: opts.withDefaults()}
}

// Options returns the chart's options, with defaults filled in.
func (c *Chart) Options() Options { return c.opts }

// Plot adds a line series. xs and ys are copied.
func (c *Chart) Plot(xs, ys []float64, label string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	c.add(Series{
		Label: label,
		X:     append([]float64(nil), xs...),
		Y:     append([]float64(nil), ys...),
	})
	return nil
}

// PlotCurve adds a curve as a line series labelled "coe=<coefficient>".
func (c *Chart) PlotCurve(cv absorb.Curve) error {
	if len(cv.X) != len(cv.Y) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(cv.X), len(cv.Y))
	}
	f := cv.Func
	c.add(Series{
		Label: "coe=" + strconv.FormatFloat(f.Coe, 'g', -1, 64),
		X:     append([]float64(nil), cv.X...),
		Y:     append([]float64(nil), cv.Y...),
		Func:  &f,
	})
	return nil
}

func (c *Chart) add(s Series) {
	s.Color = Palette[len(c.series)%len(Palette)]
	c.series = append(c.series, s)
}

// Series returns the series added so far, in order.
func (c *Chart) Series() []Series {
	return append([]Series(nil), c.series...)
}

// DataBounds returns the axis limits: the bounding box of all finite points,
// padded by the chart's margin. A zero-width or zero-height box is first
// widened in each direction by 0.5, or by a billionth of its coordinate if
// that is larger. Without finite points the limits are the unit square.
func (c *Chart) DataBounds() absorb.Rect {
	var r absorb.Rect
	found := false
	for _, s := range c.series {
		for i := range s.X {
			pt := absorb.Pt(s.X[i], s.Y[i])
			if !pt.IsFinite() {
				continue
			}
			if !found {
				r = absorb.NewRectFromPoints(pt, pt)
				found = true
			} else {
				r = r.UnionPoint(pt)
			}
		}
	}
	if !found {
		return absorb.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}
	}
	if r.Width() == 0 {
		r = r.Inflate(degenerateSpread(r.X0), 0)
	}
	if r.Height() == 0 {
		r = r.Inflate(0, degenerateSpread(r.Y0))
	}
	return r.Pad(c.opts.Margin).ClampFinite()
}

// degenerateSpread is how far a single value v is widened into an axis range.
// It must survive rounding at v's magnitude.
func degenerateSpread(v float64) float64 {
	return max(0.5, math.Abs(v)*1e-9)
}

// Show renders the chart and hands the document to d.
func (c *Chart) Show(d Display) error {
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		return err
	}
	if err := d.Display(buf.Bytes()); err != nil {
		return fmt.Errorf("display chart: %w", err)
	}
	return nil
}

// Render is a convenience that renders the chart to a string.
func (c *Chart) Render() (string, error) {
	var buf bytes.Buffer
	err := c.WriteSVG(&buf)
	return buf.String(), err
}

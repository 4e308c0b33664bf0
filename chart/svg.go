package chart

import (
	"fmt"
	"io"
	"math"
	"slices"

	svg "github.com/ajstarks/svgo"

	"honnef.co/go/absorb"
)

// Paths are written with two decimals, well below a pixel.
var pathOpts = absorb.SVGOptions{MaxPrecision: 2}

const (
	tickLength   = 5
	fontSize     = 12
	legendRow    = 18
	legendSwatch = 20
)

// layout places the plot area in the document and maps data coordinates
// into it.
type layout struct {
	// area is the plot area in pixels, y-down.
	area absorb.Rect
	// data holds the axis limits in data coordinates, y-up.
	data absorb.Rect
	toPx absorb.Affine
}

func (c *Chart) layout() layout {
	w, h := float64(c.opts.Width), float64(c.opts.Height)
	top, right, bottom, left := 20.0, 20.0, 40.0, 60.0
	if c.opts.Title != "" {
		top += 20
	}
	if c.opts.XLabel != "" {
		bottom += 15
	}
	if c.opts.YLabel != "" {
		left += 15
	}
	area := absorb.Rect{
		X0: left,
		Y0: top,
		X1: max(w-right, left+1),
		Y1: max(h-bottom, top+1),
	}
	data := c.DataBounds()
	// Flip y: the bottom-left data corner goes to the bottom-left pixel.
	dst := absorb.Rect{X0: area.X0, Y0: area.Y1, X1: area.X1, Y1: area.Y0}
	return layout{
		area: area,
		data: data,
		toPx: absorb.MapRect(data, dst),
	}
}

// path returns the series' line in pixel coordinates.
func (c *Chart) path(s Series, l layout) absorb.BezPath {
	if c.opts.Smooth && s.Func != nil && len(s.X) >= 2 {
		g := absorb.Graph{Func: *s.Func, Lo: s.X[0], Hi: s.X[len(s.X)-1]}
		src := absorb.TransformedCurve{Curve: g, Aff: l.toPx}
		return slices.Collect(absorb.FitToBezPath(src, c.opts.Accuracy))
	}
	return absorb.Polyline(s.X, s.Y).Transform(l.toPx)
}

// errWriter remembers the first write error, since svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}

func px(v float64) int { return int(math.Round(v)) }

// WriteSVG renders the chart as a standalone SVG document.
func (c *Chart) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	l := c.layout()

	canvas.Start(c.opts.Width, c.opts.Height)
	if c.opts.Title != "" {
		canvas.Title(c.opts.Title)
	}
	canvas.Rect(0, 0, c.opts.Width, c.opts.Height, "fill:white")

	canvas.Def()
	canvas.ClipPath(`id="plot-area"`)
	canvas.Path(l.area.Path().SVG(pathOpts))
	canvas.ClipEnd()
	canvas.DefEnd()

	canvas.Group(fmt.Sprintf("font-family:sans-serif;font-size:%dpx", fontSize))
	c.writeAxes(canvas, l)
	c.writeSeries(canvas, l)
	if c.opts.Legend && len(c.series) > 0 {
		c.writeLegend(canvas, l)
	}
	canvas.Path(l.area.Path().SVG(pathOpts), "fill:none;stroke:black;stroke-width:1")
	c.writeLabels(canvas, l)
	canvas.Gend()
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func (c *Chart) writeSeries(canvas *svg.SVG, l layout) {
	canvas.Group(`clip-path="url(#plot-area)"`, "fill:none;stroke-width:1.5;stroke-linejoin:round")
	for _, s := range c.series {
		p := c.path(s, l)
		if !p.HasSegments() {
			continue
		}
		canvas.Path(p.SVG(pathOpts), "stroke:"+s.Color)
	}
	canvas.Gend()
}

func (c *Chart) writeAxes(canvas *svg.SVG, l layout) {
	xs, xstep := ticks(l.data.X0, l.data.X1, maxTicks)
	xdec := tickDecimals(xstep)
	bottom := px(l.area.Y1)
	for _, v := range xs {
		x := px(absorb.Pt(v, l.data.Y0).Transform(l.toPx).X)
		canvas.Line(x, bottom, x, bottom+tickLength, "stroke:black")
		canvas.Text(x, bottom+tickLength+fontSize+2, formatTick(v, xdec), "text-anchor:middle")
	}

	ys, ystep := ticks(l.data.Y0, l.data.Y1, maxTicks)
	ydec := tickDecimals(ystep)
	left := px(l.area.X0)
	for _, v := range ys {
		y := px(absorb.Pt(l.data.X0, v).Transform(l.toPx).Y)
		canvas.Line(left-tickLength, y, left, y, "stroke:black")
		canvas.Text(left-tickLength-3, y+fontSize/3, formatTick(v, ydec), "text-anchor:end")
	}
}

func (c *Chart) writeLabels(canvas *svg.SVG, l layout) {
	center := l.area.Center()
	if c.opts.Title != "" {
		canvas.Text(px(center.X), px(l.area.Y0)-12, c.opts.Title, "text-anchor:middle;font-size:16px")
	}
	if c.opts.XLabel != "" {
		canvas.Text(px(center.X), c.opts.Height-10, c.opts.XLabel, "text-anchor:middle")
	}
	if c.opts.YLabel != "" {
		x, y := 16, px(center.Y)
		canvas.Text(x, y, c.opts.YLabel,
			fmt.Sprintf(`transform="rotate(-90 %d %d)"`, x, y), "text-anchor:middle")
	}
}

func (c *Chart) writeLegend(canvas *svg.SVG, l layout) {
	longest := 0
	for _, s := range c.series {
		longest = max(longest, len(s.Label))
	}
	x0 := px(l.area.X0) + 10
	y0 := px(l.area.Y0) + 10
	// Approximate the text width; SVG has no way to measure it up front.
	width := legendSwatch + 18 + longest*fontSize*6/10
	height := len(c.series)*legendRow + 8
	canvas.Rect(x0, y0, width, height, "fill:white;fill-opacity:0.8;stroke:#ccc")
	for i, s := range c.series {
		y := y0 + 4 + legendRow/2 + i*legendRow
		canvas.Line(x0+6, y, x0+6+legendSwatch, y, "stroke-width:1.5;stroke:"+s.Color)
		canvas.Text(x0+12+legendSwatch, y+fontSize/3, s.Label)
	}
}

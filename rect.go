package absorb

import (
	"iter"
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle. Width and height may be negative, which
// [MapRect] uses to express a flipped axis.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle spanned by p0 and p1, with
// non-negative width and height.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// Width returns X1 − X0. It may be negative.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0. It may be negative.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing r and pt. Starting from
// the zero-size rectangle of one point, repeated calls yield the bounding box
// of a set of points.
//
// r must have non-negative width and height.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate moves every edge outwards, by width horizontally and by height
// vertically.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Pad inflates r by frac of its width and height on every side. This is the
// margin that axis limits keep around the data.
func (r Rect) Pad(frac float64) Rect {
	return r.Inflate(frac*r.Width(), frac*r.Height())
}

// ClampFinite limits every coordinate to ±MaxFloat64. Bounds computed from
// finite data can still overflow once padded.
func (r Rect) ClampFinite() Rect {
	clamp := func(f float64) float64 {
		return math.Max(-math.MaxFloat64, math.Min(f, math.MaxFloat64))
	}
	return Rect{X0: clamp(r.X0), Y0: clamp(r.Y0), X1: clamp(r.X1), Y1: clamp(r.Y1)}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

// Path returns the outline of r as a closed path.
func (r Rect) Path() BezPath { return slices.Collect(r.PathElements()) }

func (r Rect) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}

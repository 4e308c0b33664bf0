package absorb

// CubicBez is a cubic Bézier segment. FitToBezPath builds one per fitted
// piece of a graph.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Hermite returns the cubic Bézier that starts at p0 with derivative d0 and
// ends at p3 with derivative d3, where the derivatives are taken with respect
// to the curve's own parameter t ∈ [0, 1].
func Hermite(p0 Point, d0 Vec2, p3 Point, d3 Vec2) CubicBez {
	return CubicBez{
		P0: p0,
		P1: p0.Translate(d0.Mul(1.0 / 3.0)),
		P2: p3.Translate(d3.Mul(-1.0 / 3.0)),
		P3: p3,
	}
}

// IsFinite reports whether all control points are finite.
func (c CubicBez) IsFinite() bool {
	return c.P0.IsFinite() && c.P1.IsFinite() && c.P2.IsFinite() && c.P3.IsFinite()
}

// Path returns the segment as a one-element subpath.
func (c CubicBez) Path() BezPath {
	return BezPath{MoveTo(c.P0), CubicTo(c.P1, c.P2, c.P3)}
}

// Eval evaluates the segment at t, in Bernstein form via Horner's scheme.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	return Point(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

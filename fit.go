package absorb

import (
	"iter"
)

// FittableCurve describes a parametrized curve in a way that allows it to be
// approximated by a Bézier path with [FitToBezPath].
type FittableCurve interface {
	// SamplePtDeriv evaluates the point and derivative at parameter t.
	//
	// Generally, t is in the range [0, 1]. Points may be non-finite; such
	// parts of the curve are left out of the fitted path.
	SamplePtDeriv(t float64) (Point, Vec2)
}

// Graph is the graph of a function over the interval [Lo, Hi], in data
// coordinates (y-up). The parameter t ∈ [0, 1] maps linearly to x.
type Graph struct {
	Func   Func
	Lo, Hi float64
}

var _ FittableCurve = Graph{}

// SamplePtDeriv implements [FittableCurve].
func (g Graph) SamplePtDeriv(t float64) (Point, Vec2) {
	x := (1-t)*g.Lo + t*g.Hi
	dx := g.Hi - g.Lo
	return Pt(x, g.Func.Eval(x)), Vec(dx, dx*g.Func.Deriv(x))
}

// TransformedCurve is a curve with an affine transformation applied to its
// points and derivatives. It is used to fit a curve directly in image space,
// so that the fitting accuracy is expressed in image units.
type TransformedCurve struct {
	Curve FittableCurve
	Aff   Affine
}

var _ FittableCurve = TransformedCurve{}

// SamplePtDeriv implements [FittableCurve].
func (tc TransformedCurve) SamplePtDeriv(t float64) (Point, Vec2) {
	p, d := tc.Curve.SamplePtDeriv(t)
	return p.Transform(tc.Aff), tc.Aff.Linear(d)
}

// maxFitDepth bounds the number of bisections of the parameter range, which
// bounds the output to 2^maxFitDepth cubics.
const maxFitDepth = 16

// FitToBezPath approximates a curve with a sequence of cubic Béziers.
//
// Each cubic is the Hermite interpolant of its range: it matches the source's
// points and derivatives at both ends exactly. A range is bisected until the
// cubic is within accuracy of the source at its quarter points and midpoint.
// Ranges whose endpoints are both non-finite are dropped, splitting the output
// into several subpaths. accuracy must be positive.
func FitToBezPath(source FittableCurve, accuracy float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		fitToBezPathRec(source, 0.0, 1.0, accuracy, 0, yield, true)
	}
}

func fitToBezPathRec(
	source FittableCurve,
	start float64,
	end float64,
	accuracy float64,
	depth int,
	yield func(PathElement) bool,
	needMove bool,
) (cont, needMoveRet bool) {
	p0, d0 := source.SamplePtDeriv(start)
	p3, d3 := source.SamplePtDeriv(end)
	ok0 := p0.IsFinite() && d0.IsFinite()
	ok3 := p3.IsFinite() && d3.IsFinite()

	// Close to overflow the control points can be infinite even though the
	// endpoints aren't.
	ok := ok0 && ok3
	var c CubicBez
	if ok {
		dt := end - start
		c = Hermite(p0, d0.Mul(dt), p3, d3.Mul(dt))
		ok = c.IsFinite()
	}

	switch {
	case !ok0 && !ok3:
		return true, true
	case ok && (depth >= maxFitDepth || hermiteFits(source, c, start, end, accuracy)):
		if needMove {
			if !yield(MoveTo(c.P0)) {
				return false, true
			}
		}
		return yield(CubicTo(c.P1, c.P2, c.P3)), false
	case depth >= maxFitDepth:
		return true, true
	}

	t := 0.5 * (start + end)
	cont, needMove = fitToBezPathRec(source, start, t, accuracy, depth+1, yield, needMove)
	if !cont {
		return false, needMove
	}
	return fitToBezPathRec(source, t, end, accuracy, depth+1, yield, needMove)
}

func hermiteFits(source FittableCurve, c CubicBez, start, end, accuracy float64) bool {
	for _, s := range [...]float64{0.25, 0.5, 0.75} {
		want, _ := source.SamplePtDeriv(start + s*(end-start))
		// Written so that NaN distances fail the check.
		if !(want.Distance(c.Eval(s)) <= accuracy) {
			return false
		}
	}
	return true
}

// Polyline returns the path that connects the points (xs[i], ys[i]) with
// straight lines. A non-finite point ends the current subpath; drawing resumes
// at the next finite point. Isolated points produce a lone MoveTo.
//
// It panics if xs and ys differ in length.
func Polyline(xs, ys []float64) BezPath {
	if len(xs) != len(ys) {
		panic("Polyline: xs and ys differ in length")
	}
	p := make(BezPath, 0, len(xs))
	pen := false
	for i := range xs {
		pt := Pt(xs[i], ys[i])
		if !pt.IsFinite() {
			pen = false
			continue
		}
		if pen {
			p.LineTo(pt)
		} else {
			p.MoveTo(pt)
			pen = true
		}
	}
	return p
}

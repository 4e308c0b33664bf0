package absorb

import (
	"math"
	"testing"
)

func TestCubicBezEval(t *testing.T) {
	const epsilon = 1e-12
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	assertNear(t, c.Eval(0), c.P0, epsilon)
	assertNear(t, c.Eval(1), c.P3, epsilon)
	// B(½) = (P0 + 3P1 + 3P2 + P3) / 8
	assertNear(t, c.Eval(0.5), Pt(2, 1.5), epsilon)
}

func TestHermite(t *testing.T) {
	const epsilon = 1e-12
	// The Hermite interpolant of a cubic polynomial is the polynomial itself.
	f := func(x float64) float64 { return x*x*x - 2*x }
	df := func(x float64) float64 { return 3*x*x - 2 }
	lo, hi := -1.0, 2.0
	dx := hi - lo
	c := Hermite(Pt(lo, f(lo)), Vec(dx, dx*df(lo)), Pt(hi, f(hi)), Vec(dx, dx*df(hi)))
	for _, s := range []float64{0, 0.1, 0.25, 0.5, 0.8, 1} {
		x := lo + s*dx
		assertNear(t, c.Eval(s), Pt(x, f(x)), epsilon*100)
	}
}

func TestCubicBezIsFinite(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 5), Pt(3, -2), Pt(4, 1)}
	if !c.IsFinite() {
		t.Errorf("%v reported as non-finite", c)
	}
	c.P2.Y = math.Inf(-1)
	if c.IsFinite() {
		t.Errorf("%v reported as finite", c)
	}
	c.P2.Y = math.NaN()
	if c.IsFinite() {
		t.Errorf("%v reported as finite", c)
	}
}

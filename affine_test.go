package absorb

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Scale(1, 1)), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Scale(1, -1)), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Translate(Vec(1, 1)).Mul(Scale(2, 3))), Pt(7, 13), epsilon)
	assertNear(t, p.Transform(Scale(2, 3).Mul(Translate(Vec(1, 1)))), Pt(8, 15), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineLinear(t *testing.T) {
	a := Affine{1, 2, 3, 4, 5, 6}
	v := Vec(0.5, -2)
	// The image of a vector is the difference of the images of its ends.
	want := Pt(1, 1).Translate(v).Transform(a).Sub(Pt(1, 1).Transform(a))
	if got := a.Linear(v); got.Sub(want).Hypot() > 1e-12 {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMapRect(t *testing.T) {
	const epsilon = 1e-9
	// Data space [0, 2]×[0, 50], y-up, into a 100×200 image at (10, 20),
	// y-down.
	data := Rect{0, 0, 2, 50}
	img := Rect{X0: 10, Y0: 220, X1: 110, Y1: 20}
	aff := MapRect(data, img)

	assertNear(t, Pt(0, 0).Transform(aff), Pt(10, 220), epsilon)
	assertNear(t, Pt(2, 50).Transform(aff), Pt(110, 20), epsilon)
	assertNear(t, Pt(1, 25).Transform(aff), Pt(60, 120), epsilon)
	assertNear(t, Pt(0, 50).Transform(aff), Pt(10, 20), epsilon)

	// An offset source.
	aff = MapRect(Rect{-1, 10, 1, 20}, Rect{0, 0, 100, 100})
	assertNear(t, Pt(-1, 10).Transform(aff), Pt(0, 0), epsilon)
	assertNear(t, Pt(0, 15).Transform(aff), Pt(50, 50), epsilon)

	if aff := MapRect(Rect{1, 1, 1, 2}, img); !math.IsInf(aff.N0, 1) {
		t.Errorf("mapping a zero-width rectangle: got x scale %v, want +Inf", aff.N0)
	}
}

package absorb

import (
	"math"
	"testing"
)

func TestHasSegments(t *testing.T) {
	var p BezPath
	if p.HasSegments() {
		t.Error("empty path has segments")
	}
	p.MoveTo(Pt(0, 0))
	p.ClosePath()
	if p.HasSegments() {
		t.Error("MoveTo/ClosePath path has segments")
	}
	p.LineTo(Pt(1, 1))
	if !p.HasSegments() {
		t.Error("path with LineTo has no segments")
	}
}

func TestEndPoint(t *testing.T) {
	for _, tc := range []struct {
		el   PathElement
		want Point
		ok   bool
	}{
		{MoveTo(Pt(1, 2)), Pt(1, 2), true},
		{LineTo(Pt(3, 4)), Pt(3, 4), true},
		{CubicTo(Pt(0, 0), Pt(1, 1), Pt(5, 6)), Pt(5, 6), true},
		{ClosePath(), Point{}, false},
	} {
		got, ok := tc.el.EndPoint()
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s: got (%s, %t), want (%s, %t)", tc.el, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSVGSingle(t *testing.T) {
	var path BezPath = CubicBez{
		Pt(10.0, 10.0),
		Pt(20.0, 20.0),
		Pt(30.0, 30.0),
		Pt(40.0, 40.0),
	}.Path()
	want := "M10,10 C20,20 30,30 40,40"
	got := path.SVG(SVGOptions{})
	diff(t, want, got)
}

func TestSVGTwoMove(t *testing.T) {
	var path BezPath
	path.MoveTo(Pt(10, 10))
	path.CubicTo(Pt(20, 20), Pt(30, 30), Pt(40, 40))
	path.MoveTo(Pt(50, 50))
	path.LineTo(Pt(10, 10))
	path.ClosePath()
	want := "M10,10 C20,20 30,30 40,40 M50,50 L10,10 Z"
	got := path.SVG(SVGOptions{})
	diff(t, want, got)
}

func TestSVGPrecision(t *testing.T) {
	var path BezPath
	path.MoveTo(Pt(1.0/3.0, 2))
	path.LineTo(Pt(-0.0001, 2.5))
	path.LineTo(Pt(10.126, -7.999))

	diff(t, "M0.33,2 L0,2.5 L10.13,-8", path.SVG(SVGOptions{MaxPrecision: 2}))
	diff(t, "M0.3333333333333333,2 L-0.0001,2.5 L10.126,-7.999", path.SVG(SVGOptions{}))
}

func TestBezPathIsFinite(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 1))
	p.ClosePath()
	if !p.IsFinite() {
		t.Error("finite path reported as non-finite")
	}
	q := append(p[:len(p):len(p)], LineTo(Pt(2, math.Inf(1))))
	if q.IsFinite() {
		t.Error("infinite path reported as finite")
	}
	q = append(p[:len(p):len(p)], CubicTo(Pt(0, 0), Pt(math.NaN(), 2), Pt(1, 1)))
	if q.IsFinite() {
		t.Error("NaN path reported as finite")
	}
}

func TestPathElementTransform(t *testing.T) {
	aff := Translate(Vec(1, 0)).Mul(Scale(2, -1))
	p := BezPath{
		MoveTo(Pt(1, 1)),
		CubicTo(Pt(2, 2), Pt(3, 3), Pt(4, 4)),
		ClosePath(),
	}
	want := BezPath{
		MoveTo(Pt(3, -1)),
		CubicTo(Pt(5, -2), Pt(7, -3), Pt(9, -4)),
		ClosePath(),
	}
	diff(t, want, p.Transform(aff))
	diff(t, "MoveTo((1, 1))", p[0].String())
	diff(t, "ClosePath", p[2].String())
}

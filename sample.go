package absorb

import (
	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultLo and DefaultHi bound the default sample vector.
	DefaultLo = 0.0
	DefaultHi = 2.0
	// DefaultSampleCount is the number of points in the default sample vector.
	DefaultSampleCount = 50
	// DefaultOffset is the X0 shared by the default family of curves.
	DefaultOffset = 1.0
)

// DefaultCoefficients returns the coefficients of the default family of
// curves.
func DefaultCoefficients() []float64 {
	return []float64{1, 2, 3, 4}
}

// Linspace returns n evenly spaced values over the closed interval [lo, hi].
//
// The first value is exactly lo and, for n > 1, the last value is exactly hi.
// For n == 1 it returns []float64{lo}; for n <= 0 it returns an empty slice.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}
	// Span computes lo + i·step like numpy; only the last value needs pinning.
	xs := floats.Span(make([]float64, n), lo, hi)
	xs[n-1] = hi
	return xs
}

// DefaultSamples returns 50 evenly spaced points over [0, 2].
func DefaultSamples() []float64 {
	return Linspace(DefaultLo, DefaultHi, DefaultSampleCount)
}

// Curve is a function evaluated over a sample vector. X and Y have equal
// length; X is shared between the curves of a family and must not be
// modified.
type Curve struct {
	Func Func
	X    []float64
	Y    []float64
}

// NewCurve evaluates f at every element of xs.
func NewCurve(f Func, xs []float64) Curve {
	return Curve{
		Func: f,
		X:    xs,
		Y:    f.EvalSlice(xs),
	}
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.X) }

// Points returns the samples as points.
func (c Curve) Points() []Point {
	pts := make([]Point, len(c.X))
	for i := range c.X {
		pts[i] = Pt(c.X[i], c.Y[i])
	}
	return pts
}

// Min returns the sample with the smallest value and its index. NaN values
// are ignored unless all values are NaN. It returns false for an empty curve.
func (c Curve) Min() (Point, int, bool) {
	if len(c.Y) == 0 {
		return Point{}, 0, false
	}
	i := floats.MinIdx(c.Y)
	return Pt(c.X[i], c.Y[i]), i, true
}

// Max is like [Curve.Min] but returns the largest value.
func (c Curve) Max() (Point, int, bool) {
	if len(c.Y) == 0 {
		return Point{}, 0, false
	}
	i := floats.MaxIdx(c.Y)
	return Pt(c.X[i], c.Y[i]), i, true
}

// Finite reports whether every sample of the curve is finite.
func (c Curve) Finite() bool {
	for i := range c.Y {
		if !Pt(c.X[i], c.Y[i]).IsFinite() {
			return false
		}
	}
	return true
}

// Family evaluates one curve per coefficient, in order, all sharing xs and
// the offset x0.
func Family(xs []float64, coes []float64, x0 float64) []Curve {
	out := make([]Curve, len(coes))
	for i, coe := range coes {
		out[i] = NewCurve(Func{Coe: coe, X0: x0}, xs)
	}
	return out
}

// DefaultFamily returns the four curves coe ∈ {1, 2, 3, 4}, X0 = 1 over
// [DefaultSamples].
func DefaultFamily() []Curve {
	return Family(DefaultSamples(), DefaultCoefficients(), DefaultOffset)
}

// Package absorb evaluates and draws the family of functions
//
//	F(x, coe, X0) = exp(coe·(x−X0)) + coe·(X0−x) − 1
//
// over a linearly spaced sample vector.
//
// # Evaluation
//
// [F] and [Deriv] are the function and its derivative. [Func] binds a
// coefficient and offset, and [Func.EvalSlice] evaluates it element-wise. All
// evaluation is plain float64 arithmetic: nothing is validated, an exponential
// that overflows yields +Inf, and NaN propagates. Callers that care must check
// with [Curve.Finite].
//
// [Linspace] builds sample vectors with exact endpoints. [Family] evaluates one
// [Curve] per coefficient over a shared sample vector. [DefaultFamily] is the
// four curves coe ∈ {1, 2, 3, 4}, X0 = 1 over 50 points in [0, 2].
//
// # Paths
//
// Curves are drawn as Bézier paths. A [BezPath] is a slice of [PathElement]
// values ([MoveTo], [LineTo], [CubicTo], [ClosePath]) and can be written as SVG
// path data with [BezPath.SVG]. [Polyline] connects samples with straight
// lines, exactly like a sampled plot. [FitToBezPath] instead approximates the
// true function, via [Graph], with piecewise cubic Hermite curves to a given
// accuracy, which produces a smooth rendering independent of the sample count.
//
// Paths are built in data coordinates (y-up) and mapped into an image with an
// [Affine], typically one made by [MapRect].
package absorb

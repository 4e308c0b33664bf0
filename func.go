package absorb

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// F evaluates exp(coe·(x−x0)) + coe·(x0−x) − 1.
//
// F is the gap between the exponential e^u and its tangent line 1+u at u = 0,
// with u = coe·(x−x0). It is zero at x = x0 and for coe = 0, and non-negative
// everywhere else. No validation is performed: when coe·(x−x0) exceeds
// roughly 709.78 the exponential overflows to +Inf, and NaN inputs produce NaN.
func F(x, coe, x0 float64) float64 {
	return math.Exp(coe*(x-x0)) + coe*(-x+x0) - 1
}

// Deriv evaluates dF/dx, which is coe·(exp(coe·(x−x0)) − 1).
func Deriv(x, coe, x0 float64) float64 {
	return coe * (math.Exp(coe*(x-x0)) - 1)
}

// Func is F with its coefficient and offset bound.
//
// The zero value has Coe = 0 and evaluates to 0 everywhere.
type Func struct {
	// Coe controls the exponential growth rate.
	Coe float64
	// X0 is the position of the function's zero.
	X0 float64
}

// Eval evaluates the function at x.
func (f Func) Eval(x float64) float64 {
	return F(x, f.Coe, f.X0)
}

// Deriv evaluates the derivative of the function at x.
func (f Func) Deriv(x float64) float64 {
	return Deriv(x, f.Coe, f.X0)
}

// EvalSlice evaluates the function at every element of xs and returns the
// results in a new slice of the same length. xs is not modified.
func (f Func) EvalSlice(xs []float64) []float64 {
	return vec.Map(f.Eval, xs)
}

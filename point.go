package absorb

import (
	"fmt"
	"math"
)

// Point is a location in a 2D coordinate system. Data coordinates are y-up,
// chart coordinates are y-down; an [Affine] maps between the two.
type Point struct {
	X float64
	Y float64
}

// Vec2 is a displacement, such as the derivative of a curve.
type Vec2 struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (pt Point) String() string { return fmt.Sprintf("(%g, %g)", pt.X, pt.Y) }
func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

// Transform maps pt through aff.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// IsFinite reports whether both coordinates are neither infinite nor NaN.
// Only finite points are drawn.
func (pt Point) IsFinite() bool { return isFinite(pt.X) && isFinite(pt.Y) }

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// IsFinite reports whether both components are neither infinite nor NaN.
func (v Vec2) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) }

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }

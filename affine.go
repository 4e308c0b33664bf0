package absorb

// Affine is an affine transform with coefficients (a, b, c, d, e, f),
// representing the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Charts use it to map data coordinates into pixels.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale returns a transform that scales x and y independently.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate returns a transform that moves points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Mul returns the composition aff * o, which applies o first.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Linear applies only the linear part of aff to v. Derivatives transform this
// way.
func (aff Affine) Linear(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

// MapRect returns the transform that takes src to dst, corner to corner:
// (src.X0, src.Y0) goes to (dst.X0, dst.Y0) and (src.X1, src.Y1) to
// (dst.X1, dst.Y1). Swapping dst's Y0 and Y1 flips the y axis, which is how
// y-up data is mapped into a y-down image.
//
// The coefficients are non-finite when src has zero width or height.
func MapRect(src, dst Rect) Affine {
	scale := Scale(dst.Width()/src.Width(), dst.Height()/src.Height())
	return Translate(Vec(dst.X0, dst.Y0)).
		Mul(scale).
		Mul(Translate(Vec(-src.X0, -src.Y0)))
}

package cityplan

import "math"

// Vec2 represents a 2D displacement vector.
// Unlike Point which represents a position, Vec2 represents a direction and
// magnitude. The distinction keeps offset and normal computations readable.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0; its sign tells
// whether w lies counter-clockwise (positive) or clockwise (negative) of v.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared length of the vector.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length < 1e-12 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the angle of the vector in radians, in (-Pi, Pi].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleBetween returns the unsigned angle between two vectors in [0, Pi].
// Zero vectors yield an angle of zero.
func (v Vec2) AngleBetween(w Vec2) float64 {
	lv := v.Length()
	lw := w.Length()
	if lv < 1e-12 || lw < 1e-12 {
		return 0
	}
	cos := v.Dot(w) / (lv * lw)
	// Clamp against rounding drift before acos.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// ToPoint converts the displacement to a position relative to the origin.
func (v Vec2) ToPoint() Point {
	return Point(v)
}

package atom

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Axis rotations, right-handed.
func (v Vec3) RotateX(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

func (v Vec3) RotateY(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

func (v Vec3) RotateZ(a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// Tilt is a fixed Euler rotation (applied X, then Y, then Z) giving each
// electron shell its own orbital plane.
type Tilt struct {
	X, Y, Z float64
}

// Apply rotates p by the tilt.
func (t Tilt) Apply(p Vec3) Vec3 {
	return p.RotateX(t.X).RotateY(t.Y).RotateZ(t.Z)
}

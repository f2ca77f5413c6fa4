package gamemath

import "math"

// Vec3 is a position or displacement in world space. The maze lies on the
// X/Z plane; Y is up and stays 0 for everything the game moves.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length returns the euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// snapEpsilon clears the sin/cos residue left by degree-to-radian conversion
// so that cardinal yaws produce exact unit axes.
const snapEpsilon = 1e-9

// YawForward rotates the local forward axis (0,0,1) about Y by yaw degrees,
// clockwise when seen from above: 90 points along +X, 180 along -Z.
func YawForward(yawDeg float64) Vec3 {
	r := yawDeg * math.Pi / 180
	return Vec3{X: snap(math.Sin(r)), Z: snap(math.Cos(r))}
}

func snap(f float64) float64 {
	if math.Abs(f) < snapEpsilon {
		return 0
	}
	return f
}

package common

import (
	"fmt"
	"math"
)

// Vec3 is a world-space vector. Y is up; X and Z span the ground plane.
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

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Horizontal returns the length of the XZ component.
func (v Vec3) Horizontal() float64 {
	return math.Hypot(v.X, v.Z)
}

// RotateYaw rotates v about the Y axis by yaw degrees. A yaw of 90 turns
// local forward (+Z) into world +X.
func (v Vec3) RotateYaw(yaw float64) Vec3 {
	s, c := math.Sincos(DegToRad(yaw))
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

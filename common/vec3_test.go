package common

import (
	"math"
	"testing"
)

func TestVec3RotateYaw(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		yaw  float64
		want Vec3
	}{
		{"identity", Vec3{X: 1, Y: 2, Z: 3}, 0, Vec3{X: 1, Y: 2, Z: 3}},
		{"forward_quarter_turn", Vec3{Z: 1}, 90, Vec3{X: 1}},
		{"right_quarter_turn", Vec3{X: 1}, 90, Vec3{Z: -1}},
		{"half_turn_keeps_y", Vec3{Y: -0.3, Z: 1}, 180, Vec3{Y: -0.3, Z: -1}},
		{"full_turn", Vec3{X: 2, Z: -1}, 360, Vec3{X: 2, Z: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.RotateYaw(tc.yaw)
			if !NearlyEqual(got.X, tc.want.X, 1e-9) || !NearlyEqual(got.Y, tc.want.Y, 1e-9) || !NearlyEqual(got.Z, tc.want.Z, 1e-9) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestVec3RotateYawPreservesLength(t *testing.T) {
	v := Vec3{X: 3, Y: 1, Z: 4}
	for yaw := -720.0; yaw <= 720; yaw += 37 {
		if got := v.RotateYaw(yaw).Length(); math.Abs(got-v.Length()) > 1e-9 {
			t.Fatalf("yaw %v: expected length %v, got %v", yaw, v.Length(), got)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	cases := map[float64]float64{0: 0, 360: 0, 370: 10, -10: 350, -725: 355}
	for in, want := range cases {
		if got := WrapDegrees(in); !NearlyEqual(got, want, 1e-9) {
			t.Fatalf("WrapDegrees(%v): expected %v, got %v", in, want, got)
		}
	}
}

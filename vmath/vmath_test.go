package vmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func TestClampAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{Pi, Pi},
		{-Pi, Pi},
		{TwoPi + 1, 1},
		{-HalfPi, -HalfPi},
		{3 * Pi, Pi},
	}
	for _, tt := range tests {
		if got := ClampAngle(tt.in); !mgl32.FloatEqualThreshold(got, tt.want, eps) {
			t.Errorf("ClampAngle(%f): Expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestWrapAngleAndQuadrant(t *testing.T) {
	if got := WrapAngle(-HalfPi); !mgl32.FloatEqualThreshold(got, 3*HalfPi, eps) {
		t.Errorf("Expected 3Pi/2, got %f", got)
	}
	if got := WrapAngle(TwoPi); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}

	quadrants := map[float32]int{0: 0, 0.1: 0, HalfPi + 0.1: 1, Pi + 0.1: 2, -0.1: 3}
	for yaw, want := range quadrants {
		if got := Quadrant(yaw); got != want {
			t.Errorf("Quadrant(%f): Expected %d, got %d", yaw, want, got)
		}
	}
}

func TestRotateYMatchesHomogRotate(t *testing.T) {
	v := mgl32.Vec3{100, -20, 300}
	for _, yaw := range []float32{0, 0.5, HalfPi, Pi, -2} {
		want := mgl32.HomogRotate3DY(yaw).Mul4x1(v.Vec4(1)).Vec3()
		got := RotateY(v, yaw)
		if !got.ApproxEqualThreshold(want, eps) {
			t.Errorf("yaw %f: Expected %v, got %v", yaw, want, got)
		}
	}
}

func TestDirection(t *testing.T) {
	if got := Direction(0, 0); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, eps) {
		t.Errorf("Expected +Z, got %v", got)
	}
	if got := Direction(0, HalfPi); !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Expected +X, got %v", got)
	}
	// Positive pitch looks up, which is -Y
	if got := Direction(HalfPi, 0); !got.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, eps) {
		t.Errorf("Expected -Y, got %v", got)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := Normalize(mgl32.Vec3{}); got != (mgl32.Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
	if got := Normalize(mgl32.Vec3{0, 0, 5}); got != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected unit Z, got %v", got)
	}
}

func TestLerpClamps(t *testing.T) {
	a, b := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 20, 30}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Expected %v, got %v", b, got)
	}
	if got := Lerp(a, b, -1); got != a {
		t.Errorf("Expected %v, got %v", a, got)
	}
	if got := Lerp(a, b, 0.5); got != (mgl32.Vec3{5, 10, 15}) {
		t.Errorf("Expected midpoint, got %v", got)
	}
}

func TestBoxRotateQuarterMatchesRotateY(t *testing.T) {
	b := Box{Min: mgl32.Vec3{-100, -512, -50}, Max: mgl32.Vec3{200, 0, 300}}
	for n := 0; n < 4; n++ {
		got := b.RotateQuarter(n)
		// Rotating both corners and re-sorting must give the same box
		p := RotateY(b.Min, float32(n)*HalfPi)
		q := RotateY(b.Max, float32(n)*HalfPi)
		want := Box{
			Min: mgl32.Vec3{min(p[0], q[0]), min(p[1], q[1]), min(p[2], q[2])},
			Max: mgl32.Vec3{max(p[0], q[0]), max(p[1], q[1]), max(p[2], q[2])},
		}
		if !got.Min.ApproxEqualThreshold(want.Min, 1e-2) || !got.Max.ApproxEqualThreshold(want.Max, 1e-2) {
			t.Errorf("n=%d: Expected %v, got %v", n, want, got)
		}
	}
}

func TestBoxContainsInclusive(t *testing.T) {
	b := Box{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{10, 10, 10}}
	if !b.Contains(mgl32.Vec3{10, 0, 5}) {
		t.Error("Expected boundary point to be contained")
	}
	if b.Contains(mgl32.Vec3{10.5, 0, 5}) {
		t.Error("Expected outside point to be rejected")
	}
	if c := b.Center(); c != (mgl32.Vec3{5, 5, 5}) {
		t.Errorf("Expected center (5,5,5), got %v", c)
	}
}

func TestCellNormal(t *testing.T) {
	tests := []struct {
		x, z int
		want mgl32.Vec3
	}{
		{1000, 512, mgl32.Vec3{1, 0, 0}},
		{20, 512, mgl32.Vec3{-1, 0, 0}},
		{512, 1000, mgl32.Vec3{0, 0, 1}},
		{512, 20, mgl32.Vec3{0, 0, -1}},
		{2048 + 1000, 512, mgl32.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		if got := CellNormal(tt.x, tt.z); got != tt.want {
			t.Errorf("CellNormal(%d,%d): Expected %v, got %v", tt.x, tt.z, tt.want, got)
		}
	}
}

func TestCellQuadrantAgreesWithNormal(t *testing.T) {
	normals := [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 0}, {0, 0, -1}, {-1, 0, 0}}
	for _, p := range [][2]int{{1000, 512}, {20, 512}, {512, 1000}, {512, 20}} {
		q := CellQuadrant(float32(p[0]), float32(p[1]))
		if normals[q] != CellNormal(p[0], p[1]) {
			t.Errorf("(%d,%d): quadrant %d disagrees with normal %v", p[0], p[1], q, CellNormal(p[0], p[1]))
		}
	}
}

func TestCellOrigin(t *testing.T) {
	if got := CellOrigin(2500); got != 2048 {
		t.Errorf("Expected 2048, got %d", got)
	}
	if got := CellCenter(2500); got != 2560 {
		t.Errorf("Expected 2560, got %d", got)
	}
}

func TestWorldMatrixSkipsZeroAngles(t *testing.T) {
	m := WorldMatrix(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{})
	if m != mgl32.Translate3D(1, 2, 3) {
		t.Errorf("Expected pure translation, got %v", m)
	}
	if got := Translation(m); got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Expected translation (1,2,3), got %v", got)
	}
}

func TestRotYXZMatchesWorldMatrix(t *testing.T) {
	angles := mgl32.Vec3{0.3, 1.1, -0.4}
	want := WorldMatrix(mgl32.Vec3{}, angles)
	got := RotYXZ(angles).Mat4()
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAimRotationTurnsForwardToDirection(t *testing.T) {
	pitch, yaw := float32(0.4), float32(-0.7)
	got := AimRotation(pitch, yaw).Rotate(mgl32.Vec3{0, 0, 1})
	// Aim pitch follows +Y, Direction pitch follows -Y
	want := Direction(-pitch, yaw)
	if !got.ApproxEqualThreshold(want, eps) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

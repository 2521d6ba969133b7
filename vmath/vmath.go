package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Pi     = float32(math.Pi)
	TwoPi  = 2 * Pi
	HalfPi = Pi / 2
)

// Up is the world up axis used for view matrices; world Y grows downward
var Up = mgl32.Vec3{0, -1, 0}

// Lerp moves a toward b by t, t clamped to [0,1]
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}

// Normalize returns the unit vector of v, or the zero vector when v has no length
// mgl32.Vec3.Normalize divides by zero on degenerate input
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// RotateY rotates v around the Y axis by yaw, matching mgl32.HomogRotate3DY
func RotateY(v mgl32.Vec3, yaw float32) mgl32.Vec3 {
	s, c := sincos(yaw)
	return mgl32.Vec3{v[0]*c + v[2]*s, v[1], -v[0]*s + v[2]*c}
}

// Direction returns the unit facing vector for a pitch/yaw pair
// Pitch is positive looking up (toward -Y)
func Direction(pitch, yaw float32) mgl32.Vec3 {
	sp, cp := sincos(pitch)
	sy, cy := sincos(yaw)
	return mgl32.Vec3{sy * cp, -sp, cy * cp}
}

// ClampAngle wraps an angle into (-Pi, Pi]
func ClampAngle(a float32) float32 {
	for a > Pi {
		a -= TwoPi
	}
	for a <= -Pi {
		a += TwoPi
	}
	return a
}

// WrapAngle wraps an angle into [0, 2Pi)
func WrapAngle(a float32) float32 {
	for a < 0 {
		a += TwoPi
	}
	for a >= TwoPi {
		a -= TwoPi
	}
	return a
}

// Quadrant returns the quarter-turn index (0..3) of a yaw, truncated toward zero
func Quadrant(yaw float32) int {
	return int(WrapAngle(yaw)/HalfPi) & 3
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

package vmath

import "github.com/go-gl/mathgl/mgl32"

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// RotYXZ builds the orientation quaternion for Euler angles applied yaw, then pitch, then roll
// angles holds pitch in X, yaw in Y, roll in Z
func RotYXZ(angles mgl32.Vec3) mgl32.Quat {
	qy := mgl32.QuatRotate(angles[1], axisY)
	qx := mgl32.QuatRotate(angles[0], axisX)
	qz := mgl32.QuatRotate(angles[2], axisZ)
	return qy.Mul(qx).Mul(qz)
}

// AimRotation builds the joint-local rotation that turns +Z toward a direction d with
// pitch = asin(d.y) and yaw = atan2(d.x, d.z)
func AimRotation(pitch, yaw float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, axisY).Mul(mgl32.QuatRotate(-pitch, axisX))
}

// WorldMatrix composes translation and orientation in the order used for entities:
// translate, rotate Y, rotate X, rotate Z; zero angles are skipped
func WorldMatrix(pos, angles mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(pos[0], pos[1], pos[2])
	if angles[1] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(angles[1]))
	}
	if angles[0] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DX(angles[0]))
	}
	if angles[2] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(angles[2]))
	}
	return m
}

// MatrixRotation extracts the rotation part of an affine matrix
func MatrixRotation(m mgl32.Mat4) mgl32.Quat {
	return mgl32.Mat4ToQuat(m).Normalize()
}

// Translation returns the translation column of an affine matrix
func Translation(m mgl32.Mat4) mgl32.Vec3 {
	return m.Col(3).Vec3()
}

package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/vmath"
)

// AimRange bounds accepted aim angles in joint space
// Pitch must lie in (PitchMin, PitchMax] and yaw in (YawMin, YawMax]
type AimRange struct {
	PitchMin, PitchMax float32
	YawMin, YawMax     float32
}

// Aim solves the joint-local rotation turning joint toward the center of target's bounds
// Bounds come from the actor registry, so they reflect the previous tick
// When no solution exists ok is false, rot is the identity and abs the entity facing
func (c *Controller) Aim(target, joint int, rng AimRange) (rot, abs mgl32.Quat, ok bool) {
	if target != constant.None {
		if box, found := c.env.Actors.Box(target); found {
			m := c.Anim.Joint(c.Matrix(), joint)
			local := m.Inv().Mul4x1(box.Center().Vec4(1)).Vec3()
			delta := vmath.Normalize(local)

			if delta != (mgl32.Vec3{}) {
				yaw := vmath.ClampAngle(float32(math.Atan2(float64(delta[0]), float64(delta[2]))))
				pitch := vmath.ClampAngle(float32(math.Asin(float64(mgl32.Clamp(delta[1], -1, 1)))))

				if pitch > rng.PitchMin && pitch <= rng.PitchMax && yaw > rng.YawMin && yaw <= rng.YawMax {
					rot = vmath.AimRotation(pitch, yaw)
					return rot, vmath.MatrixRotation(m).Mul(rot), true
				}
			}
		}
	}
	return mgl32.QuatIdent(), vmath.RotYXZ(c.Angle), false
}

package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/parameter"
)

// Params tunes projection, framing and smoothing
type Params struct {
	FOV      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Standoff float32 `yaml:"standoff"`

	FollowRate float32 `yaml:"follow_rate"`
	TargetRate float32 `yaml:"target_rate"`

	PointerSensitivity float32 `yaml:"pointer_sensitivity"`
	StickSpeed         float32 `yaml:"stick_speed"`
}

// DefaultParams returns the compiled-in tuning
func DefaultParams() Params {
	return Params{
		FOV:                parameter.CameraFOV,
		Near:               parameter.CameraNear,
		Far:                parameter.CameraFar,
		Standoff:           parameter.CameraStandoff,
		FollowRate:         parameter.CameraFollowRate,
		TargetRate:         parameter.CameraTargetRate,
		PointerSensitivity: parameter.CameraPointerSensitivity,
		StickSpeed:         parameter.CameraStickSpeed,
	}
}

// Projection returns the perspective matrix for a viewport of the given aspect ratio
func (p Params) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), aspect, p.Near, p.Far)
}

// Package anim advances skeletal animation clips from the level animation table
package anim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/parameter"
	"github.com/lixenwraith/roomsim/vmath"
)

// Player holds the animation state of one entity
// Frame indices are absolute into the level frame space; the current frame stays inside
// [FrameStart, FrameEnd] of the current clip
type Player struct {
	lvl   *level.Level
	model *level.Model

	Index       int
	State       int
	TargetState int
	Frame       int
	FramePrev   int
	Delta       float32
	Ended       bool

	// Offset and Jump are the clip's root-motion commands, applied once at clip end
	Offset mgl32.Vec3
	Jump   mgl32.Vec3

	// time counts frames elapsed since FrameStart
	time float32
}

// New creates a player for model starting on the model's first clip
// A nil model yields an inert player
func New(l *level.Level, model *level.Model) *Player {
	p := &Player{lvl: l, model: model, Index: -1}
	if model == nil {
		return p
	}
	if model.MeshCount > parameter.MaxJoints {
		panic(fmt.Sprintf("anim: model has %d meshes, joint budget is %d", model.MeshCount, parameter.MaxJoints))
	}
	a := &l.Animations[model.Animation]
	p.Set(model.Animation, a.FrameStart)
	p.TargetState = p.State
	return p
}

// Valid reports whether the player drives a model
func (p *Player) Valid() bool {
	return p.model != nil
}

// Model returns the animated model, nil for inert players
func (p *Player) Model() *level.Model {
	return p.model
}

// Animation returns the current clip
func (p *Player) Animation() *level.Animation {
	return &p.lvl.Animations[p.Index]
}

// Set switches to clip index at the given absolute frame
// The frame is treated as not yet visited so commands on it fire on the next Update
func (p *Player) Set(index, frame int) {
	a := &p.lvl.Animations[index]
	if frame < a.FrameStart || frame > a.FrameEnd {
		panic(fmt.Sprintf("anim: frame %d outside [%d,%d] of animation %d", frame, a.FrameStart, a.FrameEnd, index))
	}

	p.Index = index
	p.State = a.State
	p.Frame = frame
	p.FramePrev = frame - 1
	p.time = float32(frame - a.FrameStart)
	p.Delta = 0

	p.Offset, p.Jump = mgl32.Vec3{}, mgl32.Vec3{}
	for _, c := range a.Commands {
		switch c.Kind {
		case level.CmdOffset:
			p.Offset = p.Offset.Add(c.Vector)
		case level.CmdJump:
			p.Jump = p.Jump.Add(c.Vector)
		}
	}
}

// Update advances time by dt seconds
// Reaching past the last frame clamps to it and raises Ended until the next Update
func (p *Player) Update(dt float32) {
	p.Ended = false
	if p.model == nil {
		return
	}

	a := p.Animation()
	p.time += dt * parameter.AnimationFPS

	frame := a.FrameStart + int(p.time)
	if frame > a.FrameEnd {
		frame = a.FrameEnd
		p.Ended = true
	}
	p.Frame = frame
	p.Delta = p.fraction(a)
}

// fraction returns the position between the two keyframes around the current time
func (p *Player) fraction(a *level.Animation) float32 {
	if p.Ended {
		return 0
	}
	rate := float32(a.FrameRate)
	k := float32(int(p.time) / a.FrameRate)
	d := (p.time - k*rate) / rate
	if d < 0 || d >= 1 {
		return 0
	}
	return d
}

// Visit marks the current frame as handled so its commands do not fire again
func (p *Player) Visit() {
	p.FramePrev = p.Frame
}

// IsFrameActive reports whether frame was reached by the last Update
func (p *Player) IsFrameActive(frame int) bool {
	return frame > p.FramePrev && frame <= p.Frame
}

// Successor returns the clip and frame that follow the current clip
// A state change for TargetState whose range covers the current frame wins over the default
func (p *Player) Successor() (index, frame int) {
	a := p.Animation()
	if p.TargetState != p.State {
		for _, sc := range a.StateChanges {
			if sc.State != p.TargetState {
				continue
			}
			for _, r := range sc.Ranges {
				if p.Frame >= r.Low && p.Frame <= r.High {
					return r.NextAnimation, r.NextFrame
				}
			}
		}
	}
	return a.NextAnimation, a.NextFrame
}

// PlayNext switches to the successor clip
func (p *Player) PlayNext() {
	p.Set(p.Successor())
}

// keyframes returns the pair of poses around the current time
func (p *Player) keyframes() (k0, k1 *level.Keyframe) {
	a := p.Animation()
	k := (p.Frame - a.FrameStart) / a.FrameRate
	last := len(a.Frames) - 1
	if k > last {
		k = last
	}
	n := k + 1
	if n > last {
		n = last
	}
	return &a.Frames[k], &a.Frames[n]
}

// LocalBox returns the interpolated pose bounds in model space
func (p *Player) LocalBox() vmath.Box {
	if p.model == nil {
		return vmath.Box{}
	}
	k0, k1 := p.keyframes()
	return k0.Box.Lerp(k1.Box, p.Delta)
}

// BoundingBox returns the pose bounds turned to the nearest quarter of yaw and placed at pos
func (p *Player) BoundingBox(pos mgl32.Vec3, yaw float32) vmath.Box {
	return p.LocalBox().RotateQuarter(vmath.Quadrant(yaw)).Translate(pos)
}

// Joints computes the world matrix of every model part under base into out
// out must hold at least MeshCount matrices; the filled prefix is returned
func (p *Player) Joints(base mgl32.Mat4, out []mgl32.Mat4) []mgl32.Mat4 {
	if p.model == nil {
		return out[:0]
	}
	n := p.model.MeshCount
	if n > len(out) {
		panic(fmt.Sprintf("anim: %d joints do not fit in %d slots", n, len(out)))
	}

	k0, k1 := p.keyframes()
	for i := 0; i < n; i++ {
		node := &p.model.Nodes[i]
		offset := node.Offset
		if i == 0 {
			offset = offset.Add(vmath.Lerp(k0.Offset, k1.Offset, p.Delta))
		}
		rot := mgl32.QuatSlerp(
			vmath.RotYXZ(angle(k0, i)),
			vmath.RotYXZ(angle(k1, i)),
			p.Delta,
		)
		local := mgl32.Translate3D(offset[0], offset[1], offset[2]).Mul4(rot.Mat4())

		parent := base
		if node.Parent >= 0 {
			parent = out[node.Parent]
		}
		out[i] = parent.Mul4(local)
	}
	return out[:n]
}

// Joint computes the world matrix of a single part under base
func (p *Player) Joint(base mgl32.Mat4, index int) mgl32.Mat4 {
	var joints [parameter.MaxJoints]mgl32.Mat4
	m := p.Joints(base, joints[:])
	if index < 0 || index >= len(m) {
		return base
	}
	return m[index]
}

func angle(k *level.Keyframe, i int) mgl32.Vec3 {
	if i < len(k.Angles) {
		return k.Angles[i]
	}
	return mgl32.Vec3{}
}

package controller

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/parameter"
	"github.com/lixenwraith/roomsim/status"
	"github.com/lixenwraith/roomsim/vmath"
)

// Update advances the entity by dt seconds
func (c *Controller) Update(dt float32) {
	c.UpdateAnimation(dt, true)
}

// UpdateAnimation advances the animation and interprets its commands
// At clip end the pending offset and jump are applied, the successor clip starts and
// the trigger chain moves one link, all within this call
func (c *Controller) UpdateAnimation(dt float32, commands bool) {
	p := c.Anim
	if !p.Valid() {
		return
	}
	p.Update(dt)
	a := p.Animation()

	if commands {
		c.runCommands(a)
	}

	if p.Frame != p.FramePrev {
		c.Hooks.Custom(p.Frame, p.FramePrev)
	}

	if !p.Ended {
		p.Visit()
		return
	}

	if p.Offset != (mgl32.Vec3{}) {
		c.Hooks.Offset(p.Offset)
	}
	if p.Jump != (mgl32.Vec3{}) {
		c.Hooks.Jump(p.Jump)
	}
	c.env.Stats.Inc(status.AnimEnds)
	p.PlayNext()
	c.ActivateNext()
}

func (c *Controller) runCommands(a *level.Animation) {
	p := c.Anim
	for _, cmd := range a.Commands {
		switch cmd.Kind {
		case level.CmdEmpty:
			if p.Ended {
				c.Hooks.Empty()
			}
		case level.CmdKill:
			if p.Ended {
				c.Hooks.Kill()
			}
		case level.CmdSound:
			if p.IsFrameActive(cmd.Frame) {
				c.PlaySound(cmd.Code&constant.EffectCodeMask, c.Pos, constant.SoundPan)
			}
		case level.CmdEffect:
			if p.IsFrameActive(cmd.Frame) {
				c.effect(cmd.Code & constant.EffectCodeMask)
			}
		}
	}
}

func (c *Controller) effect(code int) {
	switch code {
	case constant.EffectRotate180:
		c.Angle[1] = vmath.ClampAngle(c.Angle[1] + vmath.Pi)
	case constant.EffectBubbles:
		c.DoBubbles()
	case constant.EffectHandsFree:
	default:
		c.env.Stats.Inc(status.UnknownEffects)
		c.log.WithFields(logrus.Fields{"code": code, "animation": c.Anim.Index}).
			Warn("unknown effect command")
	}
}

// DoBubbles emits a bubble sound on a fraction of calls
func (c *Controller) DoBubbles() {
	if c.env.Rand.Float32() >= parameter.BubbleChance {
		return
	}
	c.PlaySound(constant.SoundBubble, c.Pos, constant.SoundPan)
}

// PlaySound forwards to the audio collaborator
func (c *Controller) PlaySound(id int, pos mgl32.Vec3, flags constant.SoundFlags) {
	c.env.Sound.PlaySound(id, pos, flags)
}

package controller

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/status"
	"github.com/lixenwraith/roomsim/trigger"
)

// Cursor returns the current trigger-chain position, trigger.None when idle
func (c *Controller) Cursor() trigger.Ref {
	return c.cursor
}

// Activate takes cmd as the chain cursor; generic entities always accept
func (c *Controller) Activate(cmd trigger.Ref) bool {
	c.cursor = cmd
	return true
}

// ActivateNext dispatches the link after the cursor
// Secret links are consumed in place and dispatch continues with the link after them;
// chains must be finite and acyclic, which arena-built chains are
// The cursor clears once the receiving actor accepts, or when nobody handles the link
func (c *Controller) ActivateNext() {
	arena := c.env.Level.Triggers
	if c.cursor == trigger.None {
		return
	}
	ref := arena.Next(c.cursor)
	if ref == trigger.None {
		c.cursor = trigger.None
		return
	}
	next := arena.At(ref)

	var target Actor
	switch next.Action {
	case trigger.ActionActivate:
		target = c.env.Actors.Actor(next.Value)
		if target == nil {
			c.log.WithFields(logrus.Fields{"target": next.Value, "link": ref}).
				Warn("activation for entity without controller")
		}
	case trigger.ActionCameraSwitch, trigger.ActionCameraTarget:
		target = c.env.Actors.Camera()
	case trigger.ActionSecret:
		if c.env.Level.Secrets.Set(next.Value) {
			c.env.Stats.Inc(status.SecretsFound)
			c.PlaySound(constant.SoundSecret, c.Pos, 0)
		}
		c.cursor = ref
		c.ActivateNext()
		return
	}

	if target == nil {
		c.cursor = trigger.None
		return
	}
	c.env.Stats.Inc(status.ChainDispatch)
	if target.Activate(ref) {
		c.cursor = trigger.None
	}
}

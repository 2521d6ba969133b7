package camera

import (
	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/controller"
)

// Tracked is the entity a rig frames
type Tracked interface {
	Body() *controller.Controller
	// LookTarget is the entity the subject wants framed, constant.None for none
	LookTarget() int
	// SetViewTarget receives the look-at entity the rig settled on this tick
	SetViewTarget(entity int)
	// HoldsBackFlip reports the idle back-flip pose with empty hands
	HoldsBackFlip() bool
}

// Follow adapts a plain controller into a Tracked subject
type Follow struct {
	*controller.Controller

	Target     int
	ViewTarget int

	// BackFlipState is the animation state of the back flip, constant.None if the model has none
	BackFlipState int
	HandsBusy     bool
}

// NewFollow wraps c with no look target, taking the back-flip state from c's model
func NewFollow(c *controller.Controller) *Follow {
	f := &Follow{
		Controller:    c,
		Target:        constant.None,
		ViewTarget:    constant.None,
		BackFlipState: constant.None,
	}
	if m := c.Anim.Model(); m != nil {
		f.BackFlipState = m.BackFlipState
	}
	return f
}

func (f *Follow) Body() *controller.Controller { return f.Controller }

func (f *Follow) LookTarget() int { return f.Target }

func (f *Follow) SetViewTarget(entity int) { f.ViewTarget = entity }

func (f *Follow) HoldsBackFlip() bool {
	return f.BackFlipState != constant.None && !f.HandsBusy && f.Anim.State == f.BackFlipState
}

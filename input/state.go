// Package input turns terminal events into the per-tick snapshot the camera polls
package input

import "github.com/go-gl/mathgl/mgl32"

// Button is a bitmask of held controls
type Button uint16

const (
	ButtonLook Button = 1 << iota // pointer drag orbits the camera
	ButtonSlowMotion
	ButtonFastForward
	ButtonPause
	ButtonQuit
	ButtonAction
)

var buttonNames = [...]string{"look", "slow_motion", "fast_forward", "pause", "quit", "action"}

// String lists the held buttons separated by '+'
func (b Button) String() string {
	s := ""
	for i, name := range buttonNames {
		if b&(1<<uint(i)) == 0 {
			continue
		}
		if s != "" {
			s += "+"
		}
		s += name
	}
	return s
}

// Snapshot is the read-only control state for one tick
// Pointer is the drag delta since the previous tick; Stick axes are in [-1, 1]
type Snapshot struct {
	Buttons Button
	Pointer mgl32.Vec2
	Stick   mgl32.Vec2
}

// Held reports whether every button in b is down
func (s Snapshot) Held(b Button) bool {
	return s.Buttons&b == b
}

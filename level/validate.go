package level

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/roomsim/parameter"
	"github.com/lixenwraith/roomsim/trigger"
	"github.com/lixenwraith/roomsim/vmath"
)

// ErrInvalidLevel is wrapped by every error Validate returns
var ErrInvalidLevel = errors.New("invalid level")

// Validate checks every cross-table reference and reports the first broken one
// Stacked-room links must form finite chains so FloorInfo terminates
func (l *Level) Validate() error {
	for ri := range l.Rooms {
		r := &l.Rooms[ri]
		if len(r.Sectors) != r.XSectors*r.ZSectors {
			return invalid("room %d: %d sectors for %dx%d grid", ri, len(r.Sectors), r.XSectors, r.ZSectors)
		}
		for si := range r.Sectors {
			s := &r.Sectors[si]
			for _, link := range [...]int{s.RoomBelow, s.RoomAbove, s.RoomNext} {
				if !l.validRoom(link) {
					return invalid("room %d sector %d: room link %d out of range", ri, si, link)
				}
			}
			if s.Box != NoBox && (s.Box < 0 || s.Box >= len(l.Boxes)) {
				return invalid("room %d sector %d: box %d out of range", ri, si, s.Box)
			}
		}
	}
	if err := l.validateStacks(); err != nil {
		return err
	}

	for bi := range l.Boxes {
		for _, o := range l.Boxes[bi].Overlaps {
			if o < 0 || o >= len(l.Boxes) {
				return invalid("box %d: overlap %d out of range", bi, o)
			}
		}
	}

	for mi := range l.Models {
		m := &l.Models[mi]
		if m.MeshCount > parameter.MaxJoints {
			return invalid("model %d: %d meshes exceed joint budget %d", mi, m.MeshCount, parameter.MaxJoints)
		}
		if m.MeshStart < 0 || m.MeshStart+m.MeshCount > len(l.Meshes) {
			return invalid("model %d: meshes [%d,%d) out of range", mi, m.MeshStart, m.MeshStart+m.MeshCount)
		}
		if len(m.Nodes) != m.MeshCount {
			return invalid("model %d: %d nodes for %d meshes", mi, len(m.Nodes), m.MeshCount)
		}
		for ni, n := range m.Nodes {
			if n.Parent >= ni || n.Parent < -1 || (ni == 0 && n.Parent != -1) {
				return invalid("model %d node %d: parent %d must precede it", mi, ni, n.Parent)
			}
		}
		if m.Animation < 0 || m.Animation >= len(l.Animations) {
			return invalid("model %d: animation %d out of range", mi, m.Animation)
		}
		if m.ViewJoint >= m.MeshCount {
			return invalid("model %d: view joint %d out of range", mi, m.ViewJoint)
		}
	}

	for ai := range l.Animations {
		if err := l.validateAnimation(ai); err != nil {
			return err
		}
	}

	for ei := range l.Entities {
		e := &l.Entities[ei]
		if e.Room < 0 || e.Room >= len(l.Rooms) {
			return invalid("entity %d: room %d out of range", ei, e.Room)
		}
		if e.Model >= len(l.Models) {
			return invalid("entity %d: model %d out of range", ei, e.Model)
		}
	}

	for ci := range l.Cameras {
		if c := l.Cameras[ci].Room; c < 0 || c >= len(l.Rooms) {
			return invalid("camera %d: room %d out of range", ci, c)
		}
	}

	if err := l.validateTriggers(); err != nil {
		return err
	}

	for id, i := range l.Sounds.Map {
		if i >= len(l.Sounds.Infos) {
			return invalid("sound %d: info %d out of range", id, i)
		}
	}

	return nil
}

// validateTriggers checks the consumer index of every command the core dispatches
// Pass-through actions belong to other collaborators and are not checked here
func (l *Level) validateTriggers() error {
	if l.Triggers == nil {
		return nil
	}
	n := l.Triggers.Len()
	for i := 0; i < n; i++ {
		cmd := l.Triggers.At(trigger.Ref(i))
		if cmd.Next != trigger.None && (cmd.Next < 0 || int(cmd.Next) >= n) {
			return invalid("trigger %d: next %d out of range", i, cmd.Next)
		}
		limit := -1
		switch cmd.Action {
		case trigger.ActionActivate, trigger.ActionCameraTarget:
			limit = len(l.Entities)
		case trigger.ActionCameraSwitch:
			limit = len(l.Cameras)
		case trigger.ActionSecret:
			limit = parameter.MaxSecrets
		}
		if limit >= 0 && (cmd.Value < 0 || cmd.Value >= limit) {
			return invalid("trigger %d: %s %d out of range [0,%d)", i, cmd.Action, cmd.Value, limit)
		}
	}
	for ci, head := range l.Chains {
		if head != trigger.None && (head < 0 || int(head) >= n) {
			return invalid("chain %d: head %d out of range", ci, head)
		}
	}
	return nil
}

func (l *Level) validRoom(i int) bool {
	return i == NoRoom || (i >= 0 && i < len(l.Rooms))
}

func (l *Level) validateAnimation(ai int) error {
	a := &l.Animations[ai]
	if a.FrameRate < 1 {
		return invalid("animation %d: frame rate %d", ai, a.FrameRate)
	}
	if a.FrameEnd < a.FrameStart {
		return invalid("animation %d: frame end %d before start %d", ai, a.FrameEnd, a.FrameStart)
	}
	if err := l.validateSuccessor(ai, a.NextAnimation, a.NextFrame); err != nil {
		return err
	}
	for _, sc := range a.StateChanges {
		for _, r := range sc.Ranges {
			if err := l.validateSuccessor(ai, r.NextAnimation, r.NextFrame); err != nil {
				return err
			}
		}
	}
	if len(a.Frames) == 0 {
		return invalid("animation %d: no keyframes", ai)
	}
	return nil
}

func (l *Level) validateSuccessor(ai, next, frame int) error {
	if next < 0 || next >= len(l.Animations) {
		return invalid("animation %d: successor %d out of range", ai, next)
	}
	n := &l.Animations[next]
	if frame < n.FrameStart || frame > n.FrameEnd {
		return invalid("animation %d: successor frame %d outside [%d,%d] of animation %d",
			ai, frame, n.FrameStart, n.FrameEnd, next)
	}
	return nil
}

// validateStacks walks each below/above chain with a room-count step budget
func (l *Level) validateStacks() error {
	limit := len(l.Rooms)
	for ri := range l.Rooms {
		r := &l.Rooms[ri]
		for si := range r.Sectors {
			sx, sz := si/r.ZSectors, si%r.ZSectors
			x := r.X + sx*vmath.CellSize + vmath.CellSize/2
			z := r.Z + sz*vmath.CellSize + vmath.CellSize/2
			for _, below := range [...]bool{true, false} {
				s := &r.Sectors[si]
				for steps := 0; ; steps++ {
					next := s.RoomAbove
					if below {
						next = s.RoomBelow
					}
					if next == NoRoom {
						break
					}
					if steps >= limit {
						return invalid("room %d sector %d: stacked rooms form a cycle", ri, si)
					}
					s, _, _ = l.Sector(next, x, z)
				}
			}
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidLevel, fmt.Sprintf(format, args...))
}

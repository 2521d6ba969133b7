// Package snapshot captures per-tick scene state in msgpack form
package snapshot

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/roomsim/engine"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/trigger"
)

// Actor is the captured state of one actor
// Animation fields are only set for animated controllers
type Actor struct {
	Entity int        `msgpack:"e"`
	Pos    [3]float32 `msgpack:"p"`
	Angle  [3]float32 `msgpack:"a"`
	Room   int        `msgpack:"r"`

	Animated  bool        `msgpack:"an,omitempty"`
	Anim      int         `msgpack:"ai,omitempty"`
	Frame     int         `msgpack:"f,omitempty"`
	FramePrev int         `msgpack:"fp,omitempty"`
	Target    int         `msgpack:"ts,omitempty"`
	Cursor    trigger.Ref `msgpack:"c"`
}

// Camera is the captured rig state
type Camera struct {
	Pos      [3]float32  `msgpack:"p"`
	Target   [3]float32  `msgpack:"t"`
	Dest     [3]float32  `msgpack:"d"`
	LastDest [3]float32  `msgpack:"ld"`
	AngleAdv [3]float32  `msgpack:"aa"`
	Room     int         `msgpack:"r"`
	Active   int         `msgpack:"ac"`
	Entity   int         `msgpack:"te"`
	Timer    float32     `msgpack:"ti"`
	Cursor   trigger.Ref `msgpack:"c"`
}

// Frame is the state of a scene after one tick
type Frame struct {
	Tick    uint64        `msgpack:"tick"`
	Secrets level.Secrets `msgpack:"secrets"`
	Actors  []Actor       `msgpack:"actors"`
	Camera  *Camera       `msgpack:"camera,omitempty"`
}

// Capture records the scene in update order, between ticks
func Capture(s *engine.Scene) Frame {
	var f Frame
	s.World.RunSafe(func() { f = capture(s) })
	return f
}

func capture(s *engine.Scene) Frame {
	f := Frame{Tick: s.Tick(), Secrets: s.Level.Secrets}
	for _, a := range s.World.Actors() {
		pos, angle, room := a.Placement()
		rec := Actor{Entity: a.Entity(), Pos: pos, Angle: angle, Room: room, Cursor: trigger.None}
		if c := s.Controller(a.Entity()); c != nil && c == a {
			rec.Cursor = c.Cursor()
			if c.Anim.Valid() {
				rec.Animated = true
				rec.Anim = c.Anim.Index
				rec.Frame = c.Anim.Frame
				rec.FramePrev = c.Anim.FramePrev
				rec.Target = c.Anim.TargetState
			}
		}
		f.Actors = append(f.Actors, rec)
	}
	if r := s.Rig; r != nil {
		f.Camera = &Camera{
			Pos:      r.Pos,
			Target:   r.Target,
			Dest:     r.Dest,
			LastDest: r.LastDest,
			AngleAdv: r.AngleAdv,
			Room:     r.Room,
			Active:   r.ActiveCamera,
			Entity:   r.TargetEntity,
			Timer:    r.Timer,
			Cursor:   r.Cursor(),
		}
	}
	return f
}

// Encode serializes f
func Encode(f Frame) ([]byte, error) {
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("snapshot encode: %w", err)
	}
	return data, nil
}

// Decode parses data produced by Encode
func Decode(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("snapshot decode: %w", err)
	}
	return f, nil
}

// Restore applies f to a scene built from the same level
// Animation resumes at the start of the captured frame; entities without a
// generic controller in s and clips or frames the level lacks are rejected
func Restore(s *engine.Scene, f Frame) error {
	var err error
	s.World.RunSafe(func() { err = restore(s, f) })
	return err
}

func restore(s *engine.Scene, f Frame) error {
	for _, rec := range f.Actors {
		c := s.Controller(rec.Entity)
		if c == nil {
			return fmt.Errorf("snapshot restore: no controller for entity %d", rec.Entity)
		}
		c.Pos = mgl32.Vec3(rec.Pos)
		c.Angle = mgl32.Vec3(rec.Angle)
		c.Room = rec.Room
		if rec.Animated {
			if !c.Anim.Valid() {
				return fmt.Errorf("snapshot restore: entity %d is not animated", rec.Entity)
			}
			if err := checkClip(s.Level, rec); err != nil {
				return err
			}
			c.Anim.Set(rec.Anim, rec.Frame)
			c.Anim.FramePrev = rec.FramePrev
			c.Anim.TargetState = rec.Target
		}
		c.Activate(rec.Cursor)
		c.UpdateEntity()
	}
	s.Level.Secrets = f.Secrets

	if f.Camera != nil {
		r := s.Rig
		if r == nil {
			return fmt.Errorf("snapshot restore: scene has no camera")
		}
		r.Pos = f.Camera.Pos
		r.Target = f.Camera.Target
		r.Dest = f.Camera.Dest
		r.LastDest = f.Camera.LastDest
		r.AngleAdv = f.Camera.AngleAdv
		r.Room = f.Camera.Room
		r.ActiveCamera = f.Camera.Active
		r.TargetEntity = f.Camera.Entity
		r.Timer = f.Camera.Timer
		r.Controller.Activate(f.Camera.Cursor)
	}
	return nil
}

func checkClip(l *level.Level, rec Actor) error {
	if rec.Anim < 0 || rec.Anim >= len(l.Animations) {
		return fmt.Errorf("snapshot restore: entity %d: animation %d out of range [0,%d)",
			rec.Entity, rec.Anim, len(l.Animations))
	}
	a := &l.Animations[rec.Anim]
	if rec.Frame < a.FrameStart || rec.Frame > a.FrameEnd {
		return fmt.Errorf("snapshot restore: entity %d: frame %d outside [%d,%d] of animation %d",
			rec.Entity, rec.Frame, a.FrameStart, a.FrameEnd, rec.Anim)
	}
	return nil
}

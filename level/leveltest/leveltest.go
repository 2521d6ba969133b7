// Package leveltest builds small synthetic levels and recording collaborators for tests
package leveltest

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/trigger"
	"github.com/lixenwraith/roomsim/vmath"
)

// OpenRoom returns a room of xs*zs sectors at (x, z) with flat floor and ceiling
func OpenRoom(x, z, xs, zs, floor, ceiling int) level.Room {
	r := level.Room{
		X:        x,
		Z:        z,
		Top:      ceiling,
		Bottom:   floor,
		XSectors: xs,
		ZSectors: zs,
		Sectors:  make([]level.Sector, xs*zs),
	}
	for i := range r.Sectors {
		r.Sectors[i] = level.Sector{
			Floor:     floor,
			Ceiling:   ceiling,
			RoomBelow: level.NoRoom,
			RoomAbove: level.NoRoom,
			RoomNext:  level.NoRoom,
			Box:       level.NoBox,
		}
	}
	return r
}

// At returns sector (sx, sz) of r for in-place edits
func At(r *level.Room, sx, sz int) *level.Sector {
	return &r.Sectors[sx*r.ZSectors+sz]
}

// Wall turns sector (sx, sz) of r into a solid column
func Wall(r *level.Room, sx, sz int) {
	s := At(r, sx, sz)
	s.Floor, s.Ceiling = constant.WallMarker, constant.WallMarker
}

// Clip returns an animation over frames [start, end] that continues at (next, nextFrame)
// Every frame carries one keyframe with a unit box and joints zero angles
func Clip(state, start, end, next, nextFrame, joints int) level.Animation {
	a := level.Animation{
		State:         state,
		FrameRate:     1,
		FrameStart:    start,
		FrameEnd:      end,
		NextAnimation: next,
		NextFrame:     nextFrame,
	}
	for f := start; f <= end; f++ {
		a.Frames = append(a.Frames, Keyframe(joints))
	}
	return a
}

// Keyframe returns a pose with a 256-wide, 512-tall box standing on the origin
func Keyframe(joints int) level.Keyframe {
	return level.Keyframe{
		Box: vmath.Box{
			Min: mgl32.Vec3{-128, -512, -128},
			Max: mgl32.Vec3{128, 0, 128},
		},
		Angles: make([]mgl32.Vec3, joints),
	}
}

// Chain returns a model of n meshes stacked 256 units apart along -Y
func Chain(meshStart, n, animation int) level.Model {
	m := level.Model{
		MeshStart:     meshStart,
		MeshCount:     n,
		Animation:     animation,
		ViewJoint:     0,
		BackFlipState: constant.None,
	}
	for i := 0; i < n; i++ {
		node := level.Node{Parent: i - 1}
		if i > 0 {
			node.Offset = mgl32.Vec3{0, -256, 0}
		}
		m.Nodes = append(m.Nodes, node)
	}
	return m
}

// Level wraps rooms into a level with a two-mesh model looping one four-frame clip
// Entity 0 stands in room 0 at the center of its first sector
func Level(rooms ...level.Room) *level.Level {
	l := &level.Level{
		Rooms:      rooms,
		Meshes:     []level.Mesh{{Name: "body"}, {Name: "head"}},
		Models:     []level.Model{Chain(0, 2, 0)},
		Animations: []level.Animation{Clip(1, 0, 3, 0, 0, 2)},
		Triggers:   trigger.NewArena(),
	}
	if len(rooms) > 0 {
		r := &rooms[0]
		l.Entities = []level.Entity{{
			Model: 0,
			Room:  0,
			X:     r.X + vmath.CellSize/2,
			Y:     r.Bottom,
			Z:     r.Z + vmath.CellSize/2,
		}}
	}
	return l
}

// SoundCall is one recorded PlaySound invocation
type SoundCall struct {
	ID    int
	Pos   mgl32.Vec3
	Flags constant.SoundFlags
}

// SoundRecorder records every sound it is asked to play
type SoundRecorder struct {
	Calls []SoundCall
}

// PlaySound records the call
func (s *SoundRecorder) PlaySound(id int, pos mgl32.Vec3, flags constant.SoundFlags) {
	s.Calls = append(s.Calls, SoundCall{ID: id, Pos: pos, Flags: flags})
}

// Count returns how many times id was played
func (s *SoundRecorder) Count(id int) int {
	n := 0
	for _, c := range s.Calls {
		if c.ID == id {
			n++
		}
	}
	return n
}

// MeshCall is one recorded RenderMesh invocation
type MeshCall struct {
	Matrix mgl32.Mat4
	Mesh   int
}

// ShadowCall is one recorded RenderShadowBlob invocation
type ShadowCall struct {
	Pos       mgl32.Vec3
	Footprint vmath.Box
	Yaw       float32
}

// RenderRecorder records render primitives
type RenderRecorder struct {
	Meshes  []MeshCall
	Shadows []ShadowCall
}

// RenderMesh records the call
func (r *RenderRecorder) RenderMesh(m mgl32.Mat4, mesh int) {
	r.Meshes = append(r.Meshes, MeshCall{Matrix: m, Mesh: mesh})
}

// RenderShadowBlob records the call
func (r *RenderRecorder) RenderShadowBlob(pos mgl32.Vec3, footprint vmath.Box, yaw float32) {
	r.Shadows = append(r.Shadows, ShadowCall{Pos: pos, Footprint: footprint, Yaw: yaw})
}

package level

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/vmath"
)

// FloorInfo is the result of a column query
// RoomFloor/RoomCeiling are the queried room's own surfaces; Floor/Ceiling are the
// effective surfaces after following stacked rooms below and above
type FloorInfo struct {
	Floor       int
	Ceiling     int
	RoomFloor   int
	RoomCeiling int
	RoomBelow   int
	RoomAbove   int
	RoomNext    int
	Box         int
}

// Room returns room i, panicking on an out-of-range index
func (l *Level) Room(i int) *Room {
	if i < 0 || i >= len(l.Rooms) {
		panic(fmt.Sprintf("level: room index %d out of range [0,%d)", i, len(l.Rooms)))
	}
	return &l.Rooms[i]
}

// Entity returns entity i, panicking on an out-of-range index
func (l *Level) Entity(i int) *Entity {
	if i < 0 || i >= len(l.Entities) {
		panic(fmt.Sprintf("level: entity index %d out of range [0,%d)", i, len(l.Entities)))
	}
	return &l.Entities[i]
}

// Model returns the model of entity i, or nil for model-less entities
func (l *Level) Model(entity int) *Model {
	m := l.Entity(entity).Model
	if m < 0 || m >= len(l.Models) {
		return nil
	}
	return &l.Models[m]
}

// Camera returns hardcoded camera i, panicking on an out-of-range index
func (l *Level) Camera(i int) *Camera {
	if i < 0 || i >= len(l.Cameras) {
		panic(fmt.Sprintf("level: camera index %d out of range [0,%d)", i, len(l.Cameras)))
	}
	return &l.Cameras[i]
}

// HasMesh reports whether mesh slot i holds drawable geometry
func (l *Level) HasMesh(i int) bool {
	return i >= 0 && i < len(l.Meshes) && !l.Meshes[i].Empty
}

// Sector returns the sector of room containing column (x, z), clamped to the room grid,
// plus the column's offset inside the sector
func (l *Level) Sector(room, x, z int) (s *Sector, dx, dz int) {
	r := l.Room(room)
	sx := vmath.Clamp(x-r.X, 0, r.XSectors*vmath.CellSize-1)
	sz := vmath.Clamp(z-r.Z, 0, r.ZSectors*vmath.CellSize-1)
	dx, dz = sx%vmath.CellSize, sz%vmath.CellSize
	return &r.Sectors[(sx/vmath.CellSize)*r.ZSectors+sz/vmath.CellSize], dx, dz
}

// FloorInfo queries the column (x, z) of room
// y is accepted for interface parity with sloped data and does not affect the result
func (l *Level) FloorInfo(room, x, y, z int) FloorInfo {
	s, _, _ := l.Sector(room, x, z)
	info := FloorInfo{
		Floor:       s.Floor,
		Ceiling:     s.Ceiling,
		RoomFloor:   s.Floor,
		RoomCeiling: s.Ceiling,
		RoomBelow:   s.RoomBelow,
		RoomAbove:   s.RoomAbove,
		RoomNext:    s.RoomNext,
		Box:         s.Box,
	}
	if s.Floor == constant.WallMarker {
		return info
	}

	below := s
	for below.RoomBelow != NoRoom {
		below, _, _ = l.Sector(below.RoomBelow, x, z)
	}
	info.Floor = below.Floor

	above := s
	for above.RoomAbove != NoRoom {
		above, _, _ = l.Sector(above.RoomAbove, x, z)
	}
	info.Ceiling = above.Ceiling

	return info
}

// OverlapDelta returns the floor height difference between the navigation box under
// (fromX, fromZ) in room and the box reachable from it that contains (toX, toZ)
// Returns 0 when the destination is in the same box and constant.NoOverlap when no box
// reaches it; among reachable boxes the smallest absolute difference wins, first seen on ties
func (l *Level) OverlapDelta(room, fromX, fromY, fromZ, toX, toZ int) int {
	s, _, _ := l.Sector(room, fromX, fromZ)
	if s.Box == NoBox {
		return constant.NoOverlap
	}

	b := &l.Boxes[s.Box]
	if b.Contains(toX, toZ) {
		return 0
	}

	floor, delta := constant.NoOverlap, constant.NoOverlap
	for _, i := range b.Overlaps {
		ob := &l.Boxes[i]
		if !ob.Contains(toX, toZ) {
			continue
		}
		d := b.Floor - ob.Floor
		if d < 0 {
			d = -d
		}
		if d < delta {
			floor, delta = ob.Floor, d
		}
	}
	if floor == constant.NoOverlap {
		return constant.NoOverlap
	}
	return b.Floor - floor
}

// InsideRoom reports whether pos lies inside the bounds of room
func (l *Level) InsideRoom(pos mgl32.Vec3, room int) bool {
	r := l.Room(room)
	bounds := vmath.Box{
		Min: mgl32.Vec3{float32(r.X), float32(r.Top), float32(r.Z)},
		Max: mgl32.Vec3{
			float32(r.X + r.XSectors*vmath.CellSize),
			float32(r.Bottom),
			float32(r.Z + r.ZSectors*vmath.CellSize),
		},
	}
	return bounds.Contains(pos)
}

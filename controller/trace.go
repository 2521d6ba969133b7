package controller

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/parameter"
	"github.com/lixenwraith/roomsim/status"
	"github.com/lixenwraith/roomsim/vmath"
)

// Trace marches from toward to through the room graph; see the package function Trace
func (c *Controller) Trace(fromRoom int, from, to mgl32.Vec3, camera bool) (mgl32.Vec3, int) {
	pos, room, steps, slides := trace(c.env.Level, fromRoom, from, to, camera)
	c.env.Stats.Inc(status.TraceCalls)
	c.env.Stats.Add(status.TraceSteps, int64(steps))
	c.env.Stats.Add(status.TraceSlides, int64(slides))
	return pos, room
}

// Trace marches from toward to in fixed steps, following stacked rooms and portals
// Column queries are repeated only when the room or cell changes
// In camera mode a point inside solid geometry is pushed off the nearest cell face
// and the march re-aims at to from there, within the original distance budget
// Otherwise the march stops at the last point before leaving the room graph
func Trace(l *level.Level, fromRoom int, from, to mgl32.Vec3, camera bool) (mgl32.Vec3, int) {
	pos, room, _, _ := trace(l, fromRoom, from, to, camera)
	return pos, room
}

func trace(l *level.Level, room int, from, to mgl32.Vec3, camera bool) (pos mgl32.Vec3, outRoom, steps, slides int) {
	pos = from
	last := from
	dir := to.Sub(from)
	dist := dir.Len()
	dir = vmath.Normalize(dir)

	px, py, pz := int(pos[0]), int(pos[1]), int(pos[2])
	lr, lx, lz := level.NoRoom, -1, -1
	var info level.FloorInfo

	for dist > parameter.TraceMinDistance {
		sx, sz := vmath.CellCenter(px), vmath.CellCenter(pz)
		if lr != room || lx != sx || lz != sz {
			info = l.FloorInfo(room, sx, py, sz)
			if info.RoomNext != level.NoRoom {
				room = info.RoomNext
				info = l.FloorInfo(room, sx, py, sz)
			}
			lr, lx, lz = room, sx, sz
		}

		if camera {
			switch {
			case py > info.RoomFloor && info.RoomBelow != level.NoRoom:
				room = info.RoomBelow
			case py < info.RoomCeiling && info.RoomAbove != level.NoRoom:
				room = info.RoomAbove
			case py > info.Floor || py < info.Ceiling:
				minX, minZ := vmath.CellOrigin(px), vmath.CellOrigin(pz)
				pos = mgl32.Vec3{
					float32(vmath.Clamp(px, minX, minX+vmath.CellSize)),
					pos[1],
					float32(vmath.Clamp(pz, minZ, minZ+vmath.CellSize)),
				}.Add(vmath.CellNormal(px, pz).Mul(parameter.TraceWallPush))
				dir = vmath.Normalize(to.Sub(pos))
				slides++
			}
		} else {
			if py > info.RoomFloor {
				if info.RoomBelow == level.NoRoom {
					return last, room, steps, slides
				}
				room = info.RoomBelow
			}
			if py < info.RoomCeiling {
				if info.RoomAbove == level.NoRoom {
					return last, room, steps, slides
				}
				room = info.RoomAbove
			}
		}

		d := min(dist, parameter.TraceStep)
		dist -= d
		last = pos
		pos = pos.Add(dir.Mul(d))
		px, py, pz = int(pos[0]), int(pos[1]), int(pos[2])
		steps++
	}

	return pos, room, steps, slides
}

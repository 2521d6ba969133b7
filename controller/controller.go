package controller

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/roomsim/anim"
	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/logger"
	"github.com/lixenwraith/roomsim/parameter"
	"github.com/lixenwraith/roomsim/trigger"
	"github.com/lixenwraith/roomsim/vmath"
)

// Controller is the generic per-entity simulation state
// Angle holds pitch in X, yaw in Y and roll in Z
type Controller struct {
	env    *Env
	log    logrus.FieldLogger
	entity int

	Anim  *anim.Player
	Pos   mgl32.Vec3
	Angle mgl32.Vec3
	Room  int

	// Hooks receives command side effects; specialized actors replace it
	Hooks Hooks

	cursor trigger.Ref
	meshes []int
}

// New creates a controller for entity, animated with the entity's model
func New(env *Env, entity int) *Controller {
	return newController(env, entity, env.Level.Model(entity))
}

// NewView creates a controller for entity that carries no animation
func NewView(env *Env, entity int) *Controller {
	return newController(env, entity, nil)
}

func newController(env *Env, entity int, model *level.Model) *Controller {
	env.Defaults()
	e := env.Level.Entity(entity)
	c := &Controller{
		env:    env,
		log:    logger.Component(env.Log, "controller").WithField("entity", entity),
		entity: entity,
		Anim:   anim.New(env.Level, model),
		Pos:    mgl32.Vec3{float32(e.X), float32(e.Y), float32(e.Z)},
		Angle:  mgl32.Vec3{0, e.Rotation, 0},
		Room:   e.Room,
		cursor: trigger.None,
	}
	c.Hooks = BaseHooks{C: c}
	return c
}

// Env returns the shared environment
func (c *Controller) Env() *Env {
	return c.env
}

// Entity returns the level entity index
func (c *Controller) Entity() int {
	return c.entity
}

// Placement returns position, orientation and room
func (c *Controller) Placement() (pos, angle mgl32.Vec3, room int) {
	return c.Pos, c.Angle, c.Room
}

// Dir returns the unit facing vector
func (c *Controller) Dir() mgl32.Vec3 {
	return vmath.Direction(c.Angle[0], c.Angle[1])
}

// Matrix returns the entity world matrix
func (c *Controller) Matrix() mgl32.Mat4 {
	return vmath.WorldMatrix(c.Pos, c.Angle)
}

// BoundingBox returns the current pose bounds in world space
func (c *Controller) BoundingBox() vmath.Box {
	return c.Anim.BoundingBox(c.Pos, c.env.Level.Entity(c.entity).Rotation)
}

// ViewPoint returns the world position of the model's view joint, or the position
// itself for entities without one
func (c *Controller) ViewPoint() mgl32.Vec3 {
	m := c.Anim.Model()
	if m == nil || m.ViewJoint < 0 {
		return c.Pos
	}
	return vmath.Translation(c.Anim.Joint(c.Matrix(), m.ViewJoint))
}

// UpdateEntity writes placement back to the level entity record
// Yaw is wrapped into [0, 2Pi) on the way
func (c *Controller) UpdateEntity() {
	e := c.env.Level.Entity(c.entity)
	e.X = int(c.Pos[0])
	e.Y = int(c.Pos[1])
	e.Z = int(c.Pos[2])
	c.Angle[1] = vmath.WrapAngle(c.Angle[1])
	e.Rotation = c.Angle[1]
	e.Room = c.Room
}

// MoveLocal moves by an entity-local offset turned by the current yaw
func (c *Controller) MoveLocal(offset mgl32.Vec3) {
	c.Pos = c.Pos.Add(vmath.RotateY(offset, c.Angle[1]))
	c.UpdateEntity()
	c.Hooks.CheckRoom()
}

// CheckRoom revalidates room membership at the current position
// A portal column hands over to the next room; leaving through the floor or ceiling
// hops to the stacked room when there is one
func (c *Controller) CheckRoom() {
	x, y, z := int(c.Pos[0]), int(c.Pos[1]), int(c.Pos[2])
	info := c.env.Level.FloorInfo(c.Room, x, y, z)
	if info.RoomNext != level.NoRoom {
		c.Room = info.RoomNext
		info = c.env.Level.FloorInfo(c.Room, x, y, z)
	}
	switch {
	case y > info.RoomFloor && info.RoomBelow != level.NoRoom:
		c.Room = info.RoomBelow
	case y < info.RoomCeiling && info.RoomAbove != level.NoRoom:
		c.Room = info.RoomAbove
	}
	c.env.Level.Entity(c.entity).Room = c.Room
}

// InsideRoom reports whether pos lies inside the bounds of room
func (c *Controller) InsideRoom(pos mgl32.Vec3, room int) bool {
	return c.env.Level.InsideRoom(pos, room)
}

// Overlap returns the navigation height delta from (fromX, fromZ) in the entity's room
// to the column (toX, toZ); see level.OverlapDelta
func (c *Controller) Overlap(fromX, fromY, fromZ, toX, toZ int) int {
	d := c.env.Level.OverlapDelta(c.Room, fromX, fromY, fromZ, toX, toZ)
	if d == constant.NoOverlap {
		c.log.WithFields(logrus.Fields{"from_x": fromX, "from_z": fromZ, "to_x": toX, "to_z": toZ}).
			Debug("no navigation overlap")
	}
	return d
}

// AlignToWall turns to the quarter facing the nearest cell face
// A nonzero offset also places the entity offset units short of that face
func (c *Controller) AlignToWall(offset float32) {
	k := vmath.CellQuadrant(c.Pos[0], c.Pos[2])
	c.Angle[1] = float32(k) * vmath.HalfPi

	if offset != 0 {
		dir := c.Dir().Mul(parameter.WallAlignHalfCell - offset)
		half := float32(parameter.WallAlignHalfCell)
		if k%2 == 1 {
			c.Pos[0] = float32(vmath.CellOrigin(int(c.Pos[0]))) + half + dir[0]
		} else {
			c.Pos[2] = float32(vmath.CellOrigin(int(c.Pos[2]))) + half + dir[2]
		}
	}
	c.UpdateEntity()
	c.Hooks.CheckRoom()
}

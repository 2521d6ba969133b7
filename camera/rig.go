// Package camera frames a tracked entity through the room graph
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/controller"
	"github.com/lixenwraith/roomsim/input"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/logger"
	"github.com/lixenwraith/roomsim/parameter"
	"github.com/lixenwraith/roomsim/status"
	"github.com/lixenwraith/roomsim/trigger"
	"github.com/lixenwraith/roomsim/vmath"
)

// Rig is the camera controller
// The embedded controller owns the eye position, angles, room and chain cursor
type Rig struct {
	*controller.Controller

	Params   Params
	Listener controller.Listener
	// Input is read once per Update; the host replaces it every tick
	Input input.Snapshot

	subject Tracked
	log     logrus.FieldLogger

	Target   mgl32.Vec3 // look point
	Dest     mgl32.Vec3 // resolved eye destination
	LastDest mgl32.Vec3
	AngleAdv mgl32.Vec3 // user orbit accumulated from input

	// Timer counts down an active override; on expiry both overrides clear
	Timer        float32
	ActiveCamera int
	TargetEntity int

	ViewInv mgl32.Mat4
}

// New places a rig behind subject, looking at its view point
func New(env *controller.Env, subject Tracked, params Params) *Rig {
	body := subject.Body()
	r := &Rig{
		Controller:   controller.NewView(env, body.Entity()),
		Params:       params,
		subject:      subject,
		log:          logger.Component(env.Log, "camera"),
		ActiveCamera: constant.None,
		TargetEntity: constant.None,
	}
	r.Room = body.Room
	r.Pos = body.Pos.Sub(body.Dir().Mul(parameter.CameraSpawnDistance))
	r.Target = body.ViewPoint()
	r.Dest = r.Pos
	r.LastDest = r.Pos
	r.ViewInv = mgl32.LookAtV(r.Pos, r.Target, vmath.Up).Inv()
	return r
}

// Subject returns the tracked entity
func (r *Rig) Subject() Tracked {
	return r.subject
}

// RoomIndex is the hardcoded camera's room while one is active, else the rig's own
func (r *Rig) RoomIndex() int {
	if r.ActiveCamera != constant.None {
		return r.Env().Level.Camera(r.ActiveCamera).Room
	}
	return r.Room
}

// Activate applies a camera link: a nonzero timer rearms the countdown, camera_target
// forces a look-at entity and camera_switch selects a hardcoded camera, remembering
// the current eye as the fallback; dispatch then continues down the chain
func (r *Rig) Activate(ref trigger.Ref) bool {
	r.Controller.Activate(ref)
	cmd := r.Env().Level.Triggers.At(ref)
	if cmd.Timer != 0 {
		r.Timer = cmd.Timer
	}
	switch cmd.Action {
	case trigger.ActionCameraTarget:
		r.TargetEntity = cmd.Value
	case trigger.ActionCameraSwitch:
		r.ActiveCamera = cmd.Value
		r.LastDest = r.Pos
	}
	r.ActivateNext()
	return true
}

// LookAt resolves the look-at entity: the forced override first, then the subject's own
func (r *Rig) LookAt() int {
	if r.TargetEntity != constant.None {
		return r.TargetEntity
	}
	return r.subject.LookTarget()
}

// Update advances the rig by dt seconds
func (r *Rig) Update(dt float32) {
	env := r.Env()
	body := r.subject.Body()

	lookAt := r.LookAt()
	r.subject.SetViewTarget(lookAt)

	if r.Timer > 0 {
		r.Timer -= dt
		if r.Timer <= 0 {
			r.expire(body)
		}
	}

	r.applyInput(dt)
	r.Angle = body.Angle.Add(r.AngleAdv)
	r.Angle[2] = 0

	rate := r.Params.FollowRate
	if lookAt != constant.None {
		rate = r.Params.TargetRate
	}
	r.Target = vmath.Lerp(r.Target, body.ViewPoint(), rate*dt)

	if r.ActiveCamera != constant.None {
		r.Dest = env.Level.Camera(r.ActiveCamera).Position()
		if r.Room != r.RoomIndex() {
			r.Pos = r.Dest
		}
		if pos, ok := r.actorPos(lookAt); ok {
			r.Target = pos
		}
	} else {
		r.frame(body, lookAt)
	}

	r.Pos = vmath.Lerp(r.Pos, r.Dest, rate*dt)

	if r.ActiveCamera == constant.None {
		r.clampToRoom()
	}

	r.ViewInv = mgl32.LookAtV(r.Pos, r.Target, vmath.Up).Inv()
	if r.Listener != nil {
		r.Listener.SetListener(r.ViewInv)
	}
	r.record(lookAt)
}

func (r *Rig) expire(body *controller.Controller) {
	r.Timer = 0
	if r.Room != r.RoomIndex() {
		r.Pos = r.LastDest
	}
	r.log.WithFields(logrus.Fields{"camera": r.ActiveCamera, "target": r.TargetEntity}).
		Debug("camera override expired")
	r.ActiveCamera = constant.None
	r.TargetEntity = constant.None
	r.Target = body.ViewPoint()
}

func (r *Rig) applyInput(dt float32) {
	in := r.Input
	if in.Held(input.ButtonLook) {
		r.AngleAdv[0] -= in.Pointer[1] * r.Params.PointerSensitivity
		r.AngleAdv[1] += in.Pointer[0] * r.Params.PointerSensitivity
	}
	r.AngleAdv[0] -= in.Stick[1] * r.Params.StickSpeed * dt
	r.AngleAdv[1] += in.Stick[0] * r.Params.StickSpeed * dt
}

// frame resolves the eye destination behind the look point
// The idle back flip slides sideways off the previous destination instead
func (r *Rig) frame(body *controller.Controller, lookAt int) {
	dir := r.Dir()
	if pos, ok := r.actorPos(lookAt); ok {
		dir = vmath.Normalize(pos.Sub(r.Target))
	}

	var eye mgl32.Vec3
	backFlip := lookAt == constant.None && r.subject.HoldsBackFlip()
	if backFlip {
		side := vmath.Normalize(dir.Cross(mgl32.Vec3{0, 1, 0}))
		eye = r.LastDest.Add(side.Mul(parameter.CameraBackFlipSlide)).Sub(mgl32.Vec3{0, parameter.CameraBackFlipRise, 0})
	} else {
		eye = r.Target.Sub(dir.Mul(r.Params.Standoff))
	}

	dest, room := r.Trace(body.Room, r.Target, eye, true)
	r.Dest = dest
	if !backFlip {
		r.LastDest = dest
	}
	r.Room = room
}

// clampToRoom keeps the blended eye inside the room graph, hopping to stacked rooms
// and clamping against floor or ceiling where there is none, unless the bound is a wall
func (r *Rig) clampToRoom() {
	info := r.Env().Level.FloorInfo(r.Room, int(r.Pos[0]), int(r.Pos[1]), int(r.Pos[2]))
	if info.RoomNext != level.NoRoom {
		r.Room = info.RoomNext
	}
	if r.Pos[1] < float32(info.RoomCeiling) {
		if info.RoomAbove != level.NoRoom {
			r.Room = info.RoomAbove
		} else if info.RoomCeiling != constant.WallMarker {
			r.Pos[1] = float32(info.RoomCeiling)
		}
	}
	if r.Pos[1] > float32(info.RoomFloor) {
		if info.RoomBelow != level.NoRoom {
			r.Room = info.RoomBelow
		} else if info.RoomFloor != constant.WallMarker {
			r.Pos[1] = float32(info.RoomFloor)
		}
	}
}

func (r *Rig) actorPos(entity int) (mgl32.Vec3, bool) {
	if entity == constant.None {
		return mgl32.Vec3{}, false
	}
	a := r.Env().Actors.Actor(entity)
	if a == nil {
		return mgl32.Vec3{}, false
	}
	pos, _, _ := a.Placement()
	return pos, true
}

func (r *Rig) record(lookAt int) {
	stats := r.Env().Stats
	stats.SetGauge(status.CameraDistance, float64(r.Pos.Sub(r.Target).Len()))
	switch {
	case r.ActiveCamera != constant.None:
		stats.SetLabel(status.CameraMode, "fixed")
	case lookAt != constant.None:
		stats.SetLabel(status.CameraMode, "target")
	default:
		stats.SetLabel(status.CameraMode, "follow")
	}
}

// View returns the world-to-eye matrix
func (r *Rig) View() mgl32.Mat4 {
	return r.ViewInv.Inv()
}

// Projection returns the perspective matrix for the given aspect ratio
func (r *Rig) Projection(aspect float32) mgl32.Mat4 {
	return r.Params.Projection(aspect)
}

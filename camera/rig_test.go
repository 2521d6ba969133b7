package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/controller"
	"github.com/lixenwraith/roomsim/input"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/level/leveltest"
	"github.com/lixenwraith/roomsim/status"
	"github.com/lixenwraith/roomsim/trigger"
	"github.com/lixenwraith/roomsim/vmath"
)

// marker is a stationary actor standing at pos
type marker struct {
	entity int
	pos    mgl32.Vec3
}

func (m *marker) Entity() int { return m.entity }

func (m *marker) Placement() (mgl32.Vec3, mgl32.Vec3, int) { return m.pos, mgl32.Vec3{}, 0 }

func (m *marker) Activate(trigger.Ref) bool { return true }

func (m *marker) Update(float32) {}

func (m *marker) Render(controller.Renderer) {}

func (m *marker) BoundingBox() vmath.Box { return vmath.Box{} }

type actors struct {
	byEntity map[int]controller.Actor
	camera   controller.Actor
}

func (a *actors) Actor(entity int) controller.Actor {
	if actor, ok := a.byEntity[entity]; ok {
		return actor
	}
	return nil
}

func (a *actors) Camera() controller.Actor { return a.camera }

func (a *actors) Box(int) (vmath.Box, bool) { return vmath.Box{}, false }

type listener struct {
	calls int
	last  mgl32.Mat4
}

func (l *listener) SetListener(m mgl32.Mat4) {
	l.calls++
	l.last = m
}

type fixture struct {
	lvl    *level.Level
	env    *controller.Env
	actors *actors
	follow *Follow
	rig    *Rig
}

// newFixture tracks entity 0 standing at (x, 0, z) in room of a level built from rooms
func newFixture(room int, x, z int, rooms ...level.Room) *fixture {
	l := leveltest.Level(rooms...)
	e := &l.Entities[0]
	e.Room, e.X, e.Y, e.Z = room, x, 0, z

	f := &fixture{lvl: l, actors: &actors{byEntity: map[int]controller.Actor{}}}
	f.env = &controller.Env{Level: l, Actors: f.actors, Stats: status.NewRegistry()}
	f.follow = NewFollow(controller.New(f.env, 0))
	f.rig = New(f.env, f.follow, DefaultParams())
	f.actors.camera = f.rig
	return f
}

// openFixture is a 6x6 open hall with the subject at (2560, 0, 2560) facing +Z
func openFixture() *fixture {
	return newFixture(0, 2560, 2560, leveltest.OpenRoom(0, 0, 6, 6, 0, -4096))
}

func TestNewSpawnsBehindSubject(t *testing.T) {
	f := openFixture()
	if f.rig.Pos != (mgl32.Vec3{2560, 0, 1536}) {
		t.Errorf("Expected spawn 1024 behind at (2560,0,1536), got %v", f.rig.Pos)
	}
	if f.rig.Target != f.follow.ViewPoint() {
		t.Errorf("Expected target at subject view point %v, got %v", f.follow.ViewPoint(), f.rig.Target)
	}
	if f.rig.Room != 0 || f.rig.ActiveCamera != constant.None || f.rig.TargetEntity != constant.None {
		t.Errorf("Expected room 0 with no overrides, got room %d camera %d target %d",
			f.rig.Room, f.rig.ActiveCamera, f.rig.TargetEntity)
	}
}

func TestCameraSwitchExpires(t *testing.T) {
	rooms := []level.Room{
		leveltest.OpenRoom(8192, 0, 2, 2, 0, -2048),
		leveltest.OpenRoom(16384, 0, 2, 2, 0, -2048),
		leveltest.OpenRoom(24576, 0, 2, 2, 0, -2048),
		leveltest.OpenRoom(0, 0, 2, 2, 0, -2048),
	}
	f := newFixture(3, 1000, 1000, rooms...)
	f.lvl.Cameras = make([]level.Camera, 8)
	f.lvl.Cameras[7] = level.Camera{X: 16900, Y: -1024, Z: 500, Room: 1}
	ref := f.lvl.Triggers.Chain(trigger.Command{Action: trigger.ActionCameraSwitch, Value: 7, Timer: 2})

	before := f.rig.Pos
	if !f.rig.Activate(ref) {
		t.Fatal("Expected the rig to accept camera links")
	}
	if f.rig.ActiveCamera != 7 {
		t.Errorf("Expected active camera 7, got %d", f.rig.ActiveCamera)
	}
	if f.rig.LastDest != before {
		t.Errorf("Expected fallback %v, got %v", before, f.rig.LastDest)
	}
	if f.rig.RoomIndex() != 1 {
		t.Errorf("Expected room of camera 7, got %d", f.rig.RoomIndex())
	}

	for i := 0; i < 7; i++ {
		f.rig.Update(0.25)
		if f.rig.ActiveCamera != 7 {
			t.Fatalf("Expected camera 7 held at tick %d", i)
		}
	}
	if f.rig.Pos != f.lvl.Cameras[7].Position() {
		t.Errorf("Expected eye at the authored camera, got %v", f.rig.Pos)
	}

	f.rig.Update(0.25)
	if f.rig.ActiveCamera != constant.None {
		t.Errorf("Expected override released after 2s, got camera %d", f.rig.ActiveCamera)
	}
	if f.rig.Timer != 0 {
		t.Errorf("Expected timer 0, got %f", f.rig.Timer)
	}
	if f.rig.Target != f.follow.ViewPoint() {
		t.Errorf("Expected target recentered on %v, got %v", f.follow.ViewPoint(), f.rig.Target)
	}
}

func TestFollowFramesBehindLookPoint(t *testing.T) {
	f := openFixture()
	f.rig.Update(0.1)

	if f.rig.Dest != (mgl32.Vec3{2560, 0, 1280}) {
		t.Errorf("Expected destination one standoff behind at (2560,0,1280), got %v", f.rig.Dest)
	}
	if f.rig.LastDest != f.rig.Dest {
		t.Errorf("Expected last destination updated, got %v", f.rig.LastDest)
	}
	want := mgl32.Vec3{2560, 0, 1382.4}
	if !f.rig.Pos.ApproxEqualThreshold(want, 1e-2) {
		t.Errorf("Expected eye blended at rate 6 to %v, got %v", want, f.rig.Pos)
	}
	if mode := f.env.Stats.Labels.Get(status.CameraMode).Get(); mode != "follow" {
		t.Errorf("Expected follow mode, got %q", mode)
	}
}

func TestFollowResolvesThroughTrace(t *testing.T) {
	hall := leveltest.OpenRoom(0, 0, 3, 3, 0, -4096)
	for sx := 0; sx < 3; sx++ {
		leveltest.Wall(&hall, sx, 0)
	}
	f := newFixture(0, 1536, 1536, hall)
	f.rig.Update(0.1)

	vp := f.follow.ViewPoint()
	eye := vp.Sub(f.rig.Dir().Mul(DefaultParams().Standoff))
	want, room := controller.Trace(f.lvl, 0, vp, eye, true)
	if f.rig.Dest != want || f.rig.Room != room {
		t.Errorf("Expected traced destination %v in room %d, got %v in room %d", want, room, f.rig.Dest, f.rig.Room)
	}
	if f.rig.Dest == eye {
		t.Errorf("Expected the wall row to deflect the eye, got %v", f.rig.Dest)
	}
}

func TestTargetRateWhileLooking(t *testing.T) {
	f := openFixture()
	f.actors.byEntity[1] = &marker{entity: 1, pos: mgl32.Vec3{2560, 0, 4096}}
	f.follow.Target = 1
	vp := f.follow.ViewPoint()
	f.rig.Target = vp.Add(mgl32.Vec3{100, 0, 0})

	f.rig.Update(0.05)
	want := vp.Add(mgl32.Vec3{50, 0, 0})
	if !f.rig.Target.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("Expected target blended at rate 10 to %v, got %v", want, f.rig.Target)
	}
	if f.follow.ViewTarget != 1 {
		t.Errorf("Expected subject told to view entity 1, got %d", f.follow.ViewTarget)
	}
}

func TestFollowRateWhileIdle(t *testing.T) {
	f := openFixture()
	vp := f.follow.ViewPoint()
	f.rig.Target = vp.Add(mgl32.Vec3{100, 0, 0})

	f.rig.Update(0.05)
	want := vp.Add(mgl32.Vec3{70, 0, 0})
	if !f.rig.Target.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("Expected target blended at rate 6 to %v, got %v", want, f.rig.Target)
	}
	if f.follow.ViewTarget != constant.None {
		t.Errorf("Expected no view target, got %d", f.follow.ViewTarget)
	}
}

func TestForcedTargetWins(t *testing.T) {
	f := openFixture()
	f.actors.byEntity[1] = &marker{entity: 1, pos: mgl32.Vec3{1000, 0, 4000}}
	f.actors.byEntity[2] = &marker{entity: 2, pos: mgl32.Vec3{4000, 0, 4000}}
	f.follow.Target = 2
	ref := f.lvl.Triggers.Chain(trigger.Command{Action: trigger.ActionCameraTarget, Value: 1})

	f.rig.Activate(ref)
	if f.rig.Timer != 0 {
		t.Errorf("Expected a zero timer to leave the countdown idle, got %f", f.rig.Timer)
	}
	f.rig.Update(0.1)
	if f.follow.ViewTarget != 1 {
		t.Errorf("Expected forced entity 1 to win, got %d", f.follow.ViewTarget)
	}
	if mode := f.env.Stats.Labels.Get(status.CameraMode).Get(); mode != "target" {
		t.Errorf("Expected target mode, got %q", mode)
	}
}

func TestFixedCameraLooksAtEntity(t *testing.T) {
	f := openFixture()
	f.lvl.Cameras = []level.Camera{{X: 512, Y: -1024, Z: 512, Room: 0}}
	f.actors.byEntity[1] = &marker{entity: 1, pos: mgl32.Vec3{3000, -100, 3000}}
	ref := f.lvl.Triggers.Chain(
		trigger.Command{Action: trigger.ActionCameraSwitch, Value: 0, Timer: 5},
		trigger.Command{Action: trigger.ActionCameraTarget, Value: 1},
	)

	f.rig.Activate(ref)
	if f.rig.ActiveCamera != 0 || f.rig.TargetEntity != 1 {
		t.Fatalf("Expected camera 0 framing entity 1, got camera %d target %d", f.rig.ActiveCamera, f.rig.TargetEntity)
	}
	f.rig.Update(0.05)
	if f.rig.Target != (mgl32.Vec3{3000, -100, 3000}) {
		t.Errorf("Expected target on entity 1, got %v", f.rig.Target)
	}
	if f.rig.Dest != f.lvl.Cameras[0].Position() {
		t.Errorf("Expected destination at camera 0, got %v", f.rig.Dest)
	}
	if math.Abs(float64(f.rig.Timer-4.95)) > 1e-5 {
		t.Errorf("Expected timer 4.95, got %f", f.rig.Timer)
	}
}

func TestBackFlipSlidesOffLastDestination(t *testing.T) {
	f := openFixture()
	f.follow.BackFlipState = f.follow.Anim.State
	last := mgl32.Vec3{4096, -512, 1536}
	f.rig.LastDest = last

	f.rig.Update(0.1)
	vp := f.follow.ViewPoint()
	eye := last.Add(mgl32.Vec3{-2048, -512, 0})
	want, _ := controller.Trace(f.lvl, 0, vp, eye, true)
	if !f.rig.Dest.ApproxEqualThreshold(want, 1e-2) {
		t.Errorf("Expected sideways destination %v, got %v", want, f.rig.Dest)
	}
	if f.rig.LastDest != last {
		t.Errorf("Expected last destination kept at %v, got %v", last, f.rig.LastDest)
	}

	f.follow.HandsBusy = true
	f.rig.Update(0.1)
	if f.rig.LastDest == last {
		t.Error("Expected busy hands to frame normally")
	}
}

func TestClampToRoom(t *testing.T) {
	t.Run("floor", func(t *testing.T) {
		f := openFixture()
		f.rig.Pos = mgl32.Vec3{2560, 300, 1536}
		f.rig.Update(0)
		if f.rig.Pos[1] != 0 {
			t.Errorf("Expected eye clamped to floor 0, got %f", f.rig.Pos[1])
		}
	})
	t.Run("ceiling", func(t *testing.T) {
		f := openFixture()
		f.rig.Pos = mgl32.Vec3{2560, -5000, 1536}
		f.rig.Update(0)
		if f.rig.Pos[1] != -4096 {
			t.Errorf("Expected eye clamped to ceiling -4096, got %f", f.rig.Pos[1])
		}
	})
	t.Run("wall", func(t *testing.T) {
		hall := leveltest.OpenRoom(0, 0, 6, 6, 0, -4096)
		leveltest.Wall(&hall, 0, 0)
		f := newFixture(0, 2560, 2560, hall)
		f.rig.Pos = mgl32.Vec3{512, 300, 512}
		f.rig.Update(0)
		if f.rig.Pos[1] != 300 {
			t.Errorf("Expected no clamp against a wall column, got %f", f.rig.Pos[1])
		}
	})
	t.Run("room below", func(t *testing.T) {
		upper := leveltest.OpenRoom(0, 0, 6, 6, 0, -4096)
		lower := leveltest.OpenRoom(0, 0, 6, 6, 4096, 0)
		for i := range upper.Sectors {
			upper.Sectors[i].RoomBelow = 1
			lower.Sectors[i].RoomAbove = 0
		}
		f := newFixture(0, 2560, 2560, upper, lower)
		f.rig.Pos = mgl32.Vec3{2560, 300, 1536}
		f.rig.Update(0)
		if f.rig.Room != 1 || f.rig.Pos[1] != 300 {
			t.Errorf("Expected hop to room 1 at y 300, got room %d y %f", f.rig.Room, f.rig.Pos[1])
		}
	})
}

func TestInputOrbits(t *testing.T) {
	f := openFixture()
	f.rig.Input = input.Snapshot{
		Buttons: input.ButtonLook,
		Pointer: mgl32.Vec2{10, -5},
		Stick:   mgl32.Vec2{1, 0},
	}
	f.rig.Update(0.5)

	want := mgl32.Vec3{0.05, 1.1, 0}
	if !f.rig.AngleAdv.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected orbit %v, got %v", want, f.rig.AngleAdv)
	}
	if !f.rig.Angle.ApproxEqualThreshold(f.follow.Angle.Add(want), 1e-5) {
		t.Errorf("Expected camera angle subject plus orbit, got %v", f.rig.Angle)
	}

	f.rig.Input = input.Snapshot{Pointer: mgl32.Vec2{100, 100}}
	f.rig.Update(0.5)
	if !f.rig.AngleAdv.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected pointer ignored without look, got %v", f.rig.AngleAdv)
	}
}

func TestListenerFollowsEye(t *testing.T) {
	f := openFixture()
	l := &listener{}
	f.rig.Listener = l
	f.rig.Update(0.1)

	if l.calls != 1 {
		t.Fatalf("Expected one listener update, got %d", l.calls)
	}
	if got := vmath.Translation(l.last); !got.ApproxEqualThreshold(f.rig.Pos, 1e-2) {
		t.Errorf("Expected listener at eye %v, got %v", f.rig.Pos, got)
	}
	forward := l.last.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	toTarget := vmath.Normalize(f.rig.Target.Sub(f.rig.Pos))
	if !forward.ApproxEqualThreshold(toTarget, 1e-3) {
		t.Errorf("Expected listener facing %v, got %v", toTarget, forward)
	}
}

func TestProjection(t *testing.T) {
	p := DefaultParams()
	want := mgl32.Perspective(mgl32.DegToRad(65), 1.5, 128, 102400)
	if got := p.Projection(1.5); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

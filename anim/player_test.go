package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/level/leveltest"
	"github.com/lixenwraith/roomsim/vmath"
)

const frameDT = float32(1.0 / 30.0)

func newLevel() *level.Level {
	return leveltest.Level(leveltest.OpenRoom(0, 0, 1, 1, 0, -1024))
}

func TestEndFiresOnceAndSuccessorIsImmediate(t *testing.T) {
	l := newLevel()
	p := New(l, &l.Models[0])

	for i := 1; i <= 3; i++ {
		p.Update(frameDT)
		if p.Ended {
			t.Fatalf("tick %d: Expected clip still playing", i)
		}
		if p.Frame != i {
			t.Errorf("tick %d: Expected frame %d, got %d", i, i, p.Frame)
		}
		p.Visit()
	}

	p.Update(frameDT)
	if !p.Ended {
		t.Fatal("Expected clip to end when stepping past the last frame")
	}
	if p.Frame != 3 {
		t.Errorf("Expected frame clamped to 3, got %d", p.Frame)
	}

	p.PlayNext()
	if p.Index != 0 || p.Frame != 0 {
		t.Errorf("Expected successor clip 0 at frame 0, got clip %d frame %d", p.Index, p.Frame)
	}

	p.Update(frameDT)
	if p.Ended {
		t.Error("Expected ended to last a single tick")
	}
	if p.Frame != 1 {
		t.Errorf("Expected frame 1 after restart, got %d", p.Frame)
	}
}

func TestFrameWindow(t *testing.T) {
	l := newLevel()
	p := New(l, &l.Models[0])

	// The first frame of a freshly set clip is not yet visited
	if !p.IsFrameActive(0) {
		t.Error("Expected frame 0 active before the first update")
	}

	p.Update(0.1)
	if p.Frame != 3 {
		t.Fatalf("Expected frame 3, got %d", p.Frame)
	}
	for f, want := range map[int]bool{0: true, 1: true, 3: true, 4: false} {
		if got := p.IsFrameActive(f); got != want {
			t.Errorf("frame %d: Expected %v, got %v", f, want, got)
		}
	}

	p.Visit()
	if p.IsFrameActive(3) {
		t.Error("Expected visited frame to be inactive")
	}
}

func TestStateChangeSelectsSuccessor(t *testing.T) {
	l := newLevel()
	walk := leveltest.Clip(2, 4, 6, 1, 4, 2)
	l.Animations = append(l.Animations, walk)
	l.Animations[0].StateChanges = []level.StateChange{{
		State:  2,
		Ranges: []level.AnimRange{{Low: 2, High: 3, NextAnimation: 1, NextFrame: 5}},
	}}

	p := New(l, &l.Models[0])
	p.TargetState = 2
	p.Update(0.2)
	if !p.Ended {
		t.Fatal("Expected clip to end")
	}
	p.PlayNext()

	if p.Index != 1 || p.Frame != 5 || p.State != 2 {
		t.Errorf("Expected clip 1 frame 5 state 2, got clip %d frame %d state %d", p.Index, p.Frame, p.State)
	}
	if p.FramePrev != 4 {
		t.Errorf("Expected previous frame 4, got %d", p.FramePrev)
	}
}

func TestStateChangeOutsideRangeUsesDefault(t *testing.T) {
	l := newLevel()
	l.Animations = append(l.Animations, leveltest.Clip(2, 4, 6, 1, 4, 2))
	l.Animations[0].StateChanges = []level.StateChange{{
		State:  2,
		Ranges: []level.AnimRange{{Low: 0, High: 1, NextAnimation: 1, NextFrame: 5}},
	}}

	p := New(l, &l.Models[0])
	p.TargetState = 2
	p.Update(0.2)
	if idx, frame := p.Successor(); idx != 0 || frame != 0 {
		t.Errorf("Expected default successor (0,0), got (%d,%d)", idx, frame)
	}
}

func TestRootMotionIsSummed(t *testing.T) {
	l := newLevel()
	l.Animations[0].Commands = []level.AnimCommand{
		{Kind: level.CmdOffset, Vector: mgl32.Vec3{0, 0, 256}},
		{Kind: level.CmdSound, Frame: 1, Code: 3},
		{Kind: level.CmdOffset, Vector: mgl32.Vec3{128, 0, 0}},
		{Kind: level.CmdJump, Vector: mgl32.Vec3{0, -50, 20}},
	}
	p := New(l, &l.Models[0])
	if p.Offset != (mgl32.Vec3{128, 0, 256}) {
		t.Errorf("Expected offset (128,0,256), got %v", p.Offset)
	}
	if p.Jump != (mgl32.Vec3{0, -50, 20}) {
		t.Errorf("Expected jump (0,-50,20), got %v", p.Jump)
	}
}

func TestDeltaInterpolatesKeyframes(t *testing.T) {
	l := newLevel()
	a := leveltest.Clip(1, 0, 3, 0, 0, 2)
	a.FrameRate = 2
	a.Frames = a.Frames[:2]
	a.Frames[1].Box.Max = mgl32.Vec3{128, 0, 256}
	l.Animations[0] = a

	p := New(l, &l.Models[0])
	p.Update(frameDT)
	if p.Delta != 0.5 {
		t.Fatalf("Expected delta 0.5, got %f", p.Delta)
	}
	box := p.LocalBox()
	if box.Max[2] != 192 {
		t.Errorf("Expected interpolated max Z 192, got %f", box.Max[2])
	}
}

func TestBoundingBoxQuarterTurn(t *testing.T) {
	l := newLevel()
	for i := range l.Animations[0].Frames {
		l.Animations[0].Frames[i].Box = vmath.Box{
			Min: mgl32.Vec3{-100, -512, -50},
			Max: mgl32.Vec3{200, 0, 300},
		}
	}
	p := New(l, &l.Models[0])

	got := p.BoundingBox(mgl32.Vec3{1000, 0, 2000}, vmath.HalfPi+0.01)
	want := vmath.Box{
		Min: mgl32.Vec3{950, -512, 1800},
		Max: mgl32.Vec3{1300, 0, 2100},
	}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestJointsChainThroughParents(t *testing.T) {
	l := newLevel()
	for i := range l.Animations[0].Frames {
		l.Animations[0].Frames[i].Angles[0] = mgl32.Vec3{vmath.HalfPi, 0, 0}
	}
	p := New(l, &l.Models[0])

	var out [4]mgl32.Mat4
	joints := p.Joints(mgl32.Translate3D(100, 0, 0), out[:])
	if len(joints) != 2 {
		t.Fatalf("Expected 2 joints, got %d", len(joints))
	}
	if got := vmath.Translation(joints[0]); got != (mgl32.Vec3{100, 0, 0}) {
		t.Errorf("Expected root at (100,0,0), got %v", got)
	}
	// Pitching the root a quarter turn swings the -Y child offset onto -Z
	if got := vmath.Translation(joints[1]); !got.ApproxEqualThreshold(mgl32.Vec3{100, 0, -256}, 1e-3) {
		t.Errorf("Expected child at (100,0,-256), got %v", got)
	}
	if got := vmath.Translation(p.Joint(mgl32.Ident4(), 1)); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, -256}, 1e-3) {
		t.Errorf("Expected single joint at (0,0,-256), got %v", got)
	}
}

func TestInertPlayer(t *testing.T) {
	l := newLevel()
	p := New(l, nil)
	p.Update(1)
	if p.Valid() || p.Ended {
		t.Error("Expected inert player to stay idle")
	}
	var out [2]mgl32.Mat4
	if n := len(p.Joints(mgl32.Ident4(), out[:])); n != 0 {
		t.Errorf("Expected no joints, got %d", n)
	}
}

func TestJointBudgetPanics(t *testing.T) {
	l := newLevel()
	m := leveltest.Chain(0, 33, 0)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for model over the joint budget")
		}
	}()
	New(l, &m)
}

func TestSetRejectsFrameOutsideClip(t *testing.T) {
	l := newLevel()
	p := New(l, &l.Models[0])
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for frame outside the clip")
		}
	}()
	p.Set(0, 9)
}

package snapshot

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/engine"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/level/leveltest"
	"github.com/lixenwraith/roomsim/trigger"
)

// newScene builds a hall with a second walker, a secret chain and a camera
func newScene() *engine.Scene {
	l := leveltest.Level(leveltest.OpenRoom(0, 0, 4, 4, 0, -4096))
	l.Entities = append(l.Entities, level.Entity{Model: 0, Room: 0, X: 2560, Z: 2560, Rotation: 1})
	l.Animations[0].Commands = []level.AnimCommand{
		{Kind: level.CmdOffset, Vector: mgl32.Vec3{0, 0, 64}},
	}
	head := l.Triggers.Chain(
		trigger.Command{Action: trigger.ActionActivate, Value: 0},
		trigger.Command{Action: trigger.ActionSecret, Value: 3},
		trigger.Command{Action: trigger.ActionCameraTarget, Value: 1, Timer: 1},
	)
	s := engine.NewScene(l, engine.Options{Track: 0, Seed: 42})
	s.Controller(0).Activate(head)
	return s
}

func run(s *engine.Scene, ticks int) {
	for i := 0; i < ticks; i++ {
		s.Update(1.0 / 30.0)
	}
}

func TestRunsAreDeterministic(t *testing.T) {
	a, b := newScene(), newScene()
	for i := 0; i < 20; i++ {
		run(a, 1)
		run(b, 1)
		da, err := Encode(Capture(a))
		if err != nil {
			t.Fatal(err)
		}
		db, err := Encode(Capture(b))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(da, db) {
			t.Fatalf("Expected identical snapshots at tick %d", i+1)
		}
	}
}

func TestCaptureContents(t *testing.T) {
	s := newScene()
	run(s, 5)
	f := Capture(s)

	if f.Tick != 5 {
		t.Errorf("Expected tick 5, got %d", f.Tick)
	}
	if !f.Secrets.Has(3) {
		t.Error("Expected secret 3 found")
	}
	if len(f.Actors) != 2 || !f.Actors[0].Animated {
		t.Fatalf("Expected 2 animated actors, got %+v", f.Actors)
	}
	if f.Camera == nil || f.Camera.Entity != 1 {
		t.Errorf("Expected camera framing entity 1, got %+v", f.Camera)
	}
}

func TestDecodeRestores(t *testing.T) {
	s := newScene()
	run(s, 7)
	want := Capture(s)
	data, err := Encode(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected decoded frame %+v, got %+v", want, got)
	}

	fresh := newScene()
	if err := Restore(fresh, got); err != nil {
		t.Fatal(err)
	}
	restored := Capture(fresh)
	restored.Tick = want.Tick
	if !reflect.DeepEqual(restored, want) {
		t.Errorf("Expected restored scene %+v, got %+v", want, restored)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("Expected an error for invalid input")
	}
}

func TestRestoreRejectsUnknownEntity(t *testing.T) {
	s := newScene()
	f := Capture(s)
	f.Actors = append(f.Actors, Actor{Entity: 9})
	if err := Restore(s, f); err == nil {
		t.Error("Expected an error for entity 9")
	}
}

func TestRestoreCarriesTargetStateAndRigCursor(t *testing.T) {
	s := newScene()
	run(s, 3)
	s.Controller(0).Anim.TargetState = 7
	s.Rig.Controller.Activate(trigger.Ref(2))
	f := Capture(s)
	if f.Actors[0].Target != 7 || f.Camera.Cursor != 2 {
		t.Fatalf("Expected target state 7 and rig cursor 2, got %d and %d", f.Actors[0].Target, f.Camera.Cursor)
	}

	fresh := newScene()
	if err := Restore(fresh, f); err != nil {
		t.Fatal(err)
	}
	if got := fresh.Controller(0).Anim.TargetState; got != 7 {
		t.Errorf("Expected restored target state 7, got %d", got)
	}
	if got := fresh.Rig.Cursor(); got != 2 {
		t.Errorf("Expected restored rig cursor 2, got %d", got)
	}
}

func TestRestoreRejectsForeignClip(t *testing.T) {
	tests := []struct {
		name  string
		anim  int
		frame int
	}{
		{"animation out of range", 40, 0},
		{"negative animation", -1, 0},
		{"frame outside clip", 0, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScene()
			f := Capture(s)
			f.Actors[0].Anim = tt.anim
			f.Actors[0].Frame = tt.frame
			if err := Restore(s, f); err == nil {
				t.Errorf("Expected an error for animation %d frame %d", tt.anim, tt.frame)
			}
		})
	}
}

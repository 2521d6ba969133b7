// Package controller drives one level entity: placement, animation commands,
// trigger-chain dispatch, aiming and the room-graph trace
package controller

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/logger"
	"github.com/lixenwraith/roomsim/status"
	"github.com/lixenwraith/roomsim/trigger"
	"github.com/lixenwraith/roomsim/vmath"
)

// SoundPlayer is the audio collaborator; playback is fire-and-forget
type SoundPlayer interface {
	PlaySound(id int, pos mgl32.Vec3, flags constant.SoundFlags)
}

// Listener receives the camera matrix used for positional sound
type Listener interface {
	SetListener(m mgl32.Mat4)
}

// Renderer is the render collaborator
type Renderer interface {
	RenderMesh(joint mgl32.Mat4, mesh int)
	RenderShadowBlob(pos mgl32.Vec3, footprint vmath.Box, yaw float32)
}

// Actor is the capability set a scene drives for every entity
type Actor interface {
	Entity() int
	Placement() (pos, angle mgl32.Vec3, room int)
	Activate(cmd trigger.Ref) bool
	Update(dt float32)
	Render(r Renderer)
	BoundingBox() vmath.Box
}

// Actors resolves entity indices during dispatch and aiming
// Box reads the bounds captured before the current tick
type Actors interface {
	Actor(entity int) Actor
	Camera() Actor
	Box(entity int) (vmath.Box, bool)
}

// Env carries the shared level and collaborators
// Nil collaborators are replaced with inert defaults by Defaults
type Env struct {
	Level  *level.Level
	Sound  SoundPlayer
	Actors Actors
	Log    logrus.FieldLogger
	Rand   *rand.Rand
	Stats  *status.Registry
}

// Defaults fills missing collaborators
func (e *Env) Defaults() *Env {
	if e.Sound == nil {
		e.Sound = silence{}
	}
	if e.Actors == nil {
		e.Actors = noActors{}
	}
	if e.Log == nil {
		e.Log = logger.Discard()
	}
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(1))
	}
	return e
}

type silence struct{}

func (silence) PlaySound(int, mgl32.Vec3, constant.SoundFlags) {}

type noActors struct{}

func (noActors) Actor(int) Actor { return nil }

func (noActors) Camera() Actor { return nil }

func (noActors) Box(int) (vmath.Box, bool) { return vmath.Box{}, false }

// Package engine owns a loaded level and ticks its actors and camera in a stable order
package engine

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/roomsim/camera"
	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/controller"
	"github.com/lixenwraith/roomsim/input"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/logger"
	"github.com/lixenwraith/roomsim/status"
)

// Time scales selected by input
const (
	SlowMotionScale  = 0.1
	FastForwardScale = 10.0
)

// Options configures a scene
type Options struct {
	Log      logrus.FieldLogger
	Sound    controller.SoundPlayer
	Listener controller.Listener
	Stats    *status.Registry
	Seed     int64

	// Track is the entity the camera follows, constant.None for no camera
	Track int
	// Camera defaults to camera.DefaultParams when zero
	Camera camera.Params

	// Priority orders entities within a tick; nil runs every entity at priority 0
	Priority func(e *level.Entity) int
}

// Scene is one running level
type Scene struct {
	Level  *level.Level
	World  *World
	Env    *controller.Env
	Rig    *camera.Rig
	Follow *camera.Follow

	// TimeScale multiplies every dt handed to Update
	TimeScale float32

	log  logrus.FieldLogger
	tick uint64
}

// NewScene builds one controller per level entity and, when opts.Track names an entity,
// a camera rig following it
func NewScene(l *level.Level, opts Options) *Scene {
	w := NewWorld()
	env := &controller.Env{
		Level:  l,
		Sound:  opts.Sound,
		Actors: w,
		Log:    opts.Log,
		Rand:   rand.New(rand.NewSource(opts.Seed)),
		Stats:  opts.Stats,
	}
	env.Defaults()

	s := &Scene{
		Level:     l,
		World:     w,
		Env:       env,
		TimeScale: 1,
		log:       logger.Component(env.Log, "scene"),
	}

	controllers := make([]*controller.Controller, len(l.Entities))
	for i := range l.Entities {
		c := controller.New(env, i)
		controllers[i] = c
		priority := 0
		if opts.Priority != nil {
			priority = opts.Priority(&l.Entities[i])
		}
		w.Add(c, priority)
	}

	if opts.Track != constant.None && opts.Track < len(controllers) {
		params := opts.Camera
		if params == (camera.Params{}) {
			params = camera.DefaultParams()
		}
		s.Follow = camera.NewFollow(controllers[opts.Track])
		s.Rig = camera.New(env, s.Follow, params)
		s.Rig.Listener = opts.Listener
		w.SetCamera(s.Rig)
	}

	s.log.WithFields(logrus.Fields{
		"rooms":    len(l.Rooms),
		"entities": len(l.Entities),
		"camera":   s.Rig != nil,
	}).Debug("scene ready")
	return s
}

// ApplyInput selects the time scale and hands the snapshot to the camera
func (s *Scene) ApplyInput(in input.Snapshot) {
	switch {
	case in.Held(input.ButtonPause):
		s.TimeScale = 0
	case in.Held(input.ButtonSlowMotion):
		s.TimeScale = SlowMotionScale
	case in.Held(input.ButtonFastForward):
		s.TimeScale = FastForwardScale
	default:
		s.TimeScale = 1
	}
	if s.Rig != nil {
		s.Rig.Input = in
	}
}

// Update advances the scene by dt seconds of host time
// Bounds are captured first so cross-actor reads see the previous tick
func (s *Scene) Update(dt float32) {
	s.World.RunSafe(func() { s.update(dt) })
}

func (s *Scene) update(dt float32) {
	dt *= s.TimeScale
	s.World.Capture()
	for _, a := range s.World.Actors() {
		a.Update(dt)
	}
	if s.Rig != nil {
		s.Rig.Update(dt)
	}
	s.tick++
	s.Env.Stats.Inc(status.SceneTicks)
	s.Env.Stats.SetGauge(status.SceneTimeScale, float64(s.TimeScale))
}

// Render asks every actor for its contribution
func (s *Scene) Render(r controller.Renderer) {
	for _, a := range s.World.Actors() {
		a.Render(r)
	}
}

// Tick returns the number of completed updates
func (s *Scene) Tick() uint64 {
	return s.tick
}

// Controller returns the generic controller of entity, nil if it has another kind of actor
func (s *Scene) Controller(entity int) *controller.Controller {
	c, _ := s.World.Actor(entity).(*controller.Controller)
	return c
}

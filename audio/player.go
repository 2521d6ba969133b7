// Package audio plays level sounds through a beep mixer
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/logger"
	"github.com/lixenwraith/roomsim/status"
)

// chanceMask bounds the roll compared against SoundInfo.Chance
const chanceMask = 0x7FFF

// Player resolves sound ids through the level sound table and mixes the voices
type Player struct {
	mu     sync.Mutex
	cfg    Config
	sounds *level.SoundTable
	rng    *rand.Rand
	log    logrus.FieldLogger
	stats  *status.Registry

	mixer       *beep.Mixer
	initialized bool
	// play hands a voice to the output; replaced in tests
	play func(beep.Streamer)

	listener    mgl32.Mat4
	listenerInv mgl32.Mat4
	active      map[int]*beep.Ctrl
}

// NewPlayer creates a player for sounds; output starts with Initialize
func NewPlayer(cfg Config, sounds *level.SoundTable, log logrus.FieldLogger, stats *status.Registry, seed int64) *Player {
	p := &Player{
		cfg:         cfg.Normalize(),
		sounds:      sounds,
		rng:         rand.New(rand.NewSource(seed)),
		log:         logger.Component(log, "audio"),
		stats:       stats,
		mixer:       &beep.Mixer{},
		listener:    mgl32.Ident4(),
		listenerInv: mgl32.Ident4(),
		active:      make(map[int]*beep.Ctrl),
	}
	p.play = p.mix
	return p
}

// Initialize opens the speaker; a disabled config leaves the player silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops every voice and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.active = make(map[int]*beep.Ctrl)
	p.initialized = false
}

func (p *Player) mix(s beep.Streamer) {
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetListener takes the camera matrix (eye to world) used to pan positional sounds
func (p *Player) SetListener(m mgl32.Mat4) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listener = m
	p.listenerInv = m.Inv()
}

// PlaySound plays id at pos
// Unmapped ids are dropped; a nonzero chance gates the sound on a 15-bit roll;
// one variant is picked at random. Replay restarts a voice of the same id instead
// of stacking, loop repeats it until Stop
func (p *Player) PlaySound(id int, pos mgl32.Vec3, flags constant.SoundFlags) {
	p.mu.Lock()
	defer p.mu.Unlock()

	info, ok := p.sounds.Lookup(id)
	if !ok {
		p.stats.Inc(status.SoundsDropped)
		p.log.WithField("sound", id).Debug("unmapped sound")
		return
	}
	if info.Chance != 0 && p.rng.Intn(chanceMask+1) > info.Chance {
		p.stats.Inc(status.SoundsDropped)
		return
	}
	variants := info.Variants
	if variants < 1 {
		variants = 1
	}
	sample := info.Offset + p.rng.Intn(variants)
	if info.Replay {
		flags |= constant.SoundReplay
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	var voice beep.Streamer
	if flags&constant.SoundLoop != 0 {
		voice = newRepeat(func() beep.Streamer { return synthesize(sample, rate) })
	} else {
		voice = synthesize(sample, rate)
	}
	voice = newVolume(voice, float64(info.Volume)*p.cfg.MasterVolume)
	if flags&constant.SoundPan != 0 {
		voice = &effects.Pan{Streamer: voice, Pan: p.pan(pos)}
	}

	if flags&(constant.SoundReplay|constant.SoundLoop) != 0 {
		if prev, ok := p.active[id]; ok {
			speaker.Lock()
			prev.Paused = true
			prev.Streamer = nil
			speaker.Unlock()
		}
		ctrl := &beep.Ctrl{Streamer: voice}
		p.active[id] = ctrl
		voice = ctrl
	}

	p.stats.Inc(status.SoundsPlayed)
	p.play(voice)
}

// Stop silences the replayable or looping voice of id
func (p *Player) Stop(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ctrl, ok := p.active[id]; ok {
		speaker.Lock()
		ctrl.Paused = true
		ctrl.Streamer = nil
		speaker.Unlock()
		delete(p.active, id)
	}
}

// pan maps the listener-space lateral offset of pos to [-1, 1]
func (p *Player) pan(pos mgl32.Vec3) float64 {
	local := p.listenerInv.Mul4x1(pos.Vec4(1))
	return float64(mgl32.Clamp(local[0]/float32(p.cfg.PanDistance), -1, 1))
}

package level

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/trigger"
)

// file mirrors the YAML fixture layout; vectors are plain sequences
type file struct {
	Rooms      []roomDef      `yaml:"rooms"`
	Boxes      []boxDef       `yaml:"boxes"`
	Meshes     []Mesh         `yaml:"meshes"`
	Models     []modelDef     `yaml:"models"`
	Animations []animationDef `yaml:"animations"`
	Entities   []entityDef    `yaml:"entities"`
	Cameras    []cameraDef    `yaml:"cameras"`
	Sounds     soundsDef      `yaml:"sounds"`
	Chains     []chainDef     `yaml:"chains"`
}

type roomDef struct {
	X       int         `yaml:"x"`
	Z       int         `yaml:"z"`
	Top     int         `yaml:"top"`
	Bottom  int         `yaml:"bottom"`
	Size    [2]int      `yaml:"size"`
	Fill    sectorDef   `yaml:"fill"`
	Sectors []sectorDef `yaml:"sectors"`
}

type sectorDef struct {
	X       int  `yaml:"x"`
	Z       int  `yaml:"z"`
	Wall    bool `yaml:"wall"`
	Floor   *int `yaml:"floor"`
	Ceiling *int `yaml:"ceiling"`
	Below   *int `yaml:"below"`
	Above   *int `yaml:"above"`
	Next    *int `yaml:"next"`
	Box     *int `yaml:"box"`
}

type boxDef struct {
	MinX     int   `yaml:"min_x"`
	MaxX     int   `yaml:"max_x"`
	MinZ     int   `yaml:"min_z"`
	MaxZ     int   `yaml:"max_z"`
	Floor    int   `yaml:"floor"`
	Overlaps []int `yaml:"overlaps"`
}

type modelDef struct {
	MeshStart int       `yaml:"mesh_start"`
	MeshCount int       `yaml:"mesh_count"`
	Animation int       `yaml:"animation"`
	ViewJoint *int      `yaml:"view_joint"`
	BackFlip  *int      `yaml:"back_flip_state"`
	Nodes     []nodeDef `yaml:"nodes"`
}

type nodeDef struct {
	Parent int       `yaml:"parent"`
	Offset []float32 `yaml:"offset"`
}

type animationDef struct {
	State         int              `yaml:"state"`
	FrameRate     int              `yaml:"frame_rate"`
	FrameStart    int              `yaml:"frame_start"`
	FrameEnd      int              `yaml:"frame_end"`
	NextAnimation int              `yaml:"next_animation"`
	NextFrame     int              `yaml:"next_frame"`
	StateChanges  []stateChangeDef `yaml:"state_changes"`
	Commands      []commandDef     `yaml:"commands"`
	Frames        []keyframeDef    `yaml:"frames"`
}

type stateChangeDef struct {
	State  int         `yaml:"state"`
	Ranges []AnimRange `yaml:"ranges"`
}

type commandDef struct {
	Kind   string    `yaml:"kind"`
	Vector []float32 `yaml:"vector"`
	Frame  int       `yaml:"frame"`
	Code   int       `yaml:"code"`
}

type keyframeDef struct {
	Min    []float32   `yaml:"min"`
	Max    []float32   `yaml:"max"`
	Offset []float32   `yaml:"offset"`
	Angles [][]float32 `yaml:"angles"`
}

type entityDef struct {
	Type     int       `yaml:"type"`
	Model    *int      `yaml:"model"`
	Room     int       `yaml:"room"`
	Pos      []float32 `yaml:"pos"`
	Rotation float32   `yaml:"rotation"`
	Shadow   bool      `yaml:"shadow"`
}

type cameraDef struct {
	Pos  []float32 `yaml:"pos"`
	Room int       `yaml:"room"`
}

type soundsDef struct {
	Map []int `yaml:"map"`
	// IDs sets sparse map entries, growing Map with unmapped slots as needed
	IDs   map[int]int `yaml:"ids"`
	Infos []SoundInfo `yaml:"infos"`
}

func (d soundsDef) table() (SoundTable, error) {
	m := append([]int(nil), d.Map...)
	for id, info := range d.IDs {
		if id < 0 {
			return SoundTable{}, fmt.Errorf("negative sound id %d", id)
		}
		for len(m) <= id {
			m = append(m, -1)
		}
		m[id] = info
	}
	return SoundTable{Map: m, Infos: d.Infos}, nil
}

type chainDef struct {
	Continue *int          `yaml:"continue"`
	Commands []chainCmdDef `yaml:"commands"`
}

type chainCmdDef struct {
	Emitter int            `yaml:"emitter"`
	Action  trigger.Action `yaml:"action"`
	Value   int            `yaml:"value"`
	Timer   float32        `yaml:"timer"`
}

var commandKinds = map[string]CommandKind{
	"offset": CmdOffset,
	"jump":   CmdJump,
	"empty":  CmdEmpty,
	"kill":   CmdKill,
	"sound":  CmdSound,
	"effect": CmdEffect,
}

// Load reads and validates a level fixture from a YAML file
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a level fixture
func Parse(data []byte) (*Level, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing level YAML: %w", err)
	}

	l, err := f.build()
	if err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (f *file) build() (*Level, error) {
	l := &Level{
		Meshes:   f.Meshes,
		Triggers: trigger.NewArena(),
	}
	sounds, err := f.Sounds.table()
	if err != nil {
		return nil, fmt.Errorf("sounds: %w", err)
	}
	l.Sounds = sounds

	for i, rd := range f.Rooms {
		r, err := rd.build()
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", i, err)
		}
		l.Rooms = append(l.Rooms, r)
	}

	for _, bd := range f.Boxes {
		l.Boxes = append(l.Boxes, Box{
			MinX: bd.MinX, MaxX: bd.MaxX,
			MinZ: bd.MinZ, MaxZ: bd.MaxZ,
			Floor:    bd.Floor,
			Overlaps: bd.Overlaps,
		})
	}

	for i, md := range f.Models {
		m := Model{
			MeshStart:     md.MeshStart,
			MeshCount:     md.MeshCount,
			Animation:     md.Animation,
			ViewJoint:     -1,
			BackFlipState: constant.None,
		}
		if md.ViewJoint != nil {
			m.ViewJoint = *md.ViewJoint
		}
		if md.BackFlip != nil {
			m.BackFlipState = *md.BackFlip
		}
		for j, nd := range md.Nodes {
			off, err := vec3(nd.Offset)
			if err != nil {
				return nil, fmt.Errorf("model %d node %d: %w", i, j, err)
			}
			m.Nodes = append(m.Nodes, Node{Parent: nd.Parent, Offset: off})
		}
		l.Models = append(l.Models, m)
	}

	for i, ad := range f.Animations {
		a, err := ad.build()
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i, err)
		}
		l.Animations = append(l.Animations, a)
	}

	for i, ed := range f.Entities {
		pos, err := vec3(ed.Pos)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		e := Entity{
			Type:     ed.Type,
			Model:    -1,
			Room:     ed.Room,
			X:        int(pos[0]),
			Y:        int(pos[1]),
			Z:        int(pos[2]),
			Rotation: mgl32.DegToRad(ed.Rotation),
			Shadow:   ed.Shadow,
		}
		if ed.Model != nil {
			e.Model = *ed.Model
		}
		l.Entities = append(l.Entities, e)
	}

	for i, cd := range f.Cameras {
		pos, err := vec3(cd.Pos)
		if err != nil {
			return nil, fmt.Errorf("camera %d: %w", i, err)
		}
		l.Cameras = append(l.Cameras, Camera{X: int(pos[0]), Y: int(pos[1]), Z: int(pos[2]), Room: cd.Room})
	}

	for i, cd := range f.Chains {
		tail := trigger.None
		if cd.Continue != nil {
			if *cd.Continue < 0 || *cd.Continue >= i {
				return nil, fmt.Errorf("chain %d: continue must name an earlier chain, got %d", i, *cd.Continue)
			}
			tail = l.Chains[*cd.Continue]
		}
		cmds := make([]trigger.Command, 0, len(cd.Commands))
		for _, c := range cd.Commands {
			cmds = append(cmds, trigger.Command{
				Emitter: c.Emitter,
				Action:  c.Action,
				Value:   c.Value,
				Timer:   c.Timer,
			})
		}
		l.Chains = append(l.Chains, l.Triggers.Link(tail, cmds...))
	}

	return l, nil
}

func (rd *roomDef) build() (Room, error) {
	r := Room{
		X:        rd.X,
		Z:        rd.Z,
		Top:      rd.Top,
		Bottom:   rd.Bottom,
		XSectors: rd.Size[0],
		ZSectors: rd.Size[1],
	}
	if r.XSectors <= 0 || r.ZSectors <= 0 {
		return r, fmt.Errorf("invalid sector grid %dx%d", r.XSectors, r.ZSectors)
	}

	base := Sector{
		Floor:     r.Bottom,
		Ceiling:   r.Top,
		RoomBelow: NoRoom,
		RoomAbove: NoRoom,
		RoomNext:  NoRoom,
		Box:       NoBox,
	}
	rd.Fill.apply(&base)

	r.Sectors = make([]Sector, r.XSectors*r.ZSectors)
	for i := range r.Sectors {
		r.Sectors[i] = base
	}
	for _, sd := range rd.Sectors {
		if sd.X < 0 || sd.X >= r.XSectors || sd.Z < 0 || sd.Z >= r.ZSectors {
			return r, fmt.Errorf("sector (%d,%d) outside %dx%d grid", sd.X, sd.Z, r.XSectors, r.ZSectors)
		}
		sd.apply(&r.Sectors[sd.X*r.ZSectors+sd.Z])
	}
	return r, nil
}

func (sd *sectorDef) apply(s *Sector) {
	if sd.Wall {
		s.Floor, s.Ceiling = constant.WallMarker, constant.WallMarker
	}
	if sd.Floor != nil {
		s.Floor = *sd.Floor
	}
	if sd.Ceiling != nil {
		s.Ceiling = *sd.Ceiling
	}
	if sd.Below != nil {
		s.RoomBelow = *sd.Below
	}
	if sd.Above != nil {
		s.RoomAbove = *sd.Above
	}
	if sd.Next != nil {
		s.RoomNext = *sd.Next
	}
	if sd.Box != nil {
		s.Box = *sd.Box
	}
}

func (ad *animationDef) build() (Animation, error) {
	a := Animation{
		State:         ad.State,
		FrameRate:     ad.FrameRate,
		FrameStart:    ad.FrameStart,
		FrameEnd:      ad.FrameEnd,
		NextAnimation: ad.NextAnimation,
		NextFrame:     ad.NextFrame,
	}
	if a.FrameRate == 0 {
		a.FrameRate = 1
	}
	for _, sc := range ad.StateChanges {
		a.StateChanges = append(a.StateChanges, StateChange{State: sc.State, Ranges: sc.Ranges})
	}
	for i, cd := range ad.Commands {
		kind, ok := commandKinds[cd.Kind]
		if !ok {
			return a, fmt.Errorf("command %d: unknown kind %q", i, cd.Kind)
		}
		c := AnimCommand{Kind: kind, Frame: cd.Frame, Code: cd.Code}
		if kind == CmdOffset || kind == CmdJump {
			v, err := vec3(cd.Vector)
			if err != nil {
				return a, fmt.Errorf("command %d: %w", i, err)
			}
			c.Vector = v
		}
		a.Commands = append(a.Commands, c)
	}
	for i, kd := range ad.Frames {
		k, err := kd.build()
		if err != nil {
			return a, fmt.Errorf("frame %d: %w", i, err)
		}
		a.Frames = append(a.Frames, k)
	}
	return a, nil
}

func (kd *keyframeDef) build() (Keyframe, error) {
	var k Keyframe
	var err error
	if k.Box.Min, err = vec3(kd.Min); err != nil {
		return k, err
	}
	if k.Box.Max, err = vec3(kd.Max); err != nil {
		return k, err
	}
	if k.Offset, err = vec3(kd.Offset); err != nil {
		return k, err
	}
	for _, deg := range kd.Angles {
		v, err := vec3(deg)
		if err != nil {
			return k, err
		}
		k.Angles = append(k.Angles, mgl32.Vec3{
			mgl32.DegToRad(v[0]),
			mgl32.DegToRad(v[1]),
			mgl32.DegToRad(v[2]),
		})
	}
	return k, nil
}

// vec3 accepts an empty sequence as the zero vector
func vec3(s []float32) (mgl32.Vec3, error) {
	switch len(s) {
	case 0:
		return mgl32.Vec3{}, nil
	case 3:
		return mgl32.Vec3{s[0], s[1], s[2]}, nil
	}
	return mgl32.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(s))
}

package level

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/trigger"
	"github.com/lixenwraith/roomsim/vmath"
)

// NoRoom marks an absent room link
const NoRoom = -1

// NoBox marks a sector without a navigation box
const NoBox = -1

// Level owns the static tables of one loaded level
// Everything except Entities[i] placement write-back and Secrets is read-only after load
type Level struct {
	Rooms      []Room
	Boxes      []Box
	Models     []Model
	Meshes     []Mesh
	Animations []Animation
	Entities   []Entity
	Cameras    []Camera
	Sounds     SoundTable
	Triggers   *trigger.Arena
	Chains     []trigger.Ref
	Secrets    Secrets
}

// Room is one cell of the level graph
// Sectors are stored column-major: index = sx*ZSectors + sz
type Room struct {
	X, Z     int
	Top      int
	Bottom   int
	XSectors int
	ZSectors int
	Sectors  []Sector
}

// Sector is one 1024x1024 column of a room
// Heights grow downward; WallMarker in Floor marks a solid column
type Sector struct {
	Floor     int
	Ceiling   int
	RoomBelow int
	RoomAbove int
	RoomNext  int
	Box       int
}

// Box is a navigation box in world units, bounds inclusive
type Box struct {
	MinX, MaxX int
	MinZ, MaxZ int
	Floor      int
	Overlaps   []int
}

// Contains reports whether the column (x, z) lies inside the box
func (b *Box) Contains(x, z int) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Model is a skeletal model: a contiguous run of meshes plus their node hierarchy
type Model struct {
	MeshStart int
	MeshCount int
	Nodes     []Node
	Animation int
	ViewJoint int
	// BackFlipState is the state of the model's back-flip clip, constant.None when it has none
	BackFlipState int
}

// Node places one part relative to its parent; Parent < own index, -1 for the root
type Node struct {
	Parent int
	Offset mgl32.Vec3
}

// Mesh is a mesh resource slot; Empty slots are valid indices with nothing to draw
type Mesh struct {
	Name  string `yaml:"name"`
	Empty bool   `yaml:"empty"`
}

// Animation is one clip of the animation table
// Frame indices are absolute; FrameEnd is inclusive
type Animation struct {
	State         int
	FrameRate     int
	FrameStart    int
	FrameEnd      int
	NextAnimation int
	NextFrame     int
	StateChanges  []StateChange
	Commands      []AnimCommand
	Frames        []Keyframe
}

// FrameCount returns the number of frames in the clip
func (a *Animation) FrameCount() int {
	return a.FrameEnd - a.FrameStart + 1
}

// StateChange lists the successors reachable when the requested state is State
type StateChange struct {
	State  int
	Ranges []AnimRange
}

// AnimRange is a successor valid while the current frame lies in [Low, High]
type AnimRange struct {
	Low           int `yaml:"low"`
	High          int `yaml:"high"`
	NextAnimation int `yaml:"next_animation"`
	NextFrame     int `yaml:"next_frame"`
}

// CommandKind enumerates animation command records
type CommandKind uint8

const (
	CmdOffset CommandKind = iota + 1
	CmdJump
	CmdEmpty
	CmdKill
	CmdSound
	CmdEffect
)

// AnimCommand is one record of an animation's command stream
// Vector carries the offset (entity-local) or jump velocity (Y vertical, Z forward)
// Frame and Code apply to sound and effect commands
type AnimCommand struct {
	Kind   CommandKind
	Vector mgl32.Vec3
	Frame  int
	Code   int
}

// Keyframe is one sampled pose
type Keyframe struct {
	Box    vmath.Box
	Offset mgl32.Vec3
	Angles []mgl32.Vec3
}

// Entity is the placement record of one level entity
type Entity struct {
	Type     int
	Model    int
	Room     int
	X, Y, Z  int
	Rotation float32
	Rendered bool
	Shadow   bool
}

// Camera is a hardcoded camera position
type Camera struct {
	X, Y, Z int
	Room    int
}

// Position returns the camera position as a vector
func (c *Camera) Position() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}

// SoundTable maps sound ids to sample descriptions
type SoundTable struct {
	Map   []int
	Infos []SoundInfo
}

// SoundInfo describes the variants of one sound
// Chance 0 always plays; otherwise a 15-bit roll must not exceed it
type SoundInfo struct {
	Offset   int     `yaml:"offset"`
	Variants int     `yaml:"variants"`
	Volume   float32 `yaml:"volume"`
	Chance   int     `yaml:"chance"`
	Replay   bool    `yaml:"replay"`
}

// Lookup returns the sound info mapped to id
func (t *SoundTable) Lookup(id int) (SoundInfo, bool) {
	if id < 0 || id >= len(t.Map) {
		return SoundInfo{}, false
	}
	i := t.Map[id]
	if i < 0 || i >= len(t.Infos) {
		return SoundInfo{}, false
	}
	return t.Infos[i], true
}

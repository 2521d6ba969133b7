package controller

import "github.com/go-gl/mathgl/mgl32"

// Hooks are the per-actor override points of the command interpreter
type Hooks interface {
	// Offset applies a clip's root offset at clip end, entity-local
	Offset(offset mgl32.Vec3)
	// Jump applies a clip's jump velocity at clip end
	Jump(velocity mgl32.Vec3)
	Kill()
	Empty()
	// CheckRoom revalidates room membership after a move
	CheckRoom()
	// Custom runs whenever the frame index changed during a tick
	Custom(frame, prev int)
}

// BaseHooks moves on offsets and revalidates rooms; everything else is inert
// Actors embed it and override what they need
type BaseHooks struct {
	C *Controller
}

func (h BaseHooks) Offset(offset mgl32.Vec3) { h.C.MoveLocal(offset) }

func (h BaseHooks) Jump(mgl32.Vec3) {}

func (h BaseHooks) Kill() {}

func (h BaseHooks) Empty() {}

func (h BaseHooks) CheckRoom() { h.C.CheckRoom() }

func (h BaseHooks) Custom(int, int) {}

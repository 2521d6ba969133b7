package engine

import (
	"sync"

	"github.com/lixenwraith/roomsim/controller"
	"github.com/lixenwraith/roomsim/vmath"
)

type slot struct {
	actor    controller.Actor
	priority int
}

// World indexes actors by entity and keeps them in update order
// Bounds served to aiming come from the snapshot taken by Capture, never the live actors
type World struct {
	mu     sync.RWMutex
	byID   map[int]*slot
	order  []*slot
	camera controller.Actor
	boxes  map[int]vmath.Box

	updateMutex sync.Mutex
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		byID:  make(map[int]*slot),
		boxes: make(map[int]vmath.Box),
	}
}

// Add registers actor; lower priority updates first, entity index breaks ties
// Re-adding an entity replaces its actor
func (w *World) Add(actor controller.Actor, priority int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.byID[actor.Entity()]; ok {
		w.removeLocked(actor.Entity())
	}
	s := &slot{actor: actor, priority: priority}
	w.byID[actor.Entity()] = s
	w.order = append(w.order, s)

	// Insertion sort, small N and already ordered except for the new tail
	for i := len(w.order) - 1; i > 0 && w.before(w.order[i], w.order[i-1]); i-- {
		w.order[i], w.order[i-1] = w.order[i-1], w.order[i]
	}
}

func (w *World) before(a, b *slot) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.actor.Entity() < b.actor.Entity()
}

// Remove drops the actor of entity; it is no longer ticked or dispatched to
func (w *World) Remove(entity int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.removeLocked(entity)
}

func (w *World) removeLocked(entity int) {
	s, ok := w.byID[entity]
	if !ok {
		return
	}
	delete(w.byID, entity)
	delete(w.boxes, entity)
	for i, o := range w.order {
		if o == s {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// SetCamera installs the actor receiving camera links
func (w *World) SetCamera(a controller.Actor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.camera = a
}

// Actor returns the actor of entity, nil when there is none
func (w *World) Actor(entity int) controller.Actor {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if s, ok := w.byID[entity]; ok {
		return s.actor
	}
	return nil
}

// Camera returns the camera actor, nil when there is none
func (w *World) Camera() controller.Actor {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.camera
}

// Box returns the bounds of entity captured before the current tick
func (w *World) Box(entity int) (vmath.Box, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	b, ok := w.boxes[entity]
	return b, ok
}

// Capture snapshots every actor's bounds for cross-actor reads during the next tick
func (w *World) Capture() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, s := range w.byID {
		w.boxes[id] = s.actor.BoundingBox()
	}
}

// Actors returns the actors in update order
func (w *World) Actors() []controller.Actor {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]controller.Actor, len(w.order))
	for i, s := range w.order {
		result[i] = s.actor
	}
	return result
}

// Len returns the number of registered actors
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.order)
}

// RunSafe executes fn while holding the update lock
// The host takes it around Update and around any read of actor state from another goroutine
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

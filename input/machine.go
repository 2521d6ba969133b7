package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Machine accumulates terminal events into a Snapshot
// Terminals report presses but not releases, so key controls count as held
// for the tick following the press; the pause toggle is the exception
type Machine struct {
	keyTable *KeyTable

	pressed Button
	paused  bool
	stick   mgl32.Vec2

	dragging  bool
	lastMouse [2]int
	pointer   mgl32.Vec2
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// SetKeyTable replaces the bindings
func (m *Machine) SetKeyTable(t *KeyTable) {
	m.keyTable = t
}

// Process feeds one event; unrelated events are ignored
func (m *Machine) Process(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		b, ok := m.keyTable.Lookup(ev)
		if !ok {
			return
		}
		if b.Button == ButtonPause {
			m.paused = !m.paused
			return
		}
		m.pressed |= b.Button
		m.stick = m.stick.Add(mgl32.Vec2{b.Stick[0], b.Stick[1]})
	case *tcell.EventMouse:
		m.processMouse(ev)
	}
}

// Right-button drag orbits; the first event of a drag only anchors it
func (m *Machine) processMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button2 == 0 {
		m.dragging = false
		return
	}
	if m.dragging {
		m.pointer = m.pointer.Add(mgl32.Vec2{float32(x - m.lastMouse[0]), float32(y - m.lastMouse[1])})
	}
	m.dragging = true
	m.lastMouse = [2]int{x, y}
}

// Poll returns the snapshot for the coming tick and clears per-tick state
func (m *Machine) Poll() Snapshot {
	s := Snapshot{
		Buttons: m.pressed,
		Pointer: m.pointer,
		Stick: mgl32.Vec2{
			clampAxis(m.stick[0]),
			clampAxis(m.stick[1]),
		},
	}
	if m.paused {
		s.Buttons |= ButtonPause
	}
	if m.dragging {
		s.Buttons |= ButtonLook
	}
	m.pressed = 0
	m.stick = mgl32.Vec2{}
	m.pointer = mgl32.Vec2{}
	return s
}

// Reset clears all pending state including the pause toggle
func (m *Machine) Reset() {
	*m = Machine{keyTable: m.keyTable}
}

func clampAxis(v float32) float32 {
	return mgl32.Clamp(v, -1, 1)
}

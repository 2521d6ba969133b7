package input

import "github.com/gdamore/tcell/v2"

// Binding maps a key to a button or a stick direction
type Binding struct {
	Button Button
	Stick  [2]float32
}

// KeyTable maps keys to controls
type KeyTable struct {
	Keys  map[tcell.Key]Binding
	Runes map[rune]Binding
}

// DefaultKeyTable returns the default bindings: arrows and hjkl steer the stick,
// s and f scale time, space acts, q and Ctrl+C quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Binding{
			tcell.KeyCtrlC:  {Button: ButtonQuit},
			tcell.KeyEscape: {Button: ButtonQuit},
			tcell.KeyUp:     {Stick: [2]float32{0, -1}},
			tcell.KeyDown:   {Stick: [2]float32{0, 1}},
			tcell.KeyLeft:   {Stick: [2]float32{-1, 0}},
			tcell.KeyRight:  {Stick: [2]float32{1, 0}},
			tcell.KeyEnter:  {Button: ButtonAction},
		},
		Runes: map[rune]Binding{
			'q': {Button: ButtonQuit},
			'p': {Button: ButtonPause},
			's': {Button: ButtonSlowMotion},
			'f': {Button: ButtonFastForward},
			' ': {Button: ButtonAction},
			'h': {Stick: [2]float32{-1, 0}},
			'j': {Stick: [2]float32{0, 1}},
			'k': {Stick: [2]float32{0, -1}},
			'l': {Stick: [2]float32{1, 0}},
		},
	}
}

// Lookup returns the binding for a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := t.Runes[ev.Rune()]
		return b, ok
	}
	b, ok := t.Keys[ev.Key()]
	return b, ok
}

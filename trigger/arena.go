package trigger

import "fmt"

// Ref addresses a command inside an Arena
type Ref int32

// None is the empty reference: no command, end of chain
const None Ref = -1

// Command is one record of a trigger chain
type Command struct {
	Emitter int
	Action  Action
	Value   int
	Timer   float32
	Next    Ref
}

// Arena stores every trigger command of a level
// Links are indices; chains may share suffixes and are never mutated after Link
type Arena struct {
	cmds []Command
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of stored commands
func (a *Arena) Len() int {
	return len(a.cmds)
}

// At returns the command at r, panicking on a dangling reference
func (a *Arena) At(r Ref) Command {
	if r < 0 || int(r) >= len(a.cmds) {
		panic(fmt.Sprintf("trigger: reference %d out of range [0,%d)", r, len(a.cmds)))
	}
	return a.cmds[r]
}

// Next returns the link following r, or None
func (a *Arena) Next(r Ref) Ref {
	if r == None {
		return None
	}
	return a.At(r).Next
}

// Chain appends cmds linked in order and returns the head
// The last command links to None
func (a *Arena) Chain(cmds ...Command) Ref {
	return a.Link(None, cmds...)
}

// Link appends cmds linked in order with the last one continuing at tail
// Returns the head, or tail when cmds is empty
func (a *Arena) Link(tail Ref, cmds ...Command) Ref {
	if tail != None {
		a.At(tail)
	}
	if len(cmds) == 0 {
		return tail
	}
	head := Ref(len(a.cmds))
	for i, c := range cmds {
		c.Next = head + Ref(i) + 1
		if i == len(cmds)-1 {
			c.Next = tail
		}
		a.cmds = append(a.cmds, c)
	}
	return head
}

// Walk calls fn for every link starting at r, stopping when fn returns false
// Chains built through Link are acyclic: a run links in order, then to commands that already existed
func (a *Arena) Walk(r Ref, fn func(Ref, Command) bool) {
	for r != None {
		c := a.At(r)
		if !fn(r, c) {
			return
		}
		r = c.Next
	}
}

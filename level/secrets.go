package level

import (
	"fmt"

	"github.com/lixenwraith/roomsim/parameter"
)

// Secrets is the persistent secret-found bitset
type Secrets uint64

// Has reports whether secret i was found
func (s Secrets) Has(i int) bool {
	checkSecret(i)
	return s&(1<<uint(i)) != 0
}

// Set marks secret i found; returns false if it already was
func (s *Secrets) Set(i int) bool {
	checkSecret(i)
	bit := Secrets(1) << uint(i)
	if *s&bit != 0 {
		return false
	}
	*s |= bit
	return true
}

// Count returns the number of secrets found
func (s Secrets) Count() int {
	n := 0
	for v := uint64(s); v != 0; v &= v - 1 {
		n++
	}
	return n
}

func checkSecret(i int) {
	if i < 0 || i >= parameter.MaxSecrets {
		panic(fmt.Sprintf("level: secret index %d out of range", i))
	}
}

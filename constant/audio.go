package constant

// SoundFlags modify how the audio collaborator plays a sound
type SoundFlags uint8

const (
	// SoundPan positions the sound relative to the listener
	SoundPan SoundFlags = 1 << iota
	// SoundReplay restarts an already playing voice on the same channel
	SoundReplay
	// SoundLoop repeats the voice until stopped
	SoundLoop
)

// Sound ids referenced directly by the core
const (
	SoundBubble = 37
	SoundSecret = 173
)

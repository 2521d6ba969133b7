package parameter

// Animation timing
const (
	// AnimationFPS is the authored frame rate of animation frame indices
	AnimationFPS = 30.0

	// MaxJoints is the fixed per-entity joint budget
	MaxJoints = 32
)

// Gameplay effects
const (
	// BubbleChance is the probability that a bubble effect emits a bubble on one call
	BubbleChance = 0.3

	// MaxSecrets bounds the level secret bitset
	MaxSecrets = 64
)

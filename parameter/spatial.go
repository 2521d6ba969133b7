package parameter

// Room-graph ray march
const (
	// TraceStep is the march increment in world units
	TraceStep = 32.0

	// TraceMinDistance stops the march once the remaining distance drops to this
	TraceMinDistance = 1.0

	// TraceWallPush offsets a camera point off a blocking cell face
	TraceWallPush = 256.0
)

// Entity placement
const (
	// WallAlignHalfCell is the distance from a cell center to its faces
	WallAlignHalfCell = 512.0

	// ShadowLift raises the shadow blob above the floor it is cast on
	ShadowLift = 16.0

	// ShadowScale shrinks the animation box footprint for the shadow blob
	ShadowScale = 0.8
)

package parameter

// Camera projection and framing defaults
const (
	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 65.0

	// CameraNear is the near clip plane distance in world units
	CameraNear = 128.0

	// CameraFar is the far clip plane distance in world units
	CameraFar = 100.0 * 1024.0

	// CameraStandoff is the distance kept behind the look point when framing a tracked entity
	CameraStandoff = 1024.0 + 256.0

	// CameraSpawnDistance places a new rig this far behind its tracked entity
	CameraSpawnDistance = 1024.0
)

// Camera smoothing rates, applied as rate*dt lerp factors
const (
	// CameraFollowRate is used while no look-at target is active
	CameraFollowRate = 6.0

	// CameraTargetRate is used while a look-at target is active
	CameraTargetRate = 10.0
)

// Camera input response
const (
	// CameraPointerSensitivity converts pointer drag units to radians
	CameraPointerSensitivity = 0.01

	// CameraStickSpeed is radians per second at full stick deflection
	CameraStickSpeed = 2.0
)

// Back-flip framing: the eye slides sideways off the last destination instead of
// being recomputed from facing
const (
	CameraBackFlipSlide = 2048.0
	CameraBackFlipRise  = 512.0
)

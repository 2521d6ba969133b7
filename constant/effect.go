package constant

// Effect codes carried by animation effect commands
const (
	EffectRotate180 = 0
	EffectBubbles   = 2
	EffectHandsFree = 12
)

// EffectCodeMask strips authoring flags from a raw effect code
const EffectCodeMask = 0x3FFF

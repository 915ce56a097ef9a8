package config

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Default container the effect mounts into.
	DefaultContainer = "bg"

	// Effect defaults
	DefaultHeight         = 3.5
	DefaultBaseWidth      = 5.5
	DefaultGlow           = 1.0
	DefaultNoise          = 0.5
	DefaultScale          = 3.6
	DefaultHueShift       = 0.0
	DefaultColorFrequency = 1.0
	DefaultBloom          = 1.0
	DefaultTimeScale      = 0.5
	DefaultWobble         = true

	// Saturation is fixed; it is not part of Options.
	Saturation = 1.5

	// MinExtent is the lower bound for every field used as a divisor.
	MinExtent = 1e-3

	// Frame-time ring size for the debug overlay.
	FrameRingSize = 120
)

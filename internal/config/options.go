package config

import "math"

// Options are the user-facing visual parameters. Every field is optional:
// a nil field takes its default, a present field is clamped by Resolve.
type Options struct {
	Height         *float64 `json:"height,omitempty"`
	BaseWidth      *float64 `json:"baseWidth,omitempty"`
	Glow           *float64 `json:"glow,omitempty"`
	Noise          *float64 `json:"noise,omitempty"`
	Scale          *float64 `json:"scale,omitempty"`
	HueShift       *float64 `json:"hueShift,omitempty"`
	ColorFrequency *float64 `json:"colorFrequency,omitempty"`
	Bloom          *float64 `json:"bloom,omitempty"`
	TimeScale      *float64 `json:"timeScale,omitempty"`
	OffsetX        *float64 `json:"offsetX,omitempty"`
	OffsetY        *float64 `json:"offsetY,omitempty"`
	WobbleEnabled  *bool    `json:"wobbleEnabled,omitempty"`
}

// Float returns a pointer to v, for building Options literals.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// VisualConfig is the resolved, immutable form of Options.
type VisualConfig struct {
	Height          float64
	BaseHalfWidth   float64
	GlowIntensity   float64
	NoiseAmount     float64
	SpatialScale    float64
	HueShiftRadians float64
	ColorFrequency  float64
	BloomIntensity  float64
	TimeScale       float64
	OffsetX         float64
	OffsetY         float64
	WobbleEnabled   bool
}

// Defaults returns the configuration used when no option is set.
func Defaults() VisualConfig {
	return Resolve(Options{})
}

// Resolve fills defaults and clamps every field. It never fails.
func Resolve(o Options) VisualConfig {
	wobble := DefaultWobble
	if o.WobbleEnabled != nil {
		wobble = *o.WobbleEnabled
	}
	return VisualConfig{
		Height:          atLeast(pick(o.Height, DefaultHeight), MinExtent),
		BaseHalfWidth:   atLeast(pick(o.BaseWidth, DefaultBaseWidth), MinExtent) * 0.5,
		GlowIntensity:   atLeast(pick(o.Glow, DefaultGlow), 0),
		NoiseAmount:     atLeast(pick(o.Noise, DefaultNoise), 0),
		SpatialScale:    atLeast(pick(o.Scale, DefaultScale), MinExtent),
		HueShiftRadians: finite(pick(o.HueShift, DefaultHueShift)),
		ColorFrequency:  atLeast(pick(o.ColorFrequency, DefaultColorFrequency), 0),
		BloomIntensity:  atLeast(pick(o.Bloom, DefaultBloom), 0),
		TimeScale:       atLeast(pick(o.TimeScale, DefaultTimeScale), 0),
		OffsetX:         finite(pick(o.OffsetX, 0)),
		OffsetY:         finite(pick(o.OffsetY, 0)),
		WobbleEnabled:   wobble,
	}
}

// CenterShift lifts the pyramid so it sits centered in the view.
func (c VisualConfig) CenterShift() float64 { return c.Height * 0.25 }

func (c VisualConfig) InvBaseHalf() float64 { return 1 / c.BaseHalfWidth }

func (c VisualConfig) InvHeight() float64 { return 1 / c.Height }

// MinAxis is the smaller of the base half width and the height.
func (c VisualConfig) MinAxis() float64 { return math.Min(c.BaseHalfWidth, c.Height) }

func pick(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// atLeast clamps v to lo; NaN also maps to lo.
func atLeast(v, lo float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat32
	}
	return v
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Package kernel holds the uniform set of the prism effect and a CPU
// rendition of its per-pixel shading. The GPU stage in package gpu mirrors
// Shade line for line; this package is what the tests and still exports run.
package kernel

import "github.com/iburimskiy/prism-background/internal/config"

// Uniforms is the full parameter set of one draw call.
type Uniforms struct {
	// Resolution of the surface in device pixels.
	Resolution [2]float64
	// Time is the elapsed time in seconds.
	Time float64
	// OffsetPx is the configured offset in device pixels.
	OffsetPx [2]float64
	// PxScale maps device pixels to shading space.
	PxScale float64

	Height      float64
	BaseHalf    float64
	Glow        float64
	Noise       float64
	Saturation  float64
	Scale       float64
	HueShift    float64
	ColorFreq   float64
	Bloom       float64
	CenterShift float64
	InvBaseHalf float64
	InvHeight   float64
	MinAxis     float64
	TimeScale   float64
	Wobble      bool
}

// NewUniforms seeds a uniform set from a resolved configuration. Viewport
// dependent fields start at a 1x1 surface and are filled in on resize.
func NewUniforms(c config.VisualConfig) Uniforms {
	return Uniforms{
		Resolution:  [2]float64{1, 1},
		PxScale:     1,
		Height:      c.Height,
		BaseHalf:    c.BaseHalfWidth,
		Glow:        c.GlowIntensity,
		Noise:       c.NoiseAmount,
		Saturation:  config.Saturation,
		Scale:       c.SpatialScale,
		HueShift:    c.HueShiftRadians,
		ColorFreq:   c.ColorFrequency,
		Bloom:       c.BloomIntensity,
		CenterShift: c.CenterShift(),
		InvBaseHalf: c.InvBaseHalf(),
		InvHeight:   c.InvHeight(),
		MinAxis:     c.MinAxis(),
		TimeScale:   c.TimeScale,
		Wobble:      c.WobbleEnabled,
	}
}

// Pyramid returns the shape described by the uniforms.
func (u *Uniforms) Pyramid() Pyramid {
	return Pyramid{InvBaseHalf: u.InvBaseHalf, InvHeight: u.InvHeight, MinAxis: u.MinAxis}
}

package prism

import (
	"math"

	"github.com/iburimskiy/prism-background/internal/config"
	"github.com/iburimskiy/prism-background/internal/kernel"
)

// MaxDevicePixelRatio bounds the backing buffer size on dense displays.
const MaxDevicePixelRatio = 2.0

// RenderState is the mutable per-handle state. The resize handler owns the
// viewport fields, the animation driver owns ElapsedTime.
type RenderState struct {
	// Resolution in device pixels.
	Resolution       [2]float64
	PixelScale       float64
	ElapsedTime      float64
	OffsetPx         [2]float64
	DevicePixelRatio float64
}

// ClampDevicePixelRatio caps r at MaxDevicePixelRatio. Missing or invalid
// ratios read as 1.
func ClampDevicePixelRatio(r float64) float64 {
	if !(r > 0) || math.IsInf(r, 0) {
		return 1
	}
	return math.Min(r, MaxDevicePixelRatio)
}

// PixelScale maps device pixels to shading space for a surface of the
// given height.
func PixelScale(resolutionHeight, spatialScale float64) float64 {
	return 1 / (resolutionHeight * 0.1 * spatialScale)
}

// Resize recomputes the viewport fields for a container of width x height
// logical pixels and returns the backing buffer size. Empty dimensions
// are clamped to one pixel.
func (s *RenderState) Resize(width, height, dpr float64, c config.VisualConfig) (bufW, bufH int) {
	dpr = ClampDevicePixelRatio(dpr)
	width = atLeastOne(width)
	height = atLeastOne(height)

	s.DevicePixelRatio = dpr
	s.Resolution = [2]float64{width * dpr, height * dpr}
	s.PixelScale = PixelScale(s.Resolution[1], c.SpatialScale)
	s.OffsetPx = [2]float64{c.OffsetX * dpr, c.OffsetY * dpr}

	return bufferExtent(s.Resolution[0]), bufferExtent(s.Resolution[1])
}

// Apply copies the state into the viewport and time uniforms.
func (s *RenderState) Apply(u *kernel.Uniforms) {
	u.Resolution = s.Resolution
	u.PxScale = s.PixelScale
	u.OffsetPx = s.OffsetPx
	u.Time = s.ElapsedTime
}

func atLeastOne(v float64) float64 {
	if !(v >= 1) || math.IsInf(v, 0) {
		return 1
	}
	return v
}

func bufferExtent(v float64) int {
	n := int(math.Floor(v))
	if n < 1 {
		return 1
	}
	return n
}

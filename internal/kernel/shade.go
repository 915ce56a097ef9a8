package kernel

import "math"

const (
	// MarchSteps is the fixed raymarch budget per pixel.
	MarchSteps = 100

	startDepth  = 5.0
	minStep     = 0.1
	stepGain    = 0.2
	energyScale = 1e5

	// hueEpsilon below which the hue rotation is skipped.
	hueEpsilon = 1e-4
)

// Wobble returns the base oscillation matrix for time t (already multiplied
// by the time scale) in column-major order. The identity is returned when
// wobble is disabled.
func Wobble(enabled bool, t float64) [4]float64 {
	if !enabled {
		return [4]float64{1, 0, 0, 1}
	}
	c0 := math.Cos(t)
	return [4]float64{c0, math.Cos(t + 33), math.Cos(t + 11), c0}
}

// ApplyWobble multiplies the row vector (x, z) by the column-major matrix w.
func ApplyWobble(w [4]float64, x, z float64) (float64, float64) {
	return x*w[0] + z*w[1], x*w[2] + z*w[3]
}

// SceneDistance is the pyramid distance at p lifted by CenterShift on y.
func (u *Uniforms) SceneDistance(p Vec3) float64 {
	p.Y += u.CenterShift
	return u.Pyramid().Distance(p)
}

// Shade computes the color of the pixel whose center is at (fragX, fragY)
// in device pixels, origin bottom-left.
func Shade(fragX, fragY float64, u *Uniforms) Color {
	fx := (fragX - 0.5*u.Resolution[0] - u.OffsetPx[0]) * u.PxScale
	fy := (fragY - 0.5*u.Resolution[1] - u.OffsetPx[1]) * u.PxScale

	w := Wobble(u.Wobble, u.Time*u.TimeScale)

	z := startDepth
	var o [4]float64
	for i := 0; i < MarchSteps; i++ {
		p := Vec3{Y: fy}
		p.X, p.Z = ApplyWobble(w, fx, z)
		d := minStep + stepGain*math.Abs(u.SceneDistance(p))
		z -= d
		for k := range o {
			o[k] += (math.Sin((p.Y+z)*u.ColorFreq+float64(k)) + 1) / d
		}
	}

	gain := u.Glow * u.Bloom / energyScale
	for k := range o {
		o[k] = math.Tanh(o[k] * o[k] * gain)
	}

	n := noiseHash(fragX+u.Time, fragY+u.Time) - 0.5
	c := Color{
		R: clamp01(o[0] + n*u.Noise),
		G: clamp01(o[1] + n*u.Noise),
		B: clamp01(o[2] + n*u.Noise),
		A: o[3],
	}
	c = Saturate(c, u.Saturation)
	if math.Abs(u.HueShift) > hueEpsilon {
		c = HueRotate(c, u.HueShift)
	}
	return c
}

package kernel

import "math"

// Color is a linear RGBA value. RGB is in [0,1] after Shade; A is the
// compressed energy of the fourth channel.
type Color struct {
	R, G, B, A float64
}

// Rec. 709 luma weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance returns the Rec. 709 luma of c.
func Luminance(c Color) float64 {
	return c.R*lumaR + c.G*lumaG + c.B*lumaB
}

// Saturate mixes c with its luminance by factor s (s>1 boosts saturation)
// and clamps the result.
func Saturate(c Color, s float64) Color {
	l := Luminance(c)
	c.R = clamp01(l + (c.R-l)*s)
	c.G = clamp01(l + (c.G-l)*s)
	c.B = clamp01(l + (c.B-l)*s)
	return c
}

// Hue rotation basis, column-major (each line is one column).
var (
	hueW = [9]float64{
		0.299, 0.587, 0.114,
		0.299, 0.587, 0.114,
		0.299, 0.587, 0.114,
	}
	hueU = [9]float64{
		0.701, -0.587, -0.114,
		-0.299, 0.413, -0.114,
		-0.300, -0.588, 0.886,
	}
	hueV = [9]float64{
		0.168, -0.331, 0.500,
		0.328, 0.035, -0.500,
		-0.497, 0.296, 0.201,
	}
)

// HueMatrix returns W + U*cos(a) + V*sin(a), column-major.
func HueMatrix(a float64) [9]float64 {
	c, s := math.Cos(a), math.Sin(a)
	var m [9]float64
	for i := range m {
		m[i] = hueW[i] + hueU[i]*c + hueV[i]*s
	}
	return m
}

// HueRotate applies the hue matrix for angle a to the RGB part of c and
// clamps. Alpha is untouched.
func HueRotate(c Color, a float64) Color {
	m := HueMatrix(a)
	r := m[0]*c.R + m[3]*c.G + m[6]*c.B
	g := m[1]*c.R + m[4]*c.G + m[7]*c.B
	b := m[2]*c.R + m[5]*c.G + m[8]*c.B
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: c.A}
}

// noiseHash is the classic fract(sin(dot)) hash, in [0,1).
func noiseHash(x, y float64) float64 {
	v := math.Sin(x*12.9898+y*78.233) * 43758.5453123
	return v - math.Floor(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package kernel

import "math"

// invSqrt3 normalizes the octahedron plane distance.
const invSqrt3 = 0.5773502691896258

// Vec3 is a point in shading space.
type Vec3 struct {
	X, Y, Z float64
}

// Pyramid is an upside-down anisotropic octahedron cut by the y=0 plane.
type Pyramid struct {
	InvBaseHalf float64
	InvHeight   float64
	MinAxis     float64
}

// Octahedron returns the signed distance to the anisotropic octahedron.
// The estimate is scaled by the smaller axis so it stays comparable across
// flat and tall shapes.
func (s Pyramid) Octahedron(p Vec3) float64 {
	m := math.Abs(p.X)*s.InvBaseHalf + math.Abs(p.Y)*s.InvHeight + math.Abs(p.Z)*s.InvBaseHalf - 1
	return m * s.MinAxis * invSqrt3
}

// Distance returns the signed distance to the pyramid: the octahedron
// intersected with the half-space above y=0.
func (s Pyramid) Distance(p Vec3) float64 {
	return math.Max(s.Octahedron(p), -p.Y)
}

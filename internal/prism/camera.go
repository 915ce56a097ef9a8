package prism

// Matrix4 is a column-major 4x4 matrix.
type Matrix4 [16]float64

// Orthographic returns an orthographic projection with no perspective
// divide, in the OpenGL convention.
func Orthographic(left, right, top, bottom, near, far float64) Matrix4 {
	var m Matrix4
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	m[15] = 1
	return m
}

// FullscreenCamera covers clip space exactly: [-1,1] on both axes,
// near 0, far 1.
func FullscreenCamera() Matrix4 {
	return Orthographic(-1, 1, 1, -1, 0, 1)
}

// Project transforms (x, y, z, 1) by m and returns clip x and y.
func (m Matrix4) Project(x, y, z float64) (float64, float64) {
	cx := m[0]*x + m[4]*y + m[8]*z + m[12]
	cy := m[1]*x + m[5]*y + m[9]*z + m[13]
	return cx, cy
}

// QuadVertex is a corner of the fullscreen quad.
type QuadVertex struct {
	X, Y float64 // object space, z = 0
	U, V float64
}

// FullscreenQuad is a 2x2 plane centered at the origin, as two triangles.
func FullscreenQuad() ([4]QuadVertex, [6]uint16) {
	return [4]QuadVertex{
			{X: -1, Y: 1, U: 0, V: 1},
			{X: 1, Y: 1, U: 1, V: 1},
			{X: -1, Y: -1, U: 0, V: 0},
			{X: 1, Y: -1, U: 1, V: 0},
		},
		[6]uint16{0, 2, 1, 2, 3, 1}
}

// SurfacePosition maps a clip-space point to surface pixels, origin
// top-left, for a surface of w x h pixels.
func SurfacePosition(cx, cy float64, w, h int) (float64, float64) {
	return (cx + 1) * 0.5 * float64(w), (1 - cy) * 0.5 * float64(h)
}

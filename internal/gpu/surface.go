package gpu

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/prism-background/internal/kernel"
	"github.com/iburimskiy/prism-background/internal/prism"
)

// Surface is an offscreen image the effect is drawn into, together with
// the program and the fullscreen quad.
type Surface struct {
	img     *ebiten.Image
	shader  *ebiten.Shader
	w, h    int
	verts   []ebiten.Vertex
	indices []uint16
	op      ebiten.DrawTrianglesShaderOptions

	resolution [2]float32
	offset     [2]float32
}

func newSurface(shader *ebiten.Shader, w, h int) *Surface {
	_, idx := prism.FullscreenQuad()
	s := &Surface{
		shader:  shader,
		verts:   make([]ebiten.Vertex, 4),
		indices: idx[:],
	}
	// Each draw replaces the whole surface.
	s.op.Blend = ebiten.BlendCopy
	s.op.Uniforms = map[string]any{}
	s.allocate(w, h)
	return s
}

func (s *Surface) allocate(w, h int) {
	s.w, s.h = w, h
	s.img = ebiten.NewImage(w, h)

	cam := prism.FullscreenCamera()
	quad, _ := prism.FullscreenQuad()
	for i, v := range quad {
		cx, cy := cam.Project(v.X, v.Y, 0)
		x, y := prism.SurfacePosition(cx, cy, w, h)
		s.verts[i] = ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32(x),
			SrcY:   float32(y),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
}

// Image is the backing buffer, nil after Release.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Size() (int, int) { return s.w, s.h }

// Resize reallocates the backing buffer when the size changed.
func (s *Surface) Resize(w, h int) {
	if s.img == nil || (w == s.w && h == s.h) {
		return
	}
	s.img.Deallocate()
	s.allocate(w, h)
}

// Draw runs the shader over the whole surface.
func (s *Surface) Draw(u *kernel.Uniforms) {
	if s.img == nil {
		return
	}
	s.setUniforms(u)
	s.img.DrawTrianglesShader(s.verts, s.indices, s.shader, &s.op)
}

func (s *Surface) setUniforms(u *kernel.Uniforms) {
	s.resolution = [2]float32{float32(u.Resolution[0]), float32(u.Resolution[1])}
	s.offset = [2]float32{float32(u.OffsetPx[0]), float32(u.OffsetPx[1])}
	wobble := float32(0)
	if u.Wobble {
		wobble = 1
	}

	m := s.op.Uniforms
	m["Resolution"] = s.resolution[:]
	m["Time"] = float32(u.Time)
	m["OffsetPx"] = s.offset[:]
	m["PxScale"] = float32(u.PxScale)
	m["Glow"] = float32(u.Glow)
	m["Noise"] = float32(u.Noise)
	m["Saturation"] = float32(u.Saturation)
	m["HueShift"] = float32(u.HueShift)
	m["ColorFreq"] = float32(u.ColorFreq)
	m["Bloom"] = float32(u.Bloom)
	m["CenterShift"] = float32(u.CenterShift)
	m["InvBaseHalf"] = float32(u.InvBaseHalf)
	m["InvHeight"] = float32(u.InvHeight)
	m["MinAxis"] = float32(u.MinAxis)
	m["TimeScale"] = float32(u.TimeScale)
	m["Wobble"] = wobble
}

// Release frees the image and the program. Later calls are no-ops.
func (s *Surface) Release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	if s.shader != nil {
		s.shader.Deallocate()
		s.shader = nil
	}
}

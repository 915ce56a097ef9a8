package prism

import "testing"

func TestFullscreenCameraMapsQuadToClipSpace(t *testing.T) {
	cam := FullscreenCamera()
	verts, _ := FullscreenQuad()
	for _, v := range verts {
		x, y := cam.Project(v.X, v.Y, 0)
		if x != v.X || y != v.Y {
			t.Errorf("vertex (%v,%v) projected to (%v,%v)", v.X, v.Y, x, y)
		}
	}
}

func TestOrthographicDepthRange(t *testing.T) {
	m := Orthographic(-1, 1, 1, -1, 0, 1)
	// z_clip = m[10]*z + m[14]; near plane (z=0) -> -1, far (z=-1) -> 1.
	if near := m[10]*0 + m[14]; near != -1 {
		t.Fatalf("near maps to %v", near)
	}
	if far := m[10]*-1 + m[14]; far != 1 {
		t.Fatalf("far maps to %v", far)
	}
}

func TestFullscreenQuadCoversSurface(t *testing.T) {
	verts, idx := FullscreenQuad()
	minX, minY, maxX, maxY := 1e9, 1e9, -1e9, -1e9
	for _, v := range verts {
		x, y := SurfacePosition(v.X, v.Y, 400, 300)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	if minX != 0 || minY != 0 || maxX != 400 || maxY != 300 {
		t.Fatalf("quad covers (%v,%v)-(%v,%v)", minX, minY, maxX, maxY)
	}
	for _, i := range idx {
		if int(i) >= len(verts) {
			t.Fatalf("index %d out of range", i)
		}
	}
	// Top-left corner in clip space is the surface origin.
	if x, y := SurfacePosition(-1, 1, 400, 300); x != 0 || y != 0 {
		t.Fatalf("top-left maps to (%v,%v)", x, y)
	}
}

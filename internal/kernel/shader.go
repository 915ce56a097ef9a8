package kernel

import _ "embed"

// ShaderSource is the Kage program that runs Shade on the GPU.
//
//go:embed prism.kage
var ShaderSource []byte

// FragCoord converts a destination position in texture space to fragment
// coordinates with the origin at the bottom-left of the surface. origin is
// where the surface starts on its backing texture and h is its height.
func FragCoord(dstX, dstY, originX, originY, h float64) (float64, float64) {
	return dstX - originX, h - (dstY - originY)
}

// Package gpu renders the prism effect with an Ebitengine Kage shader.
package gpu

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/prism-background/internal/kernel"
	"github.com/iburimskiy/prism-background/internal/prism"
)

// Backend creates Kage-backed surfaces.
type Backend struct{}

// NewBackend checks that the shader compiles on this machine. A failure
// wraps prism.ErrNoGPU.
func NewBackend() (*Backend, error) {
	s, err := ebiten.NewShader(kernel.ShaderSource)
	if err != nil {
		return nil, fmt.Errorf("%w: compile shader: %v", prism.ErrNoGPU, err)
	}
	s.Deallocate()
	return &Backend{}, nil
}

// NewSurface compiles a program for a new w x h surface.
func (b *Backend) NewSurface(w, h int) (prism.Surface, error) {
	s, err := ebiten.NewShader(kernel.ShaderSource)
	if err != nil {
		return nil, fmt.Errorf("%w: compile shader: %v", prism.ErrNoGPU, err)
	}
	return newSurface(s, w, h), nil
}

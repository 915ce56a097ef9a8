package prism

import (
	"errors"
	"time"

	"github.com/iburimskiy/prism-background/internal/kernel"
)

// ErrNoGPU reports that no GPU rendering context could be created.
var ErrNoGPU = errors.New("prism: GPU rendering unavailable")

// Host is the page the effect lives in.
type Host interface {
	Scheduler
	// Container returns the container registered under id, or nil.
	Container(id string) Container
	// Backend returns the GPU backend, or nil when none is available.
	Backend() Backend
}

// Container is an element the rendering surface is attached to.
type Container interface {
	// Size is the measured size in logical pixels.
	Size() (width, height float64)
	// DevicePixelRatio is the host-reported ratio, uncapped.
	DevicePixelRatio() float64
	// Observe registers fn for size change notifications and returns a
	// function that removes it.
	Observe(fn func()) (cancel func())
	// Attach appends s to the container's visual tree.
	Attach(s Surface)
	// Detach removes s again.
	Detach(s Surface)
}

// Backend creates GPU surfaces.
type Backend interface {
	NewSurface(width, height int) (Surface, error)
}

// Surface is a GPU render target holding the compiled program.
type Surface interface {
	// Resize reallocates the backing buffer.
	Resize(width, height int)
	// Size reports the backing buffer size in device pixels.
	Size() (width, height int)
	// Draw issues one draw of the fullscreen quad with u.
	Draw(u *kernel.Uniforms)
	// Release frees all GPU-side resources.
	Release()
}

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler runs callbacks on the next display refresh.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Clock is the time source of the animation.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

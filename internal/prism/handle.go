// Package prism drives the animated prism background: it binds a GPU
// surface to a container, keeps the viewport uniforms in sync with the
// container size and advances the animation once per display refresh.
package prism

import (
	"time"

	"github.com/iburimskiy/prism-background/internal/config"
	"github.com/iburimskiy/prism-background/internal/kernel"
	"github.com/iburimskiy/prism-background/internal/logger"
)

var log = logger.Scoped("prism")

// Option customizes a Handle at Init.
type Option func(*Handle)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(h *Handle) { h.clock = c }
}

// WithFrameWindow sets how many recent frames FrameRate averages over.
func WithFrameWindow(n int) Option {
	return func(h *Handle) { h.ring = newFrameRing(n) }
}

// Handle owns one running effect. It is not safe for concurrent use; every
// method must run on the host's frame loop.
type Handle struct {
	id        string
	cfg       config.VisualConfig
	state     RenderState
	uniforms  kernel.Uniforms
	container Container
	surface   Surface
	sched     Scheduler
	clock     Clock
	start     time.Time

	frame     FrameID
	scheduled bool
	unobserve func()
	frames    uint64
	ring      *frameRing
	disposed  bool
}

// Init mounts the effect into the container registered as id. It returns
// nil, after logging a warning, when the container or the GPU is missing;
// the host keeps running either way.
func Init(host Host, id string, opts config.Options, options ...Option) *Handle {
	if host == nil {
		log.Warnf("no host; effect disabled")
		return nil
	}
	ctr := host.Container(id)
	if ctr == nil {
		log.Warnf("container %q not found; effect disabled", id)
		return nil
	}
	backend := host.Backend()
	if backend == nil {
		log.Warnf("%v; effect disabled", ErrNoGPU)
		return nil
	}

	cfg := config.Resolve(opts)
	h := &Handle{
		id:        id,
		cfg:       cfg,
		uniforms:  kernel.NewUniforms(cfg),
		container: ctr,
		sched:     host,
		clock:     systemClock{},
		ring:      newFrameRing(config.FrameRingSize),
	}
	for _, o := range options {
		o(h)
	}

	w, ht := ctr.Size()
	bw, bh := h.state.Resize(w, ht, ctr.DevicePixelRatio(), cfg)
	surface, err := backend.NewSurface(bw, bh)
	if err != nil {
		log.Warnf("create surface for %q: %v; effect disabled", id, err)
		return nil
	}
	h.surface = surface
	h.state.Apply(&h.uniforms)

	ctr.Attach(surface)
	h.unobserve = ctr.Observe(h.resize)
	h.start = h.clock.Now()
	h.schedule()

	log.Debugf("mounted in %q at %dx%d device pixels (dpr %.2f)", id, bw, bh, h.state.DevicePixelRatio)
	return h
}

// resize is the size change callback of the container.
func (h *Handle) resize() {
	if h.disposed {
		return
	}
	w, ht := h.container.Size()
	bw, bh := h.state.Resize(w, ht, h.container.DevicePixelRatio(), h.cfg)
	if sw, sh := h.surface.Size(); sw != bw || sh != bh {
		h.surface.Resize(bw, bh)
		log.Debugf("%q resized to %dx%d", h.id, bw, bh)
	}
	h.state.Apply(&h.uniforms)
}

// tick is one iteration of the animation loop.
func (h *Handle) tick() {
	h.scheduled = false
	if h.disposed {
		return
	}
	if t := h.clock.Now().Sub(h.start).Seconds(); t > h.state.ElapsedTime {
		h.state.ElapsedTime = t
	}
	h.state.Apply(&h.uniforms)
	h.surface.Draw(&h.uniforms)
	h.frames++
	h.ring.record(h.state.ElapsedTime)

	if h.disposed {
		return
	}
	h.schedule()
}

func (h *Handle) schedule() {
	h.frame = h.sched.RequestFrame(h.tick)
	h.scheduled = true
}

// Dispose stops the animation, detaches from the container and releases
// the surface. It is safe to call more than once and on a nil Handle.
func (h *Handle) Dispose() {
	if h == nil || h.disposed {
		return
	}
	h.disposed = true
	if h.scheduled {
		h.sched.CancelFrame(h.frame)
		h.scheduled = false
	}
	if h.unobserve != nil {
		h.unobserve()
		h.unobserve = nil
	}
	h.container.Detach(h.surface)
	h.surface.Release()
	log.Debugf("%q disposed after %d frames", h.id, h.frames)
}

// Disposed reports whether Dispose has been called.
func (h *Handle) Disposed() bool { return h.disposed }

// Config returns the resolved configuration.
func (h *Handle) Config() config.VisualConfig { return h.cfg }

// State returns a copy of the current render state.
func (h *Handle) State() RenderState { return h.state }

// Uniforms returns a copy of the uniform set used by the last draw.
func (h *Handle) Uniforms() kernel.Uniforms { return h.uniforms }

// Frames is the number of draws issued so far.
func (h *Handle) Frames() uint64 { return h.frames }

// FrameRate is the average frames per second over the recent window.
func (h *Handle) FrameRate() float64 { return h.ring.rate() }

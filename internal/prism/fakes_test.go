package prism

import (
	"time"

	"github.com/iburimskiy/prism-background/internal/kernel"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeSurface struct {
	w, h     int
	draws    int
	resizes  int
	released bool
	late     int // draws or resizes after release
	last     kernel.Uniforms
	onDraw   func()
}

func (s *fakeSurface) Resize(w, h int) {
	if s.released {
		s.late++
	}
	s.w, s.h = w, h
	s.resizes++
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) Draw(u *kernel.Uniforms) {
	if s.released {
		s.late++
	}
	s.draws++
	s.last = *u
	if s.onDraw != nil {
		s.onDraw()
	}
}

func (s *fakeSurface) Release() { s.released = true }

type fakeBackend struct {
	err      error
	surfaces []*fakeSurface
}

func (b *fakeBackend) NewSurface(w, h int) (Surface, error) {
	if b.err != nil {
		return nil, b.err
	}
	s := &fakeSurface{w: w, h: h}
	b.surfaces = append(b.surfaces, s)
	return s, nil
}

type fakeContainer struct {
	w, h      float64
	dpr       float64
	observers map[int]func()
	nextObs   int
	attached  []Surface
}

func newFakeContainer(w, h, dpr float64) *fakeContainer {
	return &fakeContainer{w: w, h: h, dpr: dpr, observers: map[int]func(){}}
}

func (c *fakeContainer) Size() (float64, float64) { return c.w, c.h }

func (c *fakeContainer) DevicePixelRatio() float64 { return c.dpr }

func (c *fakeContainer) Observe(fn func()) func() {
	c.nextObs++
	id := c.nextObs
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *fakeContainer) Attach(s Surface) { c.attached = append(c.attached, s) }

func (c *fakeContainer) Detach(s Surface) {
	for i, a := range c.attached {
		if a == s {
			c.attached = append(c.attached[:i], c.attached[i+1:]...)
			return
		}
	}
}

// setSize changes the measured size and notifies observers.
func (c *fakeContainer) setSize(w, h float64) {
	c.w, c.h = w, h
	for _, fn := range c.observers {
		fn()
	}
}

type fakeHost struct {
	*FrameQueue
	containers map[string]*fakeContainer
	backend    *fakeBackend
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		FrameQueue: NewFrameQueue(),
		containers: map[string]*fakeContainer{},
		backend:    &fakeBackend{},
	}
}

func (h *fakeHost) Container(id string) Container {
	c, ok := h.containers[id]
	if !ok {
		return nil
	}
	return c
}

func (h *fakeHost) Backend() Backend {
	if h.backend == nil {
		return nil
	}
	return h.backend
}

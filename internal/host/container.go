package host

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/prism-background/internal/prism"
)

// Inset are the container margins from the window edges, in logical pixels.
type Inset struct {
	Left, Top, Right, Bottom float64
}

// Container is a rectangular area of the window.
type Container struct {
	id    string
	win   *Window
	inset Inset

	observers map[int]func()
	nextObs   int
	surfaces  []prism.Surface

	lastW, lastH, lastDPR float64
}

// ID is the name the container was registered with.
func (c *Container) ID() string { return c.id }

// Size is the logical size. An empty area falls back to the window size.
func (c *Container) Size() (float64, float64) {
	w := c.win.width - c.inset.Left - c.inset.Right
	h := c.win.height - c.inset.Top - c.inset.Bottom
	if w <= 0 {
		w = c.win.width
	}
	if h <= 0 {
		h = c.win.height
	}
	return w, h
}

func (c *Container) DevicePixelRatio() float64 { return c.win.scale }

func (c *Container) Observe(fn func()) func() {
	c.nextObs++
	id := c.nextObs
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Container) Attach(s prism.Surface) {
	c.surfaces = append(c.surfaces, s)
}

func (c *Container) Detach(s prism.Surface) {
	if i := slices.Index(c.surfaces, s); i >= 0 {
		c.surfaces = slices.Delete(c.surfaces, i, i+1)
	}
}

func (c *Container) notify() {
	ids := make([]int, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := c.observers[id]; ok {
			fn()
		}
	}
}

type imageSurface interface {
	Image() *ebiten.Image
}

// composite draws every attached surface stretched over the container.
func (c *Container) composite(screen *ebiten.Image, scale float64) {
	cw, ch := c.Size()
	for _, s := range c.surfaces {
		is, ok := s.(imageSurface)
		if !ok {
			continue
		}
		img := is.Image()
		if img == nil {
			continue
		}
		sw, sh := s.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cw*scale/float64(sw), ch*scale/float64(sh))
		op.GeoM.Translate(c.inset.Left*scale, c.inset.Top*scale)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

// Package host runs prism effects inside an Ebitengine window. The window
// plays the part of the page: it owns named containers, reports their size
// and the device scale, and drives frame callbacks once per refresh.
package host

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/prism-background/internal/logger"
	"github.com/iburimskiy/prism-background/internal/prism"
)

var log = logger.Scoped("host")

// Window implements ebiten.Game and prism.Host.
type Window struct {
	frames     *prism.FrameQueue
	backend    prism.Backend
	containers map[string]*Container
	order      []*Container

	// logical window size and device scale factor
	width, height float64
	scale         float64

	background color.Color
	update     func() error
	overlay    func(screen *ebiten.Image)
}

// NewWindow creates a window of width x height logical pixels. backend may
// be nil when no GPU is available.
func NewWindow(width, height int, backend prism.Backend) *Window {
	return &Window{
		frames:     prism.NewFrameQueue(),
		backend:    backend,
		containers: map[string]*Container{},
		width:      float64(width),
		height:     float64(height),
		scale:      1,
		background: color.RGBA{R: 6, G: 6, B: 12, A: 255},
	}
}

// OnUpdate sets a hook run on every tick. Returning ebiten.Termination
// closes the window.
func (w *Window) OnUpdate(fn func() error) { w.update = fn }

// OnDraw sets a hook drawn on top of all containers.
func (w *Window) OnDraw(fn func(screen *ebiten.Image)) { w.overlay = fn }

// AddContainer registers a container covering the window minus inset.
func (w *Window) AddContainer(id string, inset Inset) *Container {
	c := &Container{id: id, win: w, inset: inset, observers: map[int]func(){}}
	c.lastW, c.lastH = c.Size()
	c.lastDPR = w.scale
	w.containers[id] = c
	w.order = append(w.order, c)
	return c
}

// Container implements prism.Host.
func (w *Window) Container(id string) prism.Container {
	c, ok := w.containers[id]
	if !ok {
		return nil
	}
	return c
}

// Backend implements prism.Host.
func (w *Window) Backend() prism.Backend { return w.backend }

func (w *Window) RequestFrame(fn func()) prism.FrameID { return w.frames.RequestFrame(fn) }

func (w *Window) CancelFrame(id prism.FrameID) { w.frames.CancelFrame(id) }

// DeviceScale is the last scale factor reported by the monitor.
func (w *Window) DeviceScale() float64 { return w.scale }

func (w *Window) Update() error {
	w.notifyResized()
	if w.update != nil {
		return w.update()
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.notifyResized()
	w.frames.Run()

	screen.Fill(w.background)
	for _, c := range w.order {
		c.composite(screen, w.scale)
	}
	if w.overlay != nil {
		w.overlay(screen)
	}
}

// Layout renders at device resolution so surfaces are not upscaled twice.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			w.scale = s
		}
	}
	w.width, w.height = float64(outsideWidth), float64(outsideHeight)
	return int(math.Ceil(w.width * w.scale)), int(math.Ceil(w.height * w.scale))
}

// notifyResized tells observers of every container whose measured size or
// device scale changed since the last notification.
func (w *Window) notifyResized() {
	for _, c := range w.order {
		cw, ch := c.Size()
		if cw == c.lastW && ch == c.lastH && w.scale == c.lastDPR {
			continue
		}
		c.lastW, c.lastH, c.lastDPR = cw, ch, w.scale
		log.Debugf("container %q is %.0fx%.0f at scale %.2f", c.ID(), cw, ch, w.scale)
		c.notify()
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/prism-background/internal/config"
	"github.com/iburimskiy/prism-background/internal/gpu"
	"github.com/iburimskiy/prism-background/internal/host"
	"github.com/iburimskiy/prism-background/internal/kernel"
	"github.com/iburimskiy/prism-background/internal/logger"
	"github.com/iburimskiy/prism-background/internal/prism"
)

const windowTitle = "Prism - O: open preset, R: reload, D: toggle, Tab: stats, Esc/Q: quit"

var errEffectDisabled = errors.New("effect disabled (see log)")

type app struct {
	win       *host.Window
	container string

	presetPath string
	opts       config.Options
	handle     *prism.Handle
	mounted    bool

	showStats bool
	lastErr   error
}

func newApp(win *host.Window, container, presetPath string, opts config.Options) *app {
	a := &app{
		win:        win,
		container:  container,
		presetPath: presetPath,
		opts:       opts,
	}
	win.OnUpdate(a.update)
	win.OnDraw(a.draw)
	return a
}

func (a *app) mount() {
	a.handle.Dispose()
	a.handle = prism.Init(a.win, a.container, a.opts)
	a.mounted = true
	if a.handle == nil {
		a.lastErr = errEffectDisabled
		return
	}
	a.lastErr = nil
}

func (a *app) unmount() {
	a.handle.Dispose()
	a.handle = nil
}

func (a *app) update() error {
	// Mount on the first tick so the window already knows its device scale.
	if !a.mounted {
		a.mount()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		if err := a.openPresetDialog(); err != nil {
			a.lastErr = err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := a.reloadPreset(); err != nil {
			a.lastErr = err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		if a.handle != nil {
			a.unmount()
		} else {
			a.mount()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		a.showStats = !a.showStats
	}
	return nil
}

func (a *app) draw(screen *ebiten.Image) {
	var lines []string
	if a.showStats {
		if a.handle != nil {
			st := a.handle.State()
			lines = append(lines,
				fmt.Sprintf("FPS: %0.2f (loop %0.2f)", ebiten.ActualFPS(), a.handle.FrameRate()),
				fmt.Sprintf("Frames: %d  Uptime: %s", a.handle.Frames(), formatDuration(time.Duration(st.ElapsedTime*float64(time.Second)))),
				fmt.Sprintf("Resolution: %.0fx%.0f  DPR: %.2f (device %.2f)", st.Resolution[0], st.Resolution[1], st.DevicePixelRatio, a.win.DeviceScale()),
				fmt.Sprintf("Pixel scale: %.6f", st.PixelScale),
			)
			u := a.handle.Uniforms()
			lines = append(lines, fmt.Sprintf("Hue shift: %.2f rad  Wobble: %t", u.HueShift, u.Wobble))
		} else {
			lines = append(lines, "Effect stopped - D to start")
		}
		if a.presetPath != "" {
			lines = append(lines, "Preset: "+a.presetPath)
		}
	}
	if a.lastErr != nil {
		lines = append(lines, "Error: "+a.lastErr.Error())
	}
	if len(lines) > 0 {
		ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
	}
}

func (a *app) openPresetDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Prism Preset"),
		zenity.FileFilters{{
			Name:     "Preset",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	a.presetPath = filename
	return a.reloadPreset()
}

// reloadPreset re-reads the preset file and remounts the effect. On error
// the running effect is left alone.
func (a *app) reloadPreset() error {
	if a.presetPath == "" {
		a.mount()
		return nil
	}
	opts, err := config.LoadFile(a.presetPath)
	if err != nil {
		return err
	}
	logger.Infof("loaded preset %s", a.presetPath)
	a.opts = opts
	a.mount()
	return nil
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// renderStill writes a single frame computed on the CPU to path.
func renderStill(ctx context.Context, path string, opts config.Options, width, height, dpr, at float64) error {
	cfg := config.Resolve(opts)
	var st prism.RenderState
	bw, bh := st.Resize(width, height, dpr, cfg)
	st.ElapsedTime = max(at, 0)

	u := kernel.NewUniforms(cfg)
	st.Apply(&u)

	start := time.Now()
	img, err := kernel.RenderImage(ctx, u, bw, bh)
	if err != nil {
		return err
	}
	logger.Infof("rendered %dx%d still in %s", bw, bh, time.Since(start).Round(time.Millisecond))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func run() error {
	var (
		presetPath = flag.String("config", "", "JSON preset with effect options")
		container  = flag.String("container", config.DefaultContainer, "container id to mount the effect into")
		logLevel   = flag.String("log-level", envOr("PRISM_LOG_LEVEL", "info"), "debug, info, warn or error")
		stillPath  = flag.String("still", "", "render one frame to this PNG file and exit")
		width      = flag.Float64("width", config.WindowWidth, "still frame width in logical pixels")
		height     = flag.Float64("height", config.WindowHeight, "still frame height in logical pixels")
		dpr        = flag.Float64("dpr", 1, "still frame device pixel ratio")
		at         = flag.Float64("time", 0, "still frame time in seconds")
	)
	flag.Parse()

	if !logger.SetLevel(*logLevel) {
		logger.Warnf("unknown log level %q, keeping info", *logLevel)
	}

	var opts config.Options
	if *presetPath != "" {
		var err error
		if opts, err = config.LoadFile(*presetPath); err != nil {
			return err
		}
	}

	if *stillPath != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return renderStill(ctx, *stillPath, opts, *width, *height, *dpr, *at)
	}

	var backend prism.Backend
	if b, err := gpu.NewBackend(); err != nil {
		logger.Errorf("%v", err)
	} else {
		backend = b
	}

	win := host.NewWindow(config.WindowWidth, config.WindowHeight, backend)
	win.AddContainer(config.DefaultContainer, host.Inset{})
	a := newApp(win, *container, *presetPath, opts)
	defer a.unmount()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	if err := run(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

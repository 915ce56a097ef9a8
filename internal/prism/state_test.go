package prism

import (
	"math"
	"testing"

	"github.com/iburimskiy/prism-background/internal/config"
	"github.com/iburimskiy/prism-background/internal/kernel"
)

func TestPixelScaleFormula(t *testing.T) {
	if got, want := PixelScale(800, 4), 1.0/320; got != want {
		t.Fatalf("PixelScale(800, 4)=%v want %v", got, want)
	}
}

func TestClampDevicePixelRatio(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1, 1},
		{1.5, 1.5},
		{2, 2},
		{3, 2},
		{0, 1},
		{-2, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
	}
	for _, tc := range cases {
		if got := ClampDevicePixelRatio(tc.in); got != tc.want {
			t.Errorf("ClampDevicePixelRatio(%v)=%v want %v", tc.in, got, tc.want)
		}
	}
}

func TestResize(t *testing.T) {
	cfg := config.Resolve(config.Options{
		Scale:   config.Float(4),
		OffsetX: config.Float(10),
		OffsetY: config.Float(-5),
	})
	var s RenderState
	bw, bh := s.Resize(400, 400, 3, cfg)

	if s.DevicePixelRatio != 2 {
		t.Errorf("dpr=%v want capped 2", s.DevicePixelRatio)
	}
	if s.Resolution != [2]float64{800, 800} {
		t.Errorf("resolution=%v", s.Resolution)
	}
	if bw != 800 || bh != 800 {
		t.Errorf("buffer=%dx%d", bw, bh)
	}
	if s.PixelScale != 1.0/320 {
		t.Errorf("pixelScale=%v want %v", s.PixelScale, 1.0/320)
	}
	if s.OffsetPx != [2]float64{20, -10} {
		t.Errorf("offset=%v", s.OffsetPx)
	}
}

func TestResizeIdempotent(t *testing.T) {
	cfg := config.Defaults()
	var a RenderState
	a.ElapsedTime = 3.25
	a.Resize(321, 123, 1.25, cfg)
	first := a
	a.Resize(321, 123, 1.25, cfg)
	if a != first {
		t.Fatalf("second resize changed state: %+v vs %+v", a, first)
	}
}

func TestResizeZeroSizeClamped(t *testing.T) {
	var s RenderState
	bw, bh := s.Resize(0, 0, 1, config.Defaults())
	if s.Resolution != [2]float64{1, 1} {
		t.Fatalf("resolution=%v want (1,1)", s.Resolution)
	}
	if bw != 1 || bh != 1 {
		t.Fatalf("buffer=%dx%d want 1x1", bw, bh)
	}
	if math.IsInf(s.PixelScale, 0) || math.IsNaN(s.PixelScale) {
		t.Fatalf("pixelScale not finite: %v", s.PixelScale)
	}

	s.Resize(-3, math.NaN(), 2, config.Defaults())
	if s.Resolution != [2]float64{2, 2} {
		t.Fatalf("resolution=%v want (2,2)", s.Resolution)
	}
}

func TestResizeFractionalBuffer(t *testing.T) {
	var s RenderState
	bw, bh := s.Resize(101, 33, 1.5, config.Defaults())
	if bw != 151 || bh != 49 {
		t.Fatalf("buffer=%dx%d want 151x49", bw, bh)
	}
	if s.Resolution != [2]float64{151.5, 49.5} {
		t.Fatalf("resolution=%v", s.Resolution)
	}
}

func TestApply(t *testing.T) {
	s := RenderState{
		Resolution:  [2]float64{640, 480},
		PixelScale:  0.5,
		ElapsedTime: 7,
		OffsetPx:    [2]float64{1, 2},
	}
	u := kernel.NewUniforms(config.Defaults())
	s.Apply(&u)
	if u.Resolution != s.Resolution || u.PxScale != 0.5 || u.Time != 7 || u.OffsetPx != s.OffsetPx {
		t.Fatalf("uniforms not synced: %+v", u)
	}
}

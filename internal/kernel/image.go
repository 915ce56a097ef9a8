package kernel

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RenderImage shades a w x h frame on the CPU, one row per task. The effect
// is composited over opaque black, which for its premultiplied output is
// the RGB channels as they are.
func RenderImage(ctx context.Context, u Uniforms, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("kernel: invalid frame size %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for row := 0; row < h; row++ {
		row := row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := 0; x < w; x++ {
				fx, fy := FragCoord(float64(x)+0.5, float64(row)+0.5, 0, 0, float64(h))
				c := Shade(fx, fy, &u)
				img.SetRGBA(x, row, color.RGBA{
					R: to8(c.R),
					G: to8(c.G),
					B: to8(c.B),
					A: 0xff,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("kernel: render: %w", err)
	}
	return img, nil
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

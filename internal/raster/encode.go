package raster

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/loxodrome/internal/curve"
	"github.com/san-kum/loxodrome/internal/palette"
	"github.com/san-kum/loxodrome/internal/scene"
)

// GIFPalette builds a 256-entry palette of the background plus evenly spaced
// shades of each ribbon color blended toward it.
func GIFPalette(bg colorful.Color, colors palette.Palette) color.Palette {
	out := color.Palette{palette.RGBA(bg)}
	if len(colors) == 0 {
		return out
	}
	shades := 255 / len(colors)
	for _, c := range colors {
		for i := 0; i < shades; i++ {
			amount := float64(i) / float64(shades)
			out = append(out, palette.RGBA(palette.Shade(c, bg, amount)))
		}
	}
	return out
}

func sceneColors(s *scene.Scene) palette.Palette {
	seen := make(map[string]bool)
	var out palette.Palette
	for _, rb := range s.Ribbons {
		if h := rb.Color.Hex(); !seen[h] {
			seen[h] = true
			out = append(out, rb.Color)
		}
	}
	return out
}

// WriteGIF renders the whole timeline at fps and encodes it as a looping GIF.
func WriteGIF(ctx context.Context, w io.Writer, s *scene.Scene, r *Renderer, fps int) error {
	times := s.FrameTimes(fps)
	if len(times) == 0 {
		return fmt.Errorf("raster: no frames at %d fps", fps)
	}
	pal := GIFPalette(r.Background, sceneColors(s))
	frames := make([]*image.Paletted, len(times))
	errs := make([]error, len(times))

	curve.ParallelFor(len(times), 4, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			img := r.Render(s.Frame(times[i]))
			p := image.NewPaletted(img.Bounds(), pal)
			draw.Draw(p, p.Rect, img, img.Bounds().Min, draw.Src)
			frames[i] = p
		}
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	anim := &gif.GIF{Image: frames, Delay: gifDelays(len(frames), fps), LoopCount: 0}
	slog.Debug("gif encoded", "frames", len(frames), "fps", fps)
	return gif.EncodeAll(w, anim)
}

// gifDelays spreads n frames at fps over whole centiseconds, carrying the
// rounding remainder so frame i ends at round((i+1)*100/fps). Every delay is
// at least 1cs.
func gifDelays(n, fps int) []int {
	delays := make([]int, n)
	elapsed := 0
	for i := range delays {
		end := int(math.Round(float64((i+1)*100) / float64(fps)))
		d := end - elapsed
		if d < 1 {
			d = 1
		}
		delays[i] = d
		elapsed += d
	}
	return delays
}

// WritePNGs renders the timeline into dir as frame_0000.png, ... and
// returns the number of frames written.
func WritePNGs(ctx context.Context, dir string, s *scene.Scene, r *Renderer, fps int) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	times := s.FrameTimes(fps)
	errs := make([]error, len(times))

	curve.ParallelFor(len(times), 4, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
			errs[i] = WritePNG(path, r.Render(s.Frame(times[i])))
		}
	})
	for _, err := range errs {
		if err != nil {
			return 0, err
		}
	}
	return len(times), nil
}

func WritePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

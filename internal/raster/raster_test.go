package raster

import (
	"bytes"
	"context"
	"image/gif"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/loxodrome/internal/config"
	"github.com/san-kum/loxodrome/internal/palette"
	"github.com/san-kum/loxodrome/internal/scene"
)

func smallScene(t *testing.T) *scene.Scene {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Ribbons = 4
	cfg.Dt = 0.05
	cfg.Animation.CreateRunTime = 0.4
	cfg.Animation.PulseRunTime = 0.2
	cfg.Animation.Wait = 0.2
	s, err := scene.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return s
}

func TestRenderBackgroundAndRibbons(t *testing.T) {
	s := smallScene(t)
	r := NewRenderer(s, 160, 90)

	img := r.Render(s.Frame(0))
	bg := palette.RGBA(s.Background)
	if got := img.At(80, 45); got != bg {
		t.Errorf("empty frame should be background, got %v", got)
	}

	img = r.Render(s.Final())
	lit := 0
	for y := 0; y < 90; y++ {
		for x := 0; x < 160; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			br, bgc, bb, _ := bg.RGBA()
			if cr != br || cg != bgc || cb != bb {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("final frame should draw ribbons")
	}
	if c := img.At(0, 0); c != bg {
		t.Errorf("corner should stay background, got %v", c)
	}
}

func TestGIFPalette(t *testing.T) {
	pal := GIFPalette(palette.Autumn[0], palette.Autumn)
	if len(pal) > 256 {
		t.Errorf("palette too large: %d", len(pal))
	}
	if len(pal) < 200 {
		t.Errorf("expected most of 256 entries, got %d", len(pal))
	}
}

func TestWriteGIF(t *testing.T) {
	s := smallScene(t)
	var buf bytes.Buffer
	if err := WriteGIF(context.Background(), &buf, s, NewRenderer(s, 64, 36), 10); err != nil {
		t.Fatalf("write gif failed: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if want := len(s.FrameTimes(10)); len(g.Image) != want {
		t.Errorf("expected %d frames, got %d", want, len(g.Image))
	}
	if g.Delay[0] != 10 {
		t.Errorf("expected 10cs delay, got %d", g.Delay[0])
	}
}

func TestWriteGIFPlaybackMatchesTimeline(t *testing.T) {
	s := smallScene(t)
	const fps = 30
	var buf bytes.Buffer
	if err := WriteGIF(context.Background(), &buf, s, NewRenderer(s, 32, 18), fps); err != nil {
		t.Fatalf("write gif failed: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	total := 0
	for i, d := range g.Delay {
		if d != 3 && d != 4 {
			t.Errorf("frame %d: expected 3 or 4cs delay, got %d", i, d)
		}
		total += d
	}
	// The last frame shows the end state for one frame period.
	want := s.Duration() + 1.0/fps
	if got := float64(total) / 100; math.Abs(got-want) > 0.01 {
		t.Errorf("playback %.2fs, timeline %.2fs", got, want)
	}
}

func TestGIFDelays(t *testing.T) {
	tests := []struct {
		n, fps int
		sum    int
	}{
		{n: 271, fps: 30, sum: 903},
		{n: 10, fps: 10, sum: 100},
		{n: 3, fps: 24, sum: 13},
		{n: 4, fps: 200, sum: 4},
	}
	for _, tt := range tests {
		delays := gifDelays(tt.n, tt.fps)
		if len(delays) != tt.n {
			t.Fatalf("fps %d: expected %d delays, got %d", tt.fps, tt.n, len(delays))
		}
		total := 0
		for _, d := range delays {
			if d < 1 {
				t.Errorf("fps %d: delay %d below 1cs", tt.fps, d)
			}
			total += d
		}
		if total != tt.sum {
			t.Errorf("fps %d: expected %dcs total, got %d", tt.fps, tt.sum, total)
		}
	}
}

func TestWriteGIFCanceled(t *testing.T) {
	s := smallScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := WriteGIF(ctx, &buf, s, NewRenderer(s, 32, 18), 10); err == nil {
		t.Error("expected cancellation error")
	}
}

func TestWritePNGs(t *testing.T) {
	s := smallScene(t)
	dir := filepath.Join(t.TempDir(), "frames")
	n, err := WritePNGs(context.Background(), dir, s, NewRenderer(s, 32, 18), 5)
	if err != nil {
		t.Fatalf("write pngs failed: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != n || n != len(s.FrameTimes(5)) {
		t.Errorf("expected %d files, got %d (n=%d)", len(s.FrameTimes(5)), len(entries), n)
	}
}

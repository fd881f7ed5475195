// Package scene assembles loxodrome ribbons and the animation timeline into
// renderable frames.
package scene

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/loxodrome/internal/anim"
	"github.com/san-kum/loxodrome/internal/config"
	"github.com/san-kum/loxodrome/internal/curve"
	"github.com/san-kum/loxodrome/internal/palette"
)

// Ribbon is one sampled loxodrome with its display attributes.
type Ribbon struct {
	Index       int
	AngleOffset float64
	Color       colorful.Color
	StrokeWidth float64
	Points      []r3.Vec
}

// Camera holds the initial viewpoint in radians.
type Camera struct {
	Phi, Theta float64
	Focal      float64
	Zoom       float64
}

type Scene struct {
	Params     curve.Params
	Range      curve.Range
	Ribbons    []Ribbon
	Timeline   *anim.Timeline
	Background colorful.Color
	Camera     Camera
}

// Build validates cfg and samples every ribbon concurrently.
func Build(ctx context.Context, cfg *config.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	colors, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	bg, err := palette.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	tl, err := cfg.Timeline()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	p, r := cfg.Params(), cfg.Range()
	ribbons := make([]Ribbon, p.Ribbons)
	errs := make([]error, p.Ribbons)

	curve.ParallelFor(p.Ribbons, 1, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			pts, err := curve.SampleChecked(p, i, r)
			if err != nil {
				errs[i] = err
				continue
			}
			ribbons[i] = Ribbon{
				Index:       i,
				AngleOffset: p.AngleOffset(i),
				Color:       colors.At(i),
				StrokeWidth: cfg.StrokeWidth,
				Points:      pts,
			}
		}
	})
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	slog.Debug("scene built",
		"ribbons", p.Ribbons,
		"samples", r.Len(),
		"elapsed", time.Since(start))

	return &Scene{
		Params:     p,
		Range:      r,
		Ribbons:    ribbons,
		Timeline:   tl,
		Background: bg,
		Camera: Camera{
			Phi:   cfg.Phi(),
			Theta: cfg.Theta(),
			Focal: cfg.Camera.FocalDistance,
			Zoom:  cfg.Camera.Zoom,
		},
	}, nil
}

// Duration is the length of the animation in seconds.
func (s *Scene) Duration() float64 {
	return s.Timeline.Duration()
}

// Visible is the drawn prefix of a ribbon at one instant.
type Visible struct {
	Ribbon *Ribbon
	Points []r3.Vec
}

// Frame is everything a renderer needs for one instant.
type Frame struct {
	Time    float64
	State   anim.State
	Scale   float64
	Camera  Camera
	Ribbons []Visible
}

// Frame evaluates the scene at sec seconds. Point slices alias the ribbons'
// samples and must not be modified.
func (s *Scene) Frame(sec float64) Frame {
	st := s.Timeline.At(sec)
	cam := s.Camera
	cam.Theta += st.ThetaOffset

	f := Frame{
		Time:    sec,
		State:   st,
		Scale:   st.Scale,
		Camera:  cam,
		Ribbons: make([]Visible, 0, len(s.Ribbons)),
	}
	for i := range s.Ribbons {
		rb := &s.Ribbons[i]
		n := revealCount(st.Reveal[i], len(rb.Points))
		if n == 0 {
			continue
		}
		f.Ribbons = append(f.Ribbons, Visible{Ribbon: rb, Points: rb.Points[:n]})
	}
	return f
}

// Final is the fully revealed, unscaled scene at its initial camera angle.
func (s *Scene) Final() Frame {
	f := s.Frame(s.Timeline.StartOf(s.Timeline.RotationStart))
	f.Scale = 1
	return f
}

// FrameTimes returns 0, 1/fps, 2/fps, ... up to and including Duration.
func (s *Scene) FrameTimes(fps int) []float64 {
	if fps <= 0 {
		return nil
	}
	d := s.Duration()
	n := int(math.Floor(d*float64(fps)+1e-9)) + 1
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / float64(fps)
	}
	return times
}

func revealCount(f float64, n int) int {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return n
	}
	c := int(math.Ceil(f * float64(n)))
	if c > n {
		c = n
	}
	return c
}

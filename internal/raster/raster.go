// Package raster draws scene frames into anti-aliased images with gg and
// encodes them as PNG sequences or animated GIFs.
package raster

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/loxodrome/internal/palette"
	"github.com/san-kum/loxodrome/internal/scene"
	"github.com/san-kum/loxodrome/internal/viz"
)

// StrokeUnit converts a stroke width into world units, so a width of 20
// draws a ribbon 0.2 units wide.
const StrokeUnit = 0.01

// DefaultDepthFade is how far the back of the sphere blends toward the
// background.
const DefaultDepthFade = 0.45

type Renderer struct {
	Width, Height int
	Background    colorful.Color
	Radius        float64
	DepthFade     float64
}

func NewRenderer(s *scene.Scene, w, h int) *Renderer {
	return &Renderer{
		Width:      w,
		Height:     h,
		Background: s.Background,
		Radius:     s.Params.Radius,
		DepthFade:  DefaultDepthFade,
	}
}

// Render draws one frame. Segments are stroked far to near with round caps
// so consecutive segments join into a continuous ribbon.
func (r *Renderer) Render(f scene.Frame) image.Image {
	dc := gg.NewContext(r.Width, r.Height)
	dc.SetColor(palette.RGBA(r.Background))
	dc.Clear()
	dc.SetLineCap(gg.LineCapRound)

	cam := viz.NewCamera(f.Camera)
	unit := cam.PixelsPerUnit(r.Width, r.Height)
	radius := r.Radius * f.Scale

	for _, s := range viz.ProjectFrame(f, cam, r.Width, r.Height) {
		dc.SetColor(palette.RGBA(viz.ShadedColor(s, r.Background, radius, r.DepthFade)))
		dc.SetLineWidth(s.Width * StrokeUnit * unit)
		dc.DrawLine(s.X1, s.Y1, s.X2, s.Y2)
		dc.Stroke()
	}
	return dc.Image()
}

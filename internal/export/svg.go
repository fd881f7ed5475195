package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/loxodrome/internal/raster"
	"github.com/san-kum/loxodrome/internal/scene"
	"github.com/san-kum/loxodrome/internal/viz"
)

// WriteSVG draws frame f as depth-sorted round-capped line segments.
func WriteSVG(w io.Writer, s *scene.Scene, f scene.Frame, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("export: invalid svg size %dx%d", width, height)
	}
	cam := viz.NewCamera(f.Camera)
	unit := cam.PixelsPerUnit(width, height)
	radius := s.Params.Radius * f.Scale

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("loxodrome: %d ribbons, %g turns, t=%.2fs", len(s.Ribbons), s.Params.Turns, f.Time))
	canvas.Rect(0, 0, width, height, "fill:"+s.Background.Hex())
	canvas.Gid("ribbons")
	for _, seg := range viz.ProjectFrame(f, cam, width, height) {
		c := viz.ShadedColor(seg, s.Background, radius, raster.DefaultDepthFade)
		canvas.Line(
			round(seg.X1), round(seg.Y1), round(seg.X2), round(seg.Y2),
			fmt.Sprintf("stroke:%s;stroke-width:%.2f;stroke-linecap:round", c.Hex(), seg.Width*raster.StrokeUnit*unit),
		)
	}
	canvas.Gend()
	canvas.End()
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}

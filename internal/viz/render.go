package viz

import (
	"math"

	"github.com/san-kum/loxodrome/internal/scene"
)

// RenderFrame draws f onto the Braille canvas in painter's order.
func RenderFrame(c *Canvas, f scene.Frame, cam Camera) {
	if c == nil {
		return
	}
	c.Clear()
	w, h := c.Dots()
	for _, s := range ProjectFrame(f, cam, w, h) {
		x1, y1 := int(math.Round(s.X1)), int(math.Round(s.Y1))
		x2, y2 := int(math.Round(s.X2)), int(math.Round(s.Y2))
		c.DrawLine(x1, y1, x2, y2, s.Ribbon, s.Depth)
	}
}

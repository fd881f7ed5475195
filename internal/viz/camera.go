package viz

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/loxodrome/internal/palette"
	"github.com/san-kum/loxodrome/internal/scene"
)

// FrameHeight is the number of world units spanned by the screen height at
// zoom 1.
const FrameHeight = 8.0

// Camera orbits the origin. Phi is measured from the +z axis and Theta
// around it; at Phi=0, Theta=-pi/2 the view looks straight down with +x to
// the right.
type Camera struct {
	Phi, Theta float64
	Focal      float64
	Zoom       float64
}

func NewCamera(c scene.Camera) Camera {
	return Camera{Phi: c.Phi, Theta: c.Theta, Focal: c.Focal, Zoom: c.Zoom}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// View rotates a world point into camera space, +z pointing at the viewer.
func (c Camera) View(p r3.Vec) r3.Vec {
	sa, ca := math.Sincos(-(c.Theta + math.Pi/2))
	p.X, p.Y = p.X*ca-p.Y*sa, p.X*sa+p.Y*ca
	sb, cb := math.Sincos(-c.Phi)
	p.Y, p.Z = p.Y*cb-p.Z*sb, p.Y*sb+p.Z*cb
	return p
}

// Project maps a world point to screen coordinates in a w x h viewport.
// It returns x, y, depth and whether the point is in front of the camera.
func (c Camera) Project(p r3.Vec, w, h int) (float64, float64, float64, bool) {
	q := c.View(p)
	if c.Focal > 0 && q.Z >= c.Focal {
		return 0, 0, q.Z, false
	}
	persp := 1.0
	if c.Focal > 0 {
		persp = c.Focal / (c.Focal - q.Z)
	}
	unit := c.Zoom * math.Min(float64(w), float64(h)) / FrameHeight
	sx := float64(w)/2 + q.X*persp*unit
	sy := float64(h)/2 - q.Y*persp*unit
	return sx, sy, q.Z, true
}

// PixelsPerUnit is the screen scale at the focal plane.
func (c Camera) PixelsPerUnit(w, h int) float64 {
	return c.Zoom * math.Min(float64(w), float64(h)) / FrameHeight
}

// Segment is one projected piece of a ribbon.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Depth          float64
	Ribbon         int
	Color          colorful.Color
	Width          float64
}

// ProjectFrame projects every visible ribbon segment and sorts them far to
// near for painter's-order drawing.
func ProjectFrame(f scene.Frame, cam Camera, w, h int) []Segment {
	n := 0
	for _, v := range f.Ribbons {
		if len(v.Points) > 1 {
			n += len(v.Points) - 1
		} else {
			n++
		}
	}
	segs := make([]Segment, 0, n)

	for _, v := range f.Ribbons {
		pts := v.Points
		px, py, pd, pok := cam.Project(r3.Scale(f.Scale, pts[0]), w, h)
		if len(pts) == 1 && pok {
			segs = append(segs, Segment{px, py, px, py, pd, v.Ribbon.Index, v.Ribbon.Color, v.Ribbon.StrokeWidth})
			continue
		}
		for _, p := range pts[1:] {
			x, y, d, ok := cam.Project(r3.Scale(f.Scale, p), w, h)
			if ok && pok {
				segs = append(segs, Segment{px, py, x, y, (pd + d) / 2, v.Ribbon.Index, v.Ribbon.Color, v.Ribbon.StrokeWidth})
			}
			px, py, pd, pok = x, y, d, ok
		}
	}

	sort.SliceStable(segs, func(i, j int) bool { return segs[i].Depth < segs[j].Depth })
	return segs
}

// Fade returns how far a segment at depth should blend toward the
// background: 0 at the front of a sphere of the given radius, limit at the back.
func Fade(depth, radius, limit float64) float64 {
	if radius <= 0 {
		return 0
	}
	near := (depth + radius) / (2 * radius)
	if near > 1 {
		near = 1
	}
	if near < 0 {
		near = 0
	}
	return limit * (1 - near)
}

// ShadedColor applies depth fading to a segment's color.
func ShadedColor(s Segment, bg colorful.Color, radius, limit float64) colorful.Color {
	return palette.Shade(s.Color, bg, Fade(s.Depth, radius, limit))
}

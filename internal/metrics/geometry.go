package metrics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type ArcLength struct {
	length float64
	prev   r3.Vec
	seen   bool
}

func NewArcLength() *ArcLength { return &ArcLength{} }

func (a *ArcLength) Name() string { return "arc_length" }

func (a *ArcLength) Observe(p r3.Vec) {
	if a.seen {
		a.length += r3.Norm(r3.Sub(p, a.prev))
	}
	a.prev = p
	a.seen = true
}

func (a *ArcLength) Value() float64 { return a.length }

func (a *ArcLength) Reset() { *a = ArcLength{} }

// RadiusDrift is the largest relative deviation of |p| from the sphere radius.
type RadiusDrift struct {
	radius   float64
	maxDrift float64
}

func NewRadiusDrift(radius float64) *RadiusDrift {
	return &RadiusDrift{radius: radius}
}

func (d *RadiusDrift) Name() string { return "radius_drift" }

func (d *RadiusDrift) Observe(p r3.Vec) {
	if d.radius == 0 {
		return
	}
	drift := math.Abs(r3.Norm(p)-d.radius) / math.Abs(d.radius)
	d.maxDrift = math.Max(d.maxDrift, drift)
}

func (d *RadiusDrift) Value() float64 { return d.maxDrift }

func (d *RadiusDrift) Reset() { d.maxDrift = 0 }

// Containment is the fraction of points inside the sphere, allowing a
// relative tolerance.
type Containment struct {
	limit      float64
	violations int
	samples    int
}

func NewContainment(radius, tol float64) *Containment {
	return &Containment{limit: radius * (1 + tol)}
}

func (c *Containment) Name() string { return "containment" }

func (c *Containment) Observe(p r3.Vec) {
	c.samples++
	if n := r3.Norm(p); n > c.limit || math.IsNaN(n) {
		c.violations++
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}

// Winding counts full turns about the z axis, signed by direction.
type Winding struct {
	total float64
	prev  float64
	seen  bool
}

func NewWinding() *Winding { return &Winding{} }

func (w *Winding) Name() string { return "winding" }

func (w *Winding) Observe(p r3.Vec) {
	lam := math.Atan2(p.Y, p.X)
	if w.seen {
		d := lam - w.prev
		for d > math.Pi {
			d -= 2 * math.Pi
		}
		for d < -math.Pi {
			d += 2 * math.Pi
		}
		w.total += d
	}
	w.prev = lam
	w.seen = true
}

func (w *Winding) Value() float64 { return w.total / (2 * math.Pi) }

func (w *Winding) Reset() { *w = Winding{} }

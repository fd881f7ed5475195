package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Params are the fixed inputs shared by every ribbon of a bundle.
type Params struct {
	Radius  float64
	Ribbons int
	Turns   float64
}

// Generator maps a latitude t (radians) to a point on the sphere.
type Generator func(t float64) r3.Vec

// DefaultParams returns the radius, ribbon and winding counts of the autumn scene.
func DefaultParams() Params {
	return Params{Radius: 2.5, Ribbons: 12, Turns: 2}
}

func (p Params) Validate() error {
	if !(p.Radius > 0) || math.IsInf(p.Radius, 0) {
		return fmt.Errorf("radius %v: %w", p.Radius, ErrParameterBounds)
	}
	if p.Ribbons < 1 {
		return fmt.Errorf("ribbons %d: %w", p.Ribbons, ErrParameterBounds)
	}
	if math.IsNaN(p.Turns) || math.IsInf(p.Turns, 0) {
		return fmt.Errorf("turns %v: %w", p.Turns, ErrParameterBounds)
	}
	return nil
}

// AngleOffset is the longitude shift of ribbon index: (index/ribbons)*2pi.
func (p Params) AngleOffset(index int) float64 {
	return float64(index) / float64(p.Ribbons) * 2 * math.Pi
}

// Scale is the rhumb-line constant turns/pi.
func (p Params) Scale() float64 {
	return p.Turns / math.Pi
}

// Longitude returns lambda for ribbon index at latitude t.
func (p Params) Longitude(index int, t float64) float64 {
	return longitude(p.Scale(), p.AngleOffset(index), t)
}

// Point evaluates ribbon index at latitude t.
func (p Params) Point(index int, t float64) r3.Vec {
	return spherical(p.Radius, t, p.Longitude(index, t))
}

// Generator closes over the ribbon's offset and the winding scale so they are
// not recomputed per sample.
func (p Params) Generator(index int) Generator {
	r, scale, offset := p.Radius, p.Scale(), p.AngleOffset(index)
	return func(t float64) r3.Vec {
		return spherical(r, t, longitude(scale, offset, t))
	}
}

func longitude(scale, offset, phi float64) float64 {
	return scale*math.Log(math.Tan(phi/2+math.Pi/4)) + offset
}

func spherical(r, phi, lam float64) r3.Vec {
	sp, cp := math.Sincos(phi)
	sl, cl := math.Sincos(lam)
	return r3.Vec{X: r * cp * cl, Y: r * cp * sl, Z: r * sp}
}

package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultBound is the literal latitude limit used by the autumn scene. It
// stops about 0.07 rad short of each pole.
const DefaultBound = 1.5

// Range is a closed latitude interval sampled every Dt radians.
type Range struct {
	TMin float64 `json:"t_min"`
	TMax float64 `json:"t_max"`
	Dt   float64 `json:"dt"`
}

func DefaultRange() Range {
	return Range{TMin: -DefaultBound, TMax: DefaultBound, Dt: 0.01}
}

// SafeBound returns pi/2 - eps, a computed alternative to DefaultBound.
func SafeBound(eps float64) float64 {
	return math.Pi/2 - eps
}

func (r Range) Validate() error {
	if !(r.Dt > 0) || math.IsInf(r.Dt, 0) {
		return fmt.Errorf("dt %v: %w", r.Dt, ErrInvalidRange)
	}
	if !(r.TMin < r.TMax) {
		return fmt.Errorf("[%v, %v]: %w", r.TMin, r.TMax, ErrInvalidRange)
	}
	if !(r.TMin > -math.Pi/2) || !(r.TMax < math.Pi/2) {
		return fmt.Errorf("[%v, %v]: %w", r.TMin, r.TMax, ErrPoleDomain)
	}
	return nil
}

// Len is the number of samples Sample produces for r.
func (r Range) Len() int {
	n := int(math.Floor((r.TMax-r.TMin)/r.Dt+1e-9)) + 1
	if r.TMin+float64(n-1)*r.Dt < r.TMax-1e-9 {
		n++
	}
	return n
}

// At returns the i-th sample parameter, clamped to TMax.
func (r Range) At(i int) float64 {
	t := r.TMin + float64(i)*r.Dt
	if t > r.TMax {
		return r.TMax
	}
	return t
}

// Sample evaluates gen at TMin, TMin+Dt, ... and always ends with TMax.
// The range must already be valid.
func Sample(gen Generator, r Range) []r3.Vec {
	n := r.Len()
	pts := make([]r3.Vec, n)
	for i := 0; i < n-1; i++ {
		pts[i] = gen(r.At(i))
	}
	pts[n-1] = gen(r.TMax)
	return pts
}

// SampleChecked validates r, samples ribbon index of p and rejects any
// non-finite point.
func SampleChecked(p Params, index int, r Range) ([]r3.Vec, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	pts := Sample(p.Generator(index), r)
	for i, v := range pts {
		if !finite(v) {
			return nil, &SampleError{Ribbon: index, T: r.At(i), Wrapped: ErrPoleDomain}
		}
	}
	return pts, nil
}

func finite(v r3.Vec) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

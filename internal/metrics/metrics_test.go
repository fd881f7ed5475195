package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/loxodrome/internal/curve"
)

func equator(r float64, n int) []r3.Vec {
	pts := make([]r3.Vec, n+1)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}

func TestArcLengthCircle(t *testing.T) {
	pts := equator(1, 1000)
	res := Evaluate(pts, NewArcLength())
	if math.Abs(res[0].Value-2*math.Pi) > 1e-4 {
		t.Errorf("expected circumference 2π, got %f", res[0].Value)
	}
}

func TestWindingCircle(t *testing.T) {
	pts := equator(2, 360)
	res := Evaluate(pts, NewWinding())
	if math.Abs(res[0].Value-1) > 1e-9 {
		t.Errorf("expected one turn, got %f", res[0].Value)
	}
}

func TestLoxodromeOnSphere(t *testing.T) {
	p := curve.DefaultParams()
	pts := curve.Sample(p.Generator(3), curve.DefaultRange())

	res := Evaluate(pts, Standard(p.Radius)...)
	byName := map[string]float64{}
	for _, r := range res {
		byName[r.Name] = r.Value
	}

	if byName["radius_drift"] > 1e-12 {
		t.Errorf("expected points on sphere, drift %g", byName["radius_drift"])
	}
	if byName["containment"] != 1 {
		t.Errorf("expected full containment, got %f", byName["containment"])
	}
	// TURNS/π · (ln tan(1.5/2+π/4) − ln tan(−1.5/2+π/4)) / 2π
	want := p.Scale() * 2 * math.Log(math.Tan(0.75+math.Pi/4)) / (2 * math.Pi)
	if math.Abs(byName["winding"]-want) > 1e-9 {
		t.Errorf("expected winding %f, got %f", want, byName["winding"])
	}
	if byName["arc_length"] <= 0 {
		t.Error("expected positive arc length")
	}
}

func TestContainmentDetectsOutliers(t *testing.T) {
	c := NewContainment(1, 0)
	c.Observe(r3.Vec{X: 0.5})
	c.Observe(r3.Vec{X: 2})
	if c.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", c.Value())
	}
	c.Reset()
	if c.Value() != 1 {
		t.Error("expected 1 after reset")
	}
}

func TestRadiusDriftReset(t *testing.T) {
	d := NewRadiusDrift(2)
	d.Observe(r3.Vec{Z: 3})
	if math.Abs(d.Value()-0.5) > 1e-12 {
		t.Errorf("expected drift 0.5, got %f", d.Value())
	}
	d.Reset()
	if d.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

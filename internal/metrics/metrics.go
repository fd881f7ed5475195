// Package metrics measures sampled ribbons. Each metric observes points one
// at a time so it can run over stored samples or a live generator alike.
package metrics

import (
	"gonum.org/v1/gonum/spatial/r3"
)

type Metric interface {
	Name() string
	Observe(p r3.Vec)
	Value() float64
	Reset()
}

// Result is one named metric value.
type Result struct {
	Name  string
	Value float64
}

// Evaluate resets each metric, feeds it every point and collects the values.
func Evaluate(points []r3.Vec, ms ...Metric) []Result {
	out := make([]Result, len(ms))
	for i, m := range ms {
		m.Reset()
		for _, p := range points {
			m.Observe(p)
		}
		out[i] = Result{Name: m.Name(), Value: m.Value()}
	}
	return out
}

// Standard returns the metrics reported for a ribbon on a sphere of radius r.
func Standard(radius float64) []Metric {
	return []Metric{
		NewArcLength(),
		NewRadiusDrift(radius),
		NewContainment(radius, 1e-9),
		NewWinding(),
	}
}

// Package anim sequences the reveal, pulse and pause of a ribbon scene.
//
// Rate functions map linear progress in [0,1] to eased progress. Smooth is a
// normalized sigmoid with inflection 10; ThereAndBack runs it out and back.
package anim

import (
	"fmt"
	"math"
	"sort"
)

// Rate maps linear progress t in [0,1] to eased progress.
type Rate func(t float64) float64

const smoothInflection = 10.0

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func Linear(t float64) float64 {
	return clamp01(t)
}

// Smooth is a normalised logistic curve with zero slope at both ends.
func Smooth(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	e := sigmoid(-smoothInflection / 2)
	return clamp01((sigmoid(smoothInflection*(t-0.5)) - e) / (1 - 2*e))
}

// ThereAndBack rises smoothly to 1 at t=0.5 and returns to 0 at t=1.
func ThereAndBack(t float64) float64 {
	if t < 0.5 {
		return Smooth(2 * t)
	}
	return Smooth(2 - 2*t)
}

func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

var rates = map[string]Rate{
	"linear":         Linear,
	"smooth":         Smooth,
	"there_and_back": ThereAndBack,
	"ease_in_out":    EaseInOutCubic,
}

// RateFunc looks up a rate function by its config name.
func RateFunc(name string) (Rate, error) {
	r, ok := rates[name]
	if !ok {
		return nil, fmt.Errorf("anim: unknown rate function %q (available: %v)", name, RateNames())
	}
	return r, nil
}

func RateNames() []string {
	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

package anim

import (
	"fmt"
	"math"
)

// Kind identifies a timeline phase.
type Kind int

const (
	Create Kind = iota
	Pulse
	Wait
)

func (k Kind) String() string {
	switch k {
	case Create:
		return "create"
	case Pulse:
		return "pulse"
	case Wait:
		return "wait"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Phase is one step of the timeline.
type Phase struct {
	Kind     Kind
	Duration float64
	Rate     Rate

	// Lag is the stagger ratio between ribbons for Create.
	Lag float64
	// ItemRate eases each ribbon's own reveal within Create.
	ItemRate Rate
	// Scale is the peak scale factor for Pulse.
	Scale float64
}

// Timeline is an ordered list of phases plus an ambient camera rotation that
// begins when phase RotationStart begins.
type Timeline struct {
	Ribbons       int
	Phases        []Phase
	RotationStart int
	RotationRate  float64
}

// Default returns the autumn sequence: a 4s staggered smooth reveal, a 2s
// there-and-back pulse to 1.1x while the camera starts turning at 0.4 rad/s,
// then a 3s hold.
func Default(ribbons int) *Timeline {
	return &Timeline{
		Ribbons: ribbons,
		Phases: []Phase{
			{Kind: Create, Duration: 4, Rate: Smooth, Lag: 0.1, ItemRate: Smooth},
			{Kind: Pulse, Duration: 2, Rate: ThereAndBack, Scale: 1.1},
			{Kind: Wait, Duration: 3},
		},
		RotationStart: 1,
		RotationRate:  0.4,
	}
}

// State is the animation state at an instant.
type State struct {
	Phase       Kind
	PhaseIndex  int
	Reveal      []float64
	Scale       float64
	ThetaOffset float64
}

func (tl *Timeline) Duration() float64 {
	d := 0.0
	for _, p := range tl.Phases {
		d += p.Duration
	}
	return d
}

// StartOf returns the time at which phase i begins.
func (tl *Timeline) StartOf(i int) float64 {
	d := 0.0
	for j := 0; j < i && j < len(tl.Phases); j++ {
		d += tl.Phases[j].Duration
	}
	return d
}

// At evaluates the timeline at sec seconds. Completed phases contribute
// their final state; times past the end hold the last frame while the camera
// keeps rotating.
func (tl *Timeline) At(sec float64) State {
	st := State{
		Reveal: make([]float64, tl.Ribbons),
		Scale:  1,
	}
	if sec < 0 {
		sec = 0
	}
	if tl.RotationStart < len(tl.Phases) {
		if rs := tl.StartOf(tl.RotationStart); sec > rs {
			st.ThetaOffset = tl.RotationRate * (sec - rs)
		}
	}
	if !tl.hasCreate() {
		for i := range st.Reveal {
			st.Reveal[i] = 1
		}
	}

	start := 0.0
	for i, p := range tl.Phases {
		end := start + p.Duration
		current := sec < end || i == len(tl.Phases)-1
		progress := 1.0
		if sec < end && p.Duration > 0 {
			progress = math.Max(0, (sec-start)/p.Duration)
		}
		rate := p.Rate
		if rate == nil {
			rate = Linear
		}

		switch p.Kind {
		case Create:
			st.Reveal = LaggedStart(st.Reveal, tl.Ribbons, p.Lag, rate(progress))
			if p.ItemRate != nil {
				for j, r := range st.Reveal {
					st.Reveal[j] = p.ItemRate(r)
				}
			}
		case Pulse:
			st.Scale *= 1 + (p.Scale-1)*rate(progress)
		}

		if current {
			st.Phase, st.PhaseIndex = p.Kind, i
			break
		}
		start = end
	}
	return st
}

func (tl *Timeline) hasCreate() bool {
	for _, p := range tl.Phases {
		if p.Kind == Create {
			return true
		}
	}
	return false
}

package curve

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestRangeLen(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want int
	}{
		{"default", DefaultRange(), 301},
		{"coarse", Range{TMin: -1, TMax: 1, Dt: 0.5}, 5},
		{"uneven step", Range{TMin: 0, TMax: 1, Dt: 0.3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Len(); got != tt.want {
				t.Errorf("expected %d samples, got %d", tt.want, got)
			}
		})
	}
}

func TestSampleEndpoints(t *testing.T) {
	p := DefaultParams()
	r := Range{TMin: 0, TMax: 1, Dt: 0.3}
	pts := Sample(p.Generator(0), r)

	first, last := pts[0], pts[len(pts)-1]
	if first != p.Point(0, 0) {
		t.Errorf("first sample should be at TMin")
	}
	if last != p.Point(0, 1) {
		t.Errorf("last sample should be at TMax")
	}
}

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want error
	}{
		{"default", DefaultRange(), nil},
		{"safe bound", Range{TMin: -SafeBound(1e-3), TMax: SafeBound(1e-3), Dt: 0.01}, nil},
		{"touches pole", Range{TMin: -math.Pi / 2, TMax: 1, Dt: 0.01}, ErrPoleDomain},
		{"past pole", Range{TMin: -1, TMax: 2, Dt: 0.01}, ErrPoleDomain},
		{"zero dt", Range{TMin: -1, TMax: 1, Dt: 0}, ErrInvalidRange},
		{"reversed", Range{TMin: 1, TMax: -1, Dt: 0.1}, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSampleCheckedRejectsPole(t *testing.T) {
	_, err := SampleChecked(DefaultParams(), 0, Range{TMin: -2, TMax: 0, Dt: 0.1})
	if !errors.Is(err, ErrPoleDomain) {
		t.Fatalf("expected pole error, got %v", err)
	}

	pts, err := SampleChecked(DefaultParams(), 0, DefaultRange())
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if len(pts) != 301 {
		t.Errorf("expected 301 points, got %d", len(pts))
	}
}

func TestSafeBound(t *testing.T) {
	if b := SafeBound(0.0708); math.Abs(b-1.5) > 1e-3 {
		t.Errorf("expected ~1.5, got %f", b)
	}
}

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 1001} {
		var mu sync.Mutex
		seen := make([]int, n)
		ParallelFor(n, 4, func(start, end int) {
			mu.Lock()
			defer mu.Unlock()
			for i := start; i < end; i++ {
				seen[i]++
			}
		})
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, c)
			}
		}
	}
}

func BenchmarkGenerator(b *testing.B) {
	gen := DefaultParams().Generator(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen(0.75)
	}
}

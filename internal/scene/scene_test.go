package scene

import (
	"context"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/loxodrome/internal/config"
	"github.com/san-kum/loxodrome/internal/curve"
)

func buildDefault(t *testing.T) *Scene {
	t.Helper()
	s, err := Build(context.Background(), config.DefaultConfig())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return s
}

func TestBuildDefault(t *testing.T) {
	s := buildDefault(t)

	if len(s.Ribbons) != 12 {
		t.Fatalf("expected 12 ribbons, got %d", len(s.Ribbons))
	}
	for i, rb := range s.Ribbons {
		if rb.Index != i {
			t.Errorf("ribbon %d has index %d", i, rb.Index)
		}
		if len(rb.Points) != 301 {
			t.Errorf("ribbon %d: expected 301 points, got %d", i, len(rb.Points))
		}
		if got, want := rb.Color.Hex(), s.Ribbons[i%4].Color.Hex(); got != want {
			t.Errorf("ribbon %d: palette should wrap, got %s want %s", i, got, want)
		}
		want := float64(i) / 12 * 2 * math.Pi
		if math.Abs(rb.AngleOffset-want) > 1e-12 {
			t.Errorf("ribbon %d: offset %f, want %f", i, rb.AngleOffset, want)
		}
	}

	eq := s.Ribbons[0].Points[150]
	if r3.Norm(r3.Sub(eq, r3.Vec{X: 2.5})) > 1e-9 {
		t.Errorf("ribbon 0 should cross the equator at (2.5,0,0), got %v", eq)
	}
}

func TestBuildInvalid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TMin = -2
	_, err := Build(context.Background(), cfg)
	if !errors.Is(err, curve.ErrPoleDomain) {
		t.Fatalf("expected pole error, got %v", err)
	}
}

func TestBuildPaddedBackground(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Background = " #1a1a1a "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	s, err := Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if got := s.Background.Hex(); got != "#1a1a1a" {
		t.Errorf("expected #1a1a1a, got %s", got)
	}
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, config.DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestFrameReveal(t *testing.T) {
	s := buildDefault(t)

	f := s.Frame(0)
	if len(f.Ribbons) != 0 {
		t.Errorf("expected nothing drawn at t=0, got %d ribbons", len(f.Ribbons))
	}

	f = s.Frame(1.5)
	if len(f.Ribbons) == 0 {
		t.Fatal("expected some ribbons mid-reveal")
	}
	if len(f.Ribbons[0].Points) < len(f.Ribbons[len(f.Ribbons)-1].Points) {
		t.Error("earlier ribbons should be further along")
	}

	f = s.Frame(4)
	if len(f.Ribbons) != 12 {
		t.Fatalf("expected all ribbons after create, got %d", len(f.Ribbons))
	}
	for _, v := range f.Ribbons {
		if len(v.Points) != len(v.Ribbon.Points) {
			t.Errorf("ribbon %d only partially drawn", v.Ribbon.Index)
		}
	}
}

func TestFrameCamera(t *testing.T) {
	s := buildDefault(t)

	f := s.Frame(2)
	if f.Camera.Theta != s.Camera.Theta {
		t.Error("camera should be still during create")
	}

	f = s.Frame(9)
	want := s.Camera.Theta + 0.4*5
	if math.Abs(f.Camera.Theta-want) > 1e-9 {
		t.Errorf("expected theta %f at the end, got %f", want, f.Camera.Theta)
	}

	f = s.Final()
	if f.Scale != 1 || len(f.Ribbons) != 12 {
		t.Errorf("final frame should be complete and unscaled")
	}
}

func TestFrameTimes(t *testing.T) {
	s := buildDefault(t)
	times := s.FrameTimes(10)
	if len(times) != 91 {
		t.Errorf("expected 91 frames, got %d", len(times))
	}
	if times[len(times)-1] != 9 {
		t.Errorf("expected last frame at 9s, got %f", times[len(times)-1])
	}
	if s.FrameTimes(0) != nil {
		t.Error("expected nil for zero fps")
	}
}

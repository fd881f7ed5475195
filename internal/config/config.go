package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/loxodrome/internal/anim"
	"github.com/san-kum/loxodrome/internal/curve"
	"github.com/san-kum/loxodrome/internal/palette"
)

const (
	DefaultRadius      = 2.5
	DefaultRibbons     = 12
	DefaultTurns       = 2.0
	DefaultDt          = 0.01
	DefaultStrokeWidth = 20.0
	DefaultBackground  = "#1a1a1a"
	DefaultPhiDeg      = 75.0
	DefaultThetaDeg    = 30.0
	DefaultFocal       = 20.0
	DefaultWidth       = 640
	DefaultHeight      = 360
	DefaultFPS         = 30
)

// Config describes one ribbon scene end to end.
type Config struct {
	Radius      float64         `yaml:"radius"`
	Ribbons     int             `yaml:"ribbons"`
	Turns       float64         `yaml:"turns"`
	PaletteName string          `yaml:"palette_name,omitempty"`
	Palette     []string        `yaml:"palette"`
	TMin        float64         `yaml:"t_min"`
	TMax        float64         `yaml:"t_max"`
	Dt          float64         `yaml:"dt"`
	StrokeWidth float64         `yaml:"stroke_width"`
	Background  string          `yaml:"background"`
	Camera      CameraConfig    `yaml:"camera"`
	Animation   AnimationConfig `yaml:"animation"`
	Output      OutputConfig    `yaml:"output"`
}

type CameraConfig struct {
	PhiDeg        float64 `yaml:"phi_deg"`
	ThetaDeg      float64 `yaml:"theta_deg"`
	FocalDistance float64 `yaml:"focal_distance"`
	Zoom          float64 `yaml:"zoom"`
}

type AnimationConfig struct {
	CreateRunTime float64 `yaml:"create_run_time"`
	LagRatio      float64 `yaml:"lag_ratio"`
	CreateRate    string  `yaml:"create_rate"`
	PulseScale    float64 `yaml:"pulse_scale"`
	PulseRunTime  float64 `yaml:"pulse_run_time"`
	PulseRate     string  `yaml:"pulse_rate"`
	RotationRate  float64 `yaml:"rotation_rate"`
	Wait          float64 `yaml:"wait"`
}

type OutputConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// DefaultConfig reproduces the autumn loxodrome scene.
func DefaultConfig() *Config {
	return &Config{
		Radius:      DefaultRadius,
		Ribbons:     DefaultRibbons,
		Turns:       DefaultTurns,
		Palette:     palette.Autumn.Hexes(),
		TMin:        -curve.DefaultBound,
		TMax:        curve.DefaultBound,
		Dt:          DefaultDt,
		StrokeWidth: DefaultStrokeWidth,
		Background:  DefaultBackground,
		Camera: CameraConfig{
			PhiDeg:        DefaultPhiDeg,
			ThetaDeg:      DefaultThetaDeg,
			FocalDistance: DefaultFocal,
			Zoom:          1,
		},
		Animation: AnimationConfig{
			CreateRunTime: 4,
			LagRatio:      0.1,
			CreateRate:    "smooth",
			PulseScale:    1.1,
			PulseRunTime:  2,
			PulseRate:     "there_and_back",
			RotationRate:  0.4,
			Wait:          3,
		},
		Output: OutputConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadOnto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOnto overlays the keys present in a YAML file onto cfg.
func LoadOnto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() curve.Params {
	return curve.Params{Radius: c.Radius, Ribbons: c.Ribbons, Turns: c.Turns}
}

func (c *Config) Range() curve.Range {
	return curve.Range{TMin: c.TMin, TMax: c.TMax, Dt: c.Dt}
}

// Colors resolves the palette. A palette name takes precedence over hex entries.
func (c *Config) Colors() (palette.Palette, error) {
	return palette.Lookup(c.PaletteName, c.Palette)
}

// Timeline builds the animation sequence for the configured ribbons.
func (c *Config) Timeline() (*anim.Timeline, error) {
	a := c.Animation
	createRate, err := anim.RateFunc(a.CreateRate)
	if err != nil {
		return nil, err
	}
	pulseRate, err := anim.RateFunc(a.PulseRate)
	if err != nil {
		return nil, err
	}
	return &anim.Timeline{
		Ribbons: c.Ribbons,
		Phases: []anim.Phase{
			{Kind: anim.Create, Duration: a.CreateRunTime, Rate: createRate, Lag: a.LagRatio, ItemRate: anim.Smooth},
			{Kind: anim.Pulse, Duration: a.PulseRunTime, Rate: pulseRate, Scale: a.PulseScale},
			{Kind: anim.Wait, Duration: a.Wait},
		},
		RotationStart: 1,
		RotationRate:  a.RotationRate,
	}, nil
}

// Phi and Theta return the camera angles in radians.
func (c *Config) Phi() float64   { return c.Camera.PhiDeg * math.Pi / 180 }
func (c *Config) Theta() float64 { return c.Camera.ThetaDeg * math.Pi / 180 }

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Params().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Range().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}
	if _, err := palette.ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := c.Timeline(); err != nil {
		errs = append(errs, err)
	}
	if c.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("stroke_width %v must be positive", c.StrokeWidth))
	}
	if c.Camera.FocalDistance <= c.Radius*c.Animation.PulseScale {
		errs = append(errs, fmt.Errorf("focal_distance %v must exceed the pulsed radius", c.Camera.FocalDistance))
	}
	if c.Camera.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("zoom %v must be positive", c.Camera.Zoom))
	}
	a := c.Animation
	if a.CreateRunTime < 0 || a.PulseRunTime < 0 || a.Wait < 0 {
		errs = append(errs, errors.New("animation durations must not be negative"))
	}
	if a.LagRatio < 0 {
		errs = append(errs, fmt.Errorf("lag_ratio %v must not be negative", a.LagRatio))
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 || c.Output.FPS <= 0 {
		errs = append(errs, fmt.Errorf("output %dx%d@%d must be positive", c.Output.Width, c.Output.Height, c.Output.FPS))
	}
	return errors.Join(errs...)
}

package config

import "sort"

// Presets are named variations applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	"autumn": func(c *Config) {},
	"dense": func(c *Config) {
		c.Ribbons = 24
		c.Turns = 3
		c.StrokeWidth = 10
		c.Animation.LagRatio = 0.05
	},
	"polar": func(c *Config) {
		c.TMin, c.TMax = -1.56, 1.56
		c.Turns = 4
		c.Camera.PhiDeg = 20
	},
	"minimal": func(c *Config) {
		c.Ribbons = 4
		c.Turns = 1
		c.PaletteName = "mono"
		c.Background = "#000000"
		c.Animation.PulseScale = 1
	},
	"ocean": func(c *Config) {
		c.PaletteName = "ocean"
		c.Background = "#001a33"
		c.Animation.RotationRate = 0.2
	},
}

// GetPreset returns a fresh config for name, or nil if it does not exist.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Tree     TreeConfig     `yaml:"tree"`
	Snow     SnowConfig     `yaml:"snow"`
	Reveal   RevealConfig   `yaml:"reveal"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance       float32 `yaml:"distance"`
	Pitch          float32 `yaml:"pitch"`
	AutoOrbit      bool    `yaml:"auto_orbit"`
	AutoOrbitSpeed float32 `yaml:"auto_orbit_speed"` // radians per second
}

// TreeConfig describes the composed object: stacked layers, topper, base.
// All values are authored, not derived; the assembler consumes them as-is.
type TreeConfig struct {
	Seed   uint64        `yaml:"seed"`
	Layers []LayerConfig `yaml:"layers"`
	Topper TopperConfig  `yaml:"topper"`
	Base   BaseConfig    `yaml:"base"`
}

// LayerConfig describes one cone + ribbon + ornaments layer.
type LayerConfig struct {
	RadiusBottom float32 `yaml:"radius_bottom"`
	RadiusTop    float32 `yaml:"radius_top"`
	Height       float32 `yaml:"height"`
	Ornaments    int     `yaml:"ornaments"`
	OffsetY      float32 `yaml:"offset_y"`
	Scale        float32 `yaml:"scale"`
	SpinSpeed    float32 `yaml:"spin_speed"` // radians per second, sign set by layer parity
}

// TopperConfig describes the star topper.
type TopperConfig struct {
	Points         int     `yaml:"points"`
	OuterRadius    float32 `yaml:"outer_radius"`
	InnerRadius    float32 `yaml:"inner_radius"`
	Depth          float32 `yaml:"depth"`
	OffsetY        float32 `yaml:"offset_y"`
	SpinSpeed      float32 `yaml:"spin_speed"`
	PulseAmplitude float32 `yaml:"pulse_amplitude"`
	PulseFrequency float64 `yaml:"pulse_frequency"` // hertz
}

// BaseConfig describes the static trunk under the layer stack.
type BaseConfig struct {
	Radius  float32 `yaml:"radius"`
	Height  float32 `yaml:"height"`
	OffsetY float32 `yaml:"offset_y"`
}

// SnowConfig holds ambient snowfall settings.
type SnowConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Count     int     `yaml:"count"`
	Area      float32 `yaml:"area"` // side length of the fall volume
	FallSpeed float32 `yaml:"fall_speed"`
	Seed      int64   `yaml:"seed"`
}

// RevealConfig holds the startup grow-in animation settings.
type RevealConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Duration float32 `yaml:"duration"` // seconds per node
	Stagger  float32 `yaml:"stagger"`  // seconds between node starts
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a four-layer tree
// with a five-point star and a trunk.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Distance:       9.0,
			Pitch:          0.35,
			AutoOrbit:      true,
			AutoOrbitSpeed: 0.25,
		},
		Tree: TreeConfig{
			Seed: 20241225,
			Layers: []LayerConfig{
				{RadiusBottom: 2.2, RadiusTop: 0.6, Height: 2.0, Ornaments: 12, OffsetY: 0.9, Scale: 1.0, SpinSpeed: 0.22},
				{RadiusBottom: 1.7, RadiusTop: 0.45, Height: 1.7, Ornaments: 10, OffsetY: 2.2, Scale: 1.0, SpinSpeed: 0.22},
				{RadiusBottom: 1.25, RadiusTop: 0.3, Height: 1.4, Ornaments: 8, OffsetY: 3.3, Scale: 1.0, SpinSpeed: 0.22},
				{RadiusBottom: 0.8, RadiusTop: 0.1, Height: 1.1, Ornaments: 6, OffsetY: 4.2, Scale: 1.0, SpinSpeed: 0.22},
			},
			Topper: TopperConfig{
				Points:         5,
				OuterRadius:    0.45,
				InnerRadius:    0.18,
				Depth:          0.12,
				OffsetY:        5.1,
				SpinSpeed:      0.6,
				PulseAmplitude: 0.12,
				PulseFrequency: 0.5,
			},
			Base: BaseConfig{
				Radius:  0.3,
				Height:  0.8,
				OffsetY: 0.0,
			},
		},
		Snow: SnowConfig{
			Enabled:   true,
			Count:     600,
			Area:      14.0,
			FallSpeed: 0.8,
			Seed:      7,
		},
		Reveal: RevealConfig{
			Enabled:  true,
			Duration: 1.2,
			Stagger:  0.25,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

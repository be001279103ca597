package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene layout constants (in viewport pixels, y grows upward).
const (
	GroundY         = 140.0
	LetterboxHeight = 40.0
	MinWidth        = 320
	MinHeight       = 400
)

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Rain struct {
	Enabled      bool    `yaml:"enabled"`
	Particles    int     `yaml:"particles"`
	MaxSplashes  int     `yaml:"max_splashes"`
	SplashChance float64 `yaml:"splash_chance"`
}

type Traffic struct {
	Cars  int `yaml:"cars"`
	Bikes int `yaml:"bikes"`
}

type Camera struct {
	Auto    bool    `yaml:"auto"`
	ZoomMin float64 `yaml:"zoom_min"`
	ZoomMax float64 `yaml:"zoom_max"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Config holds every tunable of the simulator. Zero values are not
// meaningful; start from Default and overlay a file or flags.
type Config struct {
	Window    Window  `yaml:"window"`
	FrameMS   int     `yaml:"frame_ms"`
	TimeScale float64 `yaml:"time_scale"`
	Seed      uint64  `yaml:"seed"`
	Rain      Rain    `yaml:"rain"`
	Clouds    int     `yaml:"clouds"`
	Traffic   Traffic `yaml:"traffic"`
	People    int     `yaml:"people"`
	Camera    Camera  `yaml:"camera"`
	Cinematic bool    `yaml:"cinematic"`
	Bloom     bool    `yaml:"bloom"`
	Grain     bool    `yaml:"grain"`
	Audio     Audio   `yaml:"audio"`
	LogLevel  string  `yaml:"log_level"`
}

// Default returns the stock scene: a 1280x780 street at 16ms ticks.
func Default() Config {
	return Config{
		Window:    Window{Width: 1280, Height: 780},
		FrameMS:   16,
		TimeScale: 1.0,
		Rain: Rain{
			Enabled:      true,
			Particles:    900,
			MaxSplashes:  160,
			SplashChance: 1.0 / 3.0,
		},
		Clouds:    14,
		Traffic:   Traffic{Cars: 10, Bikes: 6},
		People:    18,
		Camera:    Camera{Auto: true, ZoomMin: 0.6, ZoomMax: 1.8},
		Cinematic: true,
		Bloom:     true,
		Grain:     true,
		Audio:     Audio{Enabled: true, Volume: 0.5},
		LogLevel:  "info",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}

// FrameSeconds is the constant tick length derived from FrameMS.
func (c Config) FrameSeconds() float64 {
	return float64(c.FrameMS) / 1000.0
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width < MinWidth {
		errs = append(errs, fmt.Errorf("window.width %d below %d", c.Window.Width, MinWidth))
	}
	if c.Window.Height < MinHeight {
		errs = append(errs, fmt.Errorf("window.height %d below %d", c.Window.Height, MinHeight))
	}
	if c.FrameMS <= 0 || c.FrameMS > 1000 {
		errs = append(errs, fmt.Errorf("frame_ms %d outside 1..1000", c.FrameMS))
	}
	if c.TimeScale < 0 {
		errs = append(errs, fmt.Errorf("time_scale %v is negative", c.TimeScale))
	}
	if c.Rain.Particles < 0 {
		errs = append(errs, fmt.Errorf("rain.particles %d is negative", c.Rain.Particles))
	}
	if c.Rain.MaxSplashes < 0 {
		errs = append(errs, fmt.Errorf("rain.max_splashes %d is negative", c.Rain.MaxSplashes))
	}
	if c.Rain.SplashChance < 0 || c.Rain.SplashChance > 1 {
		errs = append(errs, fmt.Errorf("rain.splash_chance %v outside [0,1]", c.Rain.SplashChance))
	}
	if c.Clouds < 0 || c.Traffic.Cars < 0 || c.Traffic.Bikes < 0 || c.People < 0 {
		errs = append(errs, errors.New("entity counts must not be negative"))
	}
	if c.Camera.ZoomMin <= 0 || c.Camera.ZoomMax < c.Camera.ZoomMin {
		errs = append(errs, fmt.Errorf("camera zoom range [%v,%v] is invalid", c.Camera.ZoomMin, c.Camera.ZoomMax))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %v outside [0,1]", c.Audio.Volume))
	}
	return errors.Join(errs...)
}

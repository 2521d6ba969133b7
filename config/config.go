// Package config loads sandbox settings from YAML
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/roomsim/audio"
	"github.com/lixenwraith/roomsim/camera"
)

// Log selects logger level and format
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Sim controls the tick loop
type Sim struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
	// Track is the entity the camera follows; negative disables the camera
	Track int `yaml:"track"`
}

// Config is the full sandbox configuration
type Config struct {
	Camera camera.Params `yaml:"camera"`
	Audio  audio.Config  `yaml:"audio"`
	Log    Log           `yaml:"log"`
	Sim    Sim           `yaml:"sim"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Camera: camera.DefaultParams(),
		Audio:  audio.DefaultConfig(),
		Log:    Log{Level: "info", Format: "text"},
		Sim:    Sim{TickRate: 30, Seed: 1, Track: 0},
	}
}

// Load reads path over the defaults; keys absent from the file keep their default
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("config: camera.fov %v outside (0,180)", c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("config: camera near %v / far %v", c.Camera.Near, c.Camera.Far)
	case c.Camera.FollowRate < 0 || c.Camera.TargetRate < 0:
		return fmt.Errorf("config: negative camera rate")
	case c.Sim.TickRate <= 0:
		return fmt.Errorf("config: sim.tick_rate must be positive, got %d", c.Sim.TickRate)
	}
	return nil
}

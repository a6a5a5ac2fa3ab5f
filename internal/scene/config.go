// Package scene provides interactive scenes built on the voxel world: a
// rotating rock viewer and a set of element playgrounds driven by the
// fixed-rate simulation. Scenes register themselves with the core registry.
package scene

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"embervox/internal/sim"
	"embervox/internal/volume"
)

// Config controls world layout, generation and simulation for the scenes.
type Config struct {
	LoadDistance int   `yaml:"load_distance"`
	SimDistance  int   `yaml:"sim_distance"`
	Seed         int64 `yaml:"seed"`
	StepRate     int   `yaml:"step_rate"`

	Rock volume.RockParams `yaml:"rock"`
	Sim  sim.Params        `yaml:"sim"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		LoadDistance: 4,
		SimDistance:  2,
		Seed:         1337,
		StepRate:     sim.DefaultStepRate,
		Rock:         volume.DefaultRockParams(),
		Sim:          sim.DefaultParams(),
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). A "config" key names a YAML file applied before the other keys.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if path, ok := cfg["config"]; ok && path != "" {
		loaded, err := Load(path)
		if err != nil {
			log.Printf("scene config: %v", err)
		} else {
			c = loaded
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["load_distance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.LoadDistance = parsed
		}
	}
	if v, ok := cfg["sim_distance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SimDistance = parsed
		}
	}
	if v, ok := cfg["step_rate"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepRate = parsed
		}
	}
	if v, ok := cfg["rock_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rock.Size = parsed
		}
	}
	c.Sim = sim.Apply(c.Sim, cfg)
	return c
}

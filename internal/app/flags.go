package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scene      string
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scene: "rock", Scale: 8, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame updates per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scene reset")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML scene config")
}

// SceneOptions converts the flags into the key/value map consumed by scene
// factories.
func (c *Config) SceneOptions() map[string]string {
	opts := map[string]string{}
	if c.ConfigPath != "" {
		opts["config"] = c.ConfigPath
	}
	return opts
}

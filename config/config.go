// Package config reads the mirrorfield TOML configuration.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/zucenko/mirrorfield/engine"
)

const DefaultKeyFile = "mirrorfield.key"

type Config struct {
	GridSize        int    `toml:"grid_size"`
	FieldCount      int    `toml:"field_count"`
	LegacyRollOrder bool   `toml:"legacy_roll_order"`
	KeyFile         string `toml:"key_file"`
	Server          Server `toml:"server"`
	Debug           Debug  `toml:"debug"`
}

type Server struct {
	Listen  string `toml:"listen"`
	Metrics string `toml:"metrics"`
}

type Debug struct {
	// DelayMs paces every traversal step of the terminal visualizer.
	// Zero turns the visualizer off.
	DelayMs int `toml:"delay_ms"`
}

func Default() *Config {
	return &Config{
		GridSize:   engine.DefaultGridSize,
		FieldCount: engine.DefaultFieldCount,
		KeyFile:    DefaultKeyFile,
		Server: Server{
			Listen:  ":8080",
			Metrics: "/metrics",
		},
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.GridSize < 1 || 4*c.GridSize > 256 {
		return fmt.Errorf("grid_size %d out of range 1..64", c.GridSize)
	}
	if c.FieldCount < 1 {
		return fmt.Errorf("field_count %d must be positive", c.FieldCount)
	}
	if c.Debug.DelayMs < 0 {
		return fmt.Errorf("delay_ms %d must not be negative", c.Debug.DelayMs)
	}
	return nil
}

func (c *Config) Engine() engine.Config {
	return engine.Config{
		GridSize:        c.GridSize,
		FieldCount:      c.FieldCount,
		LegacyRollOrder: c.LegacyRollOrder,
	}
}

func (c *Config) Delay() time.Duration {
	return time.Duration(c.Debug.DelayMs) * time.Millisecond
}

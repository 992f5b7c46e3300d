// Package config loads and saves viewer settings as YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBackground = "space"
	DefaultViewMode   = "3d"
	DefaultFPS        = 30
	DefaultSpeed      = 1.0
	DefaultRTL        = "visual"
)

// Config holds every user-tunable viewer setting. Zero seed means a
// time-derived seed, so shell tilts differ between runs; any other value
// reproduces the same poses.
type Config struct {
	Background string  `yaml:"background"`
	ViewMode   string  `yaml:"view_mode"`
	FPS        int     `yaml:"fps"`
	Speed      float64 `yaml:"speed"`
	Seed       int64   `yaml:"seed"`
	ShowInfo   bool    `yaml:"show_info"`
	ShowList   bool    `yaml:"show_list"`
	RTL        string  `yaml:"rtl"`
	Element    string  `yaml:"element"`
}

func DefaultConfig() *Config {
	return &Config{
		Background: DefaultBackground,
		ViewMode:   DefaultViewMode,
		FPS:        DefaultFPS,
		Speed:      DefaultSpeed,
		ShowInfo:   true,
		ShowList:   true,
		RTL:        DefaultRTL,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize clamps out-of-range values instead of rejecting the file.
func (c *Config) Normalize() {
	if c.FPS < 1 {
		c.FPS = DefaultFPS
	}
	if c.FPS > 120 {
		c.FPS = 120
	}
	if c.Speed <= 0 {
		c.Speed = DefaultSpeed
	}
	if c.Speed > 10 {
		c.Speed = 10
	}
	if c.ViewMode != "3d" && c.ViewMode != "2d" {
		c.ViewMode = DefaultViewMode
	}
	if c.RTL != "visual" && c.RTL != "logical" {
		c.RTL = DefaultRTL
	}
}

// Validate reports settings Normalize cannot repair silently. It exists for
// the CLI path, where a typoed flag should fail loudly instead of snapping
// to a default.
func (c *Config) Validate() error {
	switch c.ViewMode {
	case "3d", "2d":
	default:
		return fmt.Errorf("config: unknown view mode %q", c.ViewMode)
	}
	switch c.RTL {
	case "visual", "logical":
	default:
		return fmt.Errorf("config: unknown rtl mode %q", c.RTL)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// config is the demo's TOML-configurable window and pacing setup.
type config struct {
	Title           string  `toml:"title"`
	Width           int     `toml:"width"`
	Height          int     `toml:"height"`
	FramesPerSecond float64 `toml:"frames_per_second"`
}

func defaultConfig() config {
	return config{
		Title:           "ui demo",
		Width:           800,
		Height:          600,
		FramesPerSecond: 60,
	}
}

// loadConfig reads a TOML config file on top of the defaults. An empty
// path returns the defaults unchanged.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FramesPerSecond <= 0 {
		return cfg, fmt.Errorf("invalid frames_per_second %v", cfg.FramesPerSecond)
	}
	return cfg, nil
}

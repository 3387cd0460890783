package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "ftlview.yaml"

// Config holds all ftlview configuration.
type Config struct {
	// DataSource is a path or http(s) URL of the full-data.json document.
	DataSource string `yaml:"data_source"`

	// ImageRoot is the directory holding the img/ tree (sprite sheets, crew and drone images).
	ImageRoot string `yaml:"image_root"`

	Theme string `yaml:"theme"`

	// Sixel enables sprite previews. Terminals without sixel support should turn it off.
	Sixel bool `yaml:"sixel"`

	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DataSource: "full-data.json",
		ImageRoot:  ".",
		Theme:      "telix",
		Sixel:      true,
		LogFile:    "ftlview_debug.log",
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is the default file name.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	default:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.fillDefaults()
	return cfg, nil
}

// applyEnv lets FTLVIEW_DATA and FTLVIEW_IMAGES override the file.
func (c *Config) applyEnv() {
	if v := os.Getenv("FTLVIEW_DATA"); v != "" {
		c.DataSource = v
	}
	if v := os.Getenv("FTLVIEW_IMAGES"); v != "" {
		c.ImageRoot = v
	}
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.DataSource == "" {
		c.DataSource = def.DataSource
	}
	if c.ImageRoot == "" {
		c.ImageRoot = def.ImageRoot
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
}

// Package config loads the placement configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/placement/internal/tensor"
)

// Config mirrors $XDG_CONFIG_HOME/placement/config.yaml.
type Config struct {
	DefaultDevice string `yaml:"default_device"`
	// DefaultDType sets the ambient tensor.Defaults DType. Creation routines
	// take their element type from the type parameter, so it only shows up in
	// saved snapshots and in what the CLI reports.
	DefaultDType string `yaml:"default_dtype"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

// Path returns the default config file location, or "" if the user config
// directory cannot be determined.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "placement", "config.yaml")
}

// Load reads the config at path. A missing file yields a zero Config;
// an unreadable or malformed file is an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if _, err := cfg.Defaults(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the ambient tensor defaults the config asks for, starting
// from the current ones for fields left empty.
func (c Config) Defaults() (tensor.Defaults, error) {
	d := tensor.GetDefaults()
	if c.DefaultDevice != "" {
		dev, err := tensor.ParseDevice(c.DefaultDevice)
		if err != nil {
			return d, err
		}
		d.Device = dev
	}
	if c.DefaultDType != "" {
		dt, err := tensor.ParseDataType(c.DefaultDType)
		if err != nil {
			return d, err
		}
		d.DType = dt
	}
	return d, nil
}

// Apply installs the configured defaults and returns the previous ones.
func (c Config) Apply() (tensor.Defaults, error) {
	d, err := c.Defaults()
	if err != nil {
		return tensor.GetDefaults(), err
	}
	return tensor.SetDefaults(d), nil
}

// Package config provides configuration loading from YAML files.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Data DataConfig `yaml:"data"`
}

// DataConfig points at the catalog CSV files.
type DataConfig struct {
	Songs      string `yaml:"songs" default:"data/spotify_songs.csv" validate:"required"`
	Headphones string `yaml:"headphones" default:"data/headphones.csv" validate:"required"`
}

// Load loads configuration from a YAML file. A missing file is not an error:
// the defaults describe a complete configuration on their own. Environment
// variables take precedence over file values.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Fall through to defaults.
	case err != nil:
		return nil, errors.Wrap(err, "failed to read config file")
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("MUSICMATCH_SONGS_CSV"); v != "" {
		c.Data.Songs = v
	}
	if v := os.Getenv("MUSICMATCH_HEADPHONES_CSV"); v != "" {
		c.Data.Headphones = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}

// Package config loads the drills CLI configuration from YAML with
// environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all drills configuration.
type Config struct {
	Log   Log   `yaml:"log"`
	Names Names `yaml:"names"`
}

// Log holds logger settings.
type Log struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `yaml:"format"` // "console" | "json"
}

// Names holds settings for the names command.
type Names struct {
	MinLength int `yaml:"min_length"`
}

func DefaultConfig() Config {
	return Config{
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		Names: Names{
			MinLength: 4,
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing, empty or
// comment-only file yields the defaults. Unknown fields are an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format must be \"console\" or \"json\", got %q", c.Log.Format)
	}
	if c.Names.MinLength < 0 {
		return fmt.Errorf("config: names.min_length must be non-negative, got %d", c.Names.MinLength)
	}
	return nil
}

// LoadEnvFile adds the variables of a dotenv file to the environment.
// Variables that are already set keep their value. A missing file is ignored.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies environment variable overrides.
// Supported variables: DRILLS_LOG_LEVEL, DRILLS_LOG_FORMAT, DRILLS_NAMES_MIN_LENGTH.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DRILLS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DRILLS_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("DRILLS_NAMES_MIN_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid DRILLS_NAMES_MIN_LENGTH %q: %w", v, err)
		}
		c.Names.MinLength = n
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/tienlen-rules/internal/tienlen"
)

// ErrInvalidStraightMode is returned for a straight_detection value other than "digits" or "runs".
var ErrInvalidStraightMode = errors.New("invalid straight detection mode")

const (
	StraightDigits = "digits"
	StraightRuns   = "runs"
)

// Config holds the table rules the module validates turns under.
type Config struct {
	TriplesEnabled bool `yaml:"triples_enabled" mapstructure:"tienlen_triples_enabled"`
	// StraightDetection is "digits" (default) or "runs".
	StraightDetection string `yaml:"straight_detection" mapstructure:"tienlen_straight_detection"`
}

// Default returns the rules used when nothing is configured.
func Default() *Config {
	return &Config{TriplesEnabled: true, StraightDetection: StraightDigits}
}

// LoadFile reads a YAML config file. Keys missing from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromEnv decodes the Nakama runtime environment (runtime.RUNTIME_CTX_ENV).
// Values are strings, so booleans may be given as "true", "false", "1" or "0".
func FromEnv(env map[string]string) (*Config, error) {
	c := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build env decoder: %w", err)
	}

	// Only forward known keys; the env is shared with other modules.
	known := make(map[string]interface{}, 2)
	for _, k := range []string{"tienlen_triples_enabled", "tienlen_straight_detection"} {
		if v, ok := env[k]; ok && v != "" {
			known[k] = v
		}
	}
	if err := decoder.Decode(known); err != nil {
		return nil, fmt.Errorf("failed to decode env config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.StraightDetection {
	case "", StraightDigits, StraightRuns:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStraightMode, c.StraightDetection)
}

// Options converts the config into rule options for the tienlen package.
func (c *Config) Options() tienlen.Options {
	opts := tienlen.Options{TriplesEnabled: c.TriplesEnabled, Straights: tienlen.DigitStraights}
	if c.StraightDetection == StraightRuns {
		opts.Straights = tienlen.RunStraights
	}
	return opts
}

// Package config holds the runtime configuration of the quiz service
// layer: sampling parameters, the generation budget, storage location and
// log level. The regex/automata core takes no configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sigs.k8s.io/yaml"
)

// Duration is a time.Duration that unmarshals from a duration string like
// "1s" (or a plain nanosecond count).
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("config: invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("config: invalid duration %s", string(b))
	}
	*d = Duration(n)
	return nil
}

// Config is loadable from a YAML file; zero or missing fields fall back
// to defaults.
type Config struct {
	// SampleSize is how many random words estimate a candidate's
	// acceptance rate during generation.
	SampleSize int `json:"sample_size"`

	// MaxAttempts caps the rejection-sampling loop.
	MaxAttempts int `json:"max_attempts"`

	// GenerateTimeout is the wall-clock budget for one generation call.
	GenerateTimeout Duration `json:"generate_timeout"`

	// DatabasePath locates the SQLite session archive. Empty disables
	// persistence.
	DatabasePath string `json:"database_path"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `json:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SampleSize:      1000,
		MaxAttempts:     10000,
		GenerateTimeout: Duration(time.Second),
		LogLevel:        "info",
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that could not drive a generation run.
func (c Config) Validate() error {
	if c.SampleSize < 1 {
		return fmt.Errorf("config: sample_size must be positive, got %d", c.SampleSize)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("config: max_attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.GenerateTimeout <= 0 {
		return fmt.Errorf("config: generate_timeout must be positive, got %s", c.GenerateTimeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Package config loads and validates url2pdf configuration files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidOption  = errors.New("invalid config option")
)

// Defaults for pipeline behavior.
const (
	DefaultOutputDir      = "./pdf_downloads"
	DefaultMaxRetries     = 3
	DefaultRetryDelaySecs = 2
	DefaultConcurrency    = 5
	DefaultTimeoutSecs    = 30
)

// Config holds all configuration for a download run.
type Config struct {
	Input             string `yaml:"input"`             // URL list file (empty = must specify)
	OutputDir         string `yaml:"outputDir"`         // Where PDFs land
	MaxRetries        int    `yaml:"maxRetries"`        // Total attempt budget per target
	RetryDelaySeconds int    `yaml:"retryDelaySeconds"` // Fixed delay between attempts
	Concurrency       int    `yaml:"concurrency"`       // Parallel conversions
	TimeoutSeconds    int    `yaml:"timeoutSeconds"`    // Per-attempt timeout
	Verbose           bool   `yaml:"verbose"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:         DefaultOutputDir,
		MaxRetries:        DefaultMaxRetries,
		RetryDelaySeconds: DefaultRetryDelaySecs,
		Concurrency:       DefaultConcurrency,
		TimeoutSeconds:    DefaultTimeoutSecs,
	}
}

// Load reads a YAML config file, overlaying it onto defaults.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks numeric bounds. Configuration errors are fatal before
// any work starts.
func (c *Config) Validate() error {
	if c.MaxRetries < 1 {
		return fmt.Errorf("%w: maxRetries must be at least 1, got %d", ErrInvalidOption, c.MaxRetries)
	}
	if c.RetryDelaySeconds < 0 {
		return fmt.Errorf("%w: retryDelaySeconds must not be negative, got %d", ErrInvalidOption, c.RetryDelaySeconds)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidOption, c.Concurrency)
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("%w: timeoutSeconds must be at least 1, got %d", ErrInvalidOption, c.TimeoutSeconds)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: outputDir must not be empty", ErrInvalidOption)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-url2pdf/internal/config"
)

// ErrInvalidEnvValue marks URL2PDF_* variables that fail to parse.
var ErrInvalidEnvValue = errors.New("invalid environment variable value")

// envPrefix namespaces all recognized environment variables.
const envPrefix = "URL2PDF_"

// knownEnvVars lists valid URL2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"URL2PDF_CONFIG":      true,
	"URL2PDF_INPUT":       true,
	"URL2PDF_OUTPUT_DIR":  true,
	"URL2PDF_RETRIES":     true,
	"URL2PDF_DELAY":       true,
	"URL2PDF_CONCURRENCY": true,
	"URL2PDF_TIMEOUT":     true,
}

// applyEnvOverrides layers URL2PDF_* variables over the config.
// Flags still win over environment values (applied later by the
// caller). Invalid numeric values are configuration errors.
func applyEnvOverrides(cfg *config.Config, env *Environment) error {
	if v := env.Getenv("URL2PDF_INPUT"); v != "" {
		cfg.Input = v
	}
	if v := env.Getenv("URL2PDF_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	intVars := []struct {
		name string
		dst  *int
	}{
		{"URL2PDF_RETRIES", &cfg.MaxRetries},
		{"URL2PDF_DELAY", &cfg.RetryDelaySeconds},
		{"URL2PDF_CONCURRENCY", &cfg.Concurrency},
		{"URL2PDF_TIMEOUT", &cfg.TimeoutSeconds},
	}
	for _, v := range intVars {
		raw := env.Getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnvValue, v.name, raw)
		}
		*v.dst = n
	}

	return nil
}

// warnUnknownEnvVars flags likely typos in URL2PDF_* variables.
func warnUnknownEnvVars(env *Environment) {
	for _, kv := range os.Environ() {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, envPrefix) {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(env.Stderr, "warning: unknown environment variable %s\n", name)
		}
	}
}

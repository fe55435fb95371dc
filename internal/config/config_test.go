package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Input != "" {
		t.Errorf("Input = %q, want empty", cfg.Input)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RetryDelaySeconds != 2 {
		t.Errorf("RetryDelaySeconds = %d, want 2", cfg.RetryDelaySeconds)
	}
	if cfg.Concurrency != 5 {
		t.Errorf("Concurrency = %d, want 5", cfg.Concurrency)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
input: urls.txt
outputDir: ./out
maxRetries: 5
concurrency: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Input != "urls.txt" {
		t.Errorf("Input = %q, want urls.txt", cfg.Input)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.Concurrency != 2 {
		t.Errorf("Concurrency = %d, want 2", cfg.Concurrency)
	}
	// Absent fields keep defaults
	if cfg.RetryDelaySeconds != DefaultRetryDelaySecs {
		t.Errorf("RetryDelaySeconds = %d, want default %d", cfg.RetryDelaySeconds, DefaultRetryDelaySecs)
	}
	if cfg.TimeoutSeconds != DefaultTimeoutSecs {
		t.Errorf("TimeoutSeconds = %d, want default %d", cfg.TimeoutSeconds, DefaultTimeoutSecs)
	}
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("maxRetries: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(path, []byte("maxRetries: 0"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidOption) {
		t.Errorf("error = %v, want ErrInvalidOption", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "zero retries", mutate: func(c *Config) { c.MaxRetries = 0 }, wantErr: true},
		{name: "negative delay", mutate: func(c *Config) { c.RetryDelaySeconds = -1 }, wantErr: true},
		{name: "zero delay is valid", mutate: func(c *Config) { c.RetryDelaySeconds = 0 }, wantErr: false},
		{name: "zero concurrency", mutate: func(c *Config) { c.Concurrency = 0 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.TimeoutSeconds = 0 }, wantErr: true},
		{name: "empty output dir", mutate: func(c *Config) { c.OutputDir = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidOption) {
				t.Errorf("error = %v, want ErrInvalidOption", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

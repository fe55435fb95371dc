package main

import (
	"context"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	url2pdf "github.com/alnah/go-url2pdf"
	"github.com/alnah/go-url2pdf/internal/config"
	"github.com/alnah/go-url2pdf/internal/fileutil"
)

// resolveConfig builds the effective configuration:
// defaults < config file < URL2PDF_* environment < explicit flags.
func resolveConfig(f *cliFlags, fs *flag.FlagSet, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env)

	configPath := f.config
	if configPath == "" {
		configPath = env.Getenv("URL2PDF_CONFIG")
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := applyEnvOverrides(cfg, env); err != nil {
		return nil, err
	}

	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if fs.Changed("retries") {
		cfg.MaxRetries = f.retries
	}
	if fs.Changed("delay") {
		cfg.RetryDelaySeconds = f.delay
	}
	if fs.Changed("concurrency") {
		cfg.Concurrency = f.concurrency
		if cfg.Concurrency == 0 {
			cfg.Concurrency = url2pdf.ResolvePoolSize(0)
		}
	}
	if fs.Changed("timeout") {
		cfg.TimeoutSeconds = f.timeout
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run executes a whole download run and returns nil only when every
// target succeeded.
func run(f *cliFlags, fs *flag.FlagSet, env *Environment) error {
	cfg, err := resolveConfig(f, fs, env)
	if err != nil {
		return err
	}

	if cfg.Input == "" {
		return ErrNoInput
	}

	if !fileutil.FileExists(cfg.Input) {
		return fmt.Errorf("%w: %s is not a readable file", ErrReadInput, cfg.Input)
	}

	targets, err := readTargets(cfg.Input)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		if !f.quiet {
			fmt.Fprintln(env.Stdout, "No URLs to process")
		}
		return nil
	}

	if err := fileutil.EnsureDir(cfg.OutputDir); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	if cfg.Verbose {
		fmt.Fprintf(env.Stderr, "Processing %d URLs with concurrency %d\n", len(targets), cfg.Concurrency)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	start := env.Now()

	pool := url2pdf.NewServicePool(
		cfg.Concurrency,
		url2pdf.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		url2pdf.WithMaxAttempts(cfg.MaxRetries),
		url2pdf.WithRetryDelay(time.Duration(cfg.RetryDelaySeconds)*time.Second),
	)
	defer pool.Close()

	summary := url2pdf.ConvertAll(ctx, pool, targets, cfg.OutputDir)

	printSummary(summary, f.quiet, cfg.Verbose, env)

	if cfg.Verbose {
		fmt.Fprintf(env.Stderr, "Completed in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	if f.report != "" {
		if err := writeReport(f.report, summary); err != nil {
			return err
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPartialFailure, summary.Failed, summary.Total)
	}
	return nil
}

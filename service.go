package url2pdf

import (
	"context"
	"fmt"
	"os"
	"time"
)

// strategy is one interchangeable way of producing a PDF from a target.
// An implementation must either leave a file at outPath or return a
// classified error; it must respect ctx's deadline.
type strategy interface {
	name() string
	attempt(ctx context.Context, target Target, outPath string) error
}

// Compile-time interface checks.
var (
	_ strategy = (*directFetch)(nil)
	_ strategy = (*execTool)(nil)
	_ strategy = (*chromeRender)(nil)
)

// Service converts targets to PDF files. Each Service owns at most one
// browser instance, so a Service must not be shared between workers;
// use a ServicePool for parallel runs.
type Service struct {
	cfg     serviceConfig
	fetch   strategy
	tool    strategy
	browser strategy
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithMaxAttempts).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:     defaultTimeout,
			maxAttempts: defaultMaxAttempts,
			retryDelay:  defaultRetryDelay,
			userAgent:   defaultUserAgent,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create strategies if not injected (e.g., by tests)
	if s.fetch == nil {
		s.fetch = newDirectFetch(s.cfg.userAgent)
	}
	if s.tool == nil {
		s.tool = newExecTool(s.cfg.userAgent)
	}
	if s.browser == nil {
		s.browser = newChromeRender(s.cfg.timeout)
	}

	return s
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if closer, ok := s.browser.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// chainFor returns the strategy priority order for a target kind.
//
// Direct fetch stays in the render chain as a last resort: some URLs
// without a document extension still serve raw document bytes.
func (s *Service) chainFor(kind TargetKind) []strategy {
	if kind == KindDirectDownload {
		return []strategy{s.fetch, s.tool, s.browser}
	}
	return []strategy{s.tool, s.browser, s.fetch}
}

// runAttempt executes the strategy chain once against a target.
// The chain advances to the next strategy only on a mismatch error;
// any other failure ends the attempt. Output lands at partPath and is
// verified non-empty before the attempt counts as a success.
func (s *Service) runAttempt(ctx context.Context, target Target, partPath string, attempt int) AttemptOutcome {
	start := time.Now()
	outcome := AttemptOutcome{Attempt: attempt}

	for _, strat := range s.chainFor(target.Kind) {
		outcome.Strategy = strat.name()

		err := strat.attempt(ctx, target, partPath)
		if err == nil {
			err = verifyNonEmpty(partPath)
		}

		outcome.Err = err
		outcome.Class = Classify(err)

		if err == nil || outcome.Class != ClassMismatch {
			break
		}
		// Mismatch: clear any partial output and fall through.
		_ = os.Remove(partPath)
	}

	outcome.Elapsed = time.Since(start)
	return outcome
}

// verifyNonEmpty rejects zero-byte output files. A strategy silently
// producing an empty file is a defect, surfaced here as a mismatch so
// the chain can fall through.
func verifyNonEmpty(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmptyOutput, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyOutput, path)
	}
	return nil
}

package url2pdf

import "time"

// TargetKind classifies how a target should be converted.
type TargetKind int

const (
	// KindDirectDownload marks URLs whose path already names a document.
	KindDirectDownload TargetKind = iota
	// KindRenderToPDF marks URLs that must be rendered to PDF.
	KindRenderToPDF
)

// String returns the kind name used in verbose output and reports.
func (k TargetKind) String() string {
	switch k {
	case KindDirectDownload:
		return "direct-download"
	case KindRenderToPDF:
		return "render-to-pdf"
	default:
		return "unknown"
	}
}

// Target is one URL to be converted into a PDF artifact.
// Immutable after resolution.
type Target struct {
	URL   string
	Index int // 1-based sequence among resolved input lines
	Kind  TargetKind
}

// AttemptOutcome records one execution of the strategy chain against a
// target. Outcomes are never mutated; the sequence of outcomes for a
// target forms its retry history.
type AttemptOutcome struct {
	Strategy string // name of the last strategy exercised
	Attempt  int    // 1-based
	Class    ErrorClass
	Err      error // nil on success
	Elapsed  time.Duration
}

// Succeeded reports whether the attempt produced a verified output file.
func (o AttemptOutcome) Succeeded() bool {
	return o.Err == nil
}

// Result is the final outcome for one target, produced exactly once
// after a success or after the attempt budget is exhausted.
type Result struct {
	Target     Target
	OutputPath string // set only on success
	Attempts   []AttemptOutcome
	Err        error // last attempt's error, nil on success
}

// Succeeded reports whether the target produced an output file.
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// AttemptCount returns the number of attempts made for this target.
func (r Result) AttemptCount() int {
	return len(r.Attempts)
}

// Summary aggregates the outcome of a whole run.
// Results are ordered by input sequence regardless of completion order.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []Result
}

// Defaults for conversion behavior.
const (
	defaultTimeout     = 30 * time.Second
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
)

// defaultUserAgent mimics a desktop browser; several document hosts
// refuse requests without one.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout     time.Duration
	maxAttempts int
	retryDelay  time.Duration
	userAgent   string
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the per-attempt timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("url2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithMaxAttempts sets the total attempt budget per target.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("url2pdf: WithMaxAttempts requires at least one attempt")
	}
	return func(s *Service) {
		s.cfg.maxAttempts = n
	}
}

// WithRetryDelay sets the fixed delay between attempts.
// Panics if d < 0; zero disables the delay.
func WithRetryDelay(d time.Duration) Option {
	if d < 0 {
		panic("url2pdf: WithRetryDelay duration must not be negative")
	}
	return func(s *Service) {
		s.cfg.retryDelay = d
	}
}

// WithUserAgent overrides the User-Agent header sent by the fetch and
// tool strategies.
func WithUserAgent(ua string) Option {
	return func(s *Service) {
		if ua != "" {
			s.cfg.userAgent = ua
		}
	}
}

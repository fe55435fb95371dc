package url2pdf

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Sentinel errors for conversion operations.
var (
	// Strategy-mismatch failures: the strategy cannot serve this target,
	// the chain falls through to the next strategy within the attempt.
	ErrUnsupportedContentType = errors.New("response content type is not a document")
	ErrToolUnavailable        = errors.New("conversion tool not found")
	ErrToolFailed             = errors.New("conversion tool failed")
	ErrEmptyOutput            = errors.New("conversion produced an empty file")

	// Browser failures.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Output failures.
	ErrWriteOutput = errors.New("failed to write output file")
)

// HTTPStatusError reports a non-2xx response from the target server.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.StatusCode, e.URL)
}

// ErrorClass groups conversion failures by how the pipeline reacts:
// mismatch falls through to the next strategy within an attempt,
// transient and permanent abort the attempt.
type ErrorClass int

const (
	ClassNone ErrorClass = iota
	ClassTransient
	ClassMismatch
	ClassPermanent
)

// String returns the class name used in summaries and reports.
func (c ErrorClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassTransient:
		return "transient"
	case ClassMismatch:
		return "mismatch"
	case ClassPermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// Classify maps an error to its ErrorClass.
//
// 4xx responses and unparseable URLs classify as permanent, but the
// retry controller retries every class up to the attempt budget; the
// class only drives strategy fallback and reporting. Unknown errors
// classify as transient so nothing is given up on early.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassNone
	}

	switch {
	case errors.Is(err, ErrUnsupportedContentType),
		errors.Is(err, ErrToolUnavailable),
		errors.Is(err, ErrToolFailed),
		errors.Is(err, ErrEmptyOutput),
		errors.Is(err, ErrBrowserConnect):
		return ClassMismatch
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode >= 500 {
			return ClassTransient
		}
		return ClassPermanent
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ClassTransient
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op == "parse" {
		return ClassPermanent
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassTransient
	}

	return ClassTransient
}

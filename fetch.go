package url2pdf

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"
)

// documentContentTypes are response content types accepted by the
// direct fetch strategy. Octet-stream is allowed because many document
// hosts serve PDFs without a specific type.
var documentContentTypes = map[string]struct{}{
	"application/pdf":          {},
	"application/octet-stream": {},
	"application/msword":       {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       {},
}

// directFetch downloads the target's raw bytes over HTTP.
// Responses that do not carry a document content type are a strategy
// mismatch: the page needs rendering, not downloading.
type directFetch struct {
	client    *http.Client
	userAgent string
}

// newDirectFetch creates a directFetch with a per-request client.
// Timeouts come from the attempt context, not the client.
func newDirectFetch(userAgent string) *directFetch {
	return &directFetch{
		client:    &http.Client{},
		userAgent: userAgent,
	}
}

func (f *directFetch) name() string { return "direct-fetch" }

// attempt streams the response body to outPath after checking status
// and content type.
func (f *directFetch) attempt(ctx context.Context, target Target, outPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", target.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &HTTPStatusError{URL: target.URL, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isDocumentContentType(contentType) {
		return fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}

	out, err := os.Create(outPath) // #nosec G304 -- path derived from sanitized target name
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// isDocumentContentType reports whether the Content-Type header names a
// downloadable document.
func isDocumentContentType(header string) bool {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(header))
	}
	_, ok := documentContentTypes[mediaType]
	return ok
}

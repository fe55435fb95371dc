package url2pdf

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDirectFetch_DownloadsDocument(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != defaultUserAgent {
			t.Errorf("User-Agent = %q, want default", got)
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	outPath := filepath.Join(t.TempDir(), "out.pdf")
	f := newDirectFetch(defaultUserAgent)

	err := f.attempt(context.Background(), Target{URL: srv.URL + "/doc.pdf"}, outPath)
	if err != nil {
		t.Fatalf("attempt() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("output = %q, want body bytes", data)
	}
}

func TestDirectFetch_ContentTypeWithCharset(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf; charset=utf-8")
		_, _ = w.Write([]byte("pdf"))
	}))
	defer srv.Close()

	outPath := filepath.Join(t.TempDir(), "out.pdf")
	f := newDirectFetch(defaultUserAgent)

	if err := f.attempt(context.Background(), Target{URL: srv.URL}, outPath); err != nil {
		t.Fatalf("attempt() error = %v", err)
	}
}

func TestDirectFetch_HTMLIsMismatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	outPath := filepath.Join(t.TempDir(), "out.pdf")
	f := newDirectFetch(defaultUserAgent)

	err := f.attempt(context.Background(), Target{URL: srv.URL}, outPath)
	if !errors.Is(err, ErrUnsupportedContentType) {
		t.Fatalf("error = %v, want ErrUnsupportedContentType", err)
	}
	if Classify(err) != ClassMismatch {
		t.Errorf("Classify() = %v, want ClassMismatch", Classify(err))
	}
}

func TestDirectFetch_StatusErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantClass ErrorClass
	}{
		{name: "server error is transient", status: http.StatusInternalServerError, wantClass: ClassTransient},
		{name: "bad gateway is transient", status: http.StatusBadGateway, wantClass: ClassTransient},
		{name: "not found is permanent", status: http.StatusNotFound, wantClass: ClassPermanent},
		{name: "forbidden is permanent", status: http.StatusForbidden, wantClass: ClassPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			f := newDirectFetch(defaultUserAgent)
			err := f.attempt(context.Background(), Target{URL: srv.URL}, filepath.Join(t.TempDir(), "out.pdf"))

			var statusErr *HTTPStatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error = %v, want HTTPStatusError", err)
			}
			if statusErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.status)
			}
			if Classify(err) != tt.wantClass {
				t.Errorf("Classify() = %v, want %v", Classify(err), tt.wantClass)
			}
		})
	}
}

func TestDirectFetch_InvalidURL(t *testing.T) {
	t.Parallel()

	f := newDirectFetch(defaultUserAgent)
	err := f.attempt(context.Background(), Target{URL: "http://[::1]:bad/x"}, filepath.Join(t.TempDir(), "out.pdf"))
	if err == nil {
		t.Fatal("expected error for invalid URL")
	}
	if Classify(err) != ClassPermanent {
		t.Errorf("Classify() = %v, want ClassPermanent", Classify(err))
	}
}

func TestIsDocumentContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   bool
	}{
		{"application/pdf", true},
		{"application/pdf; charset=utf-8", true},
		{"APPLICATION/PDF", true},
		{"application/octet-stream", true},
		{"application/msword", true},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", true},
		{"text/html", false},
		{"text/html; charset=utf-8", false},
		{"", false},
		{"application/json", false},
	}

	for _, tt := range tests {
		if got := isDocumentContentType(tt.header); got != tt.want {
			t.Errorf("isDocumentContentType(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

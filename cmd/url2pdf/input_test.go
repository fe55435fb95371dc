package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	url2pdf "github.com/alnah/go-url2pdf"
)

func writeInputFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadTargets_SkipsCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	path := writeInputFile(t, `#comment

https://example.com/doc.pdf
https://example.com/page.html
`)

	targets, err := readTargets(path)
	if err != nil {
		t.Fatalf("readTargets() error = %v", err)
	}

	if len(targets) != 2 {
		t.Fatalf("targets = %d, want 2 (comment and blank skipped)", len(targets))
	}
	if targets[0].Kind != url2pdf.KindDirectDownload {
		t.Errorf("first target kind = %v, want direct download", targets[0].Kind)
	}
	if targets[1].Kind != url2pdf.KindRenderToPDF {
		t.Errorf("second target kind = %v, want render", targets[1].Kind)
	}
	if targets[0].Index != 1 || targets[1].Index != 2 {
		t.Errorf("indices = %d, %d, want 1, 2", targets[0].Index, targets[1].Index)
	}
}

func TestReadTargets_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeInputFile(t, "# only comments\n\n")

	targets, err := readTargets(path)
	if err != nil {
		t.Fatalf("readTargets() error = %v", err)
	}
	if len(targets) != 0 {
		t.Errorf("targets = %d, want 0", len(targets))
	}
}

func TestReadTargets_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := readTargets(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("error = %v, want ErrReadInput", err)
	}
}

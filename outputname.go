package url2pdf

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// unsafeNameChars matches everything not allowed in output file names.
var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// OutputFileName returns the deterministic file name for a target:
// the zero-padded sequence index plus a sanitized base derived from the
// URL. The index prefix keeps names collision-free, so re-running the
// same input file always maps each URL to the same file.
func OutputFileName(t Target) string {
	return fmt.Sprintf("%03d_%s.pdf", t.Index, baseName(t.URL))
}

// baseName derives a readable base from the URL: the last path segment
// without its extension, or the host without the www prefix when the
// path is empty.
func baseName(raw string) string {
	base := ""

	if u, err := url.Parse(raw); err == nil {
		if p := strings.Trim(u.Path, "/"); p != "" {
			seg := path.Base(p)
			base = strings.TrimSuffix(seg, path.Ext(seg))
		} else {
			base = strings.TrimPrefix(u.Hostname(), "www.")
		}
	}

	base = unsafeNameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "page"
	}
	return base
}

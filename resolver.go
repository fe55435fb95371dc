package url2pdf

import (
	"net/url"
	"path"
	"strings"
)

// documentExtensions are URL path suffixes treated as directly
// downloadable documents.
var documentExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".xls":  {},
	".xlsx": {},
}

// ResolveLine turns one raw input line into a Target.
// Returns ok=false for blank lines and # comments. The index becomes
// the target's sequence number and must be unique per input file.
//
// Classification is a heuristic on the URL path's extension; a
// misclassified target is rescued by strategy fallback, not failed.
func ResolveLine(line string, index int) (Target, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Target{}, false
	}

	return Target{
		URL:   trimmed,
		Index: index,
		Kind:  classifyURL(trimmed),
	}, true
}

// classifyURL inspects the URL path's extension to pick a target kind.
// Unparseable URLs default to render; their conversion fails with a
// permanent error instead of being rejected here.
func classifyURL(raw string) TargetKind {
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}

	ext := strings.ToLower(path.Ext(p))
	if _, ok := documentExtensions[ext]; ok {
		return KindDirectDownload
	}
	return KindRenderToPDF
}

// Package url2pdf turns a list of URLs into PDF artifacts.
//
// URLs that already point at a document (pdf, doc, docx, xls, xlsx) are
// downloaded directly; everything else is rendered to PDF. Each target
// runs through an ordered chain of conversion strategies with bounded
// retries, under a fixed concurrency cap.
//
// # Quick Start
//
// Resolve targets, build a service pool, and convert:
//
//	targets := []url2pdf.Target{}
//	for _, line := range lines {
//	    if t, ok := url2pdf.ResolveLine(line, len(targets)+1); ok {
//	        targets = append(targets, t)
//	    }
//	}
//
//	pool := url2pdf.NewServicePool(5, url2pdf.WithMaxAttempts(3))
//	defer pool.Close()
//
//	summary := url2pdf.ConvertAll(ctx, pool, targets, "./pdf_downloads")
//	fmt.Printf("%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
//
// # Conversion Strategies
//
// Strategies are tried in a fixed order per target kind:
//
//  1. Direct download targets: raw HTTP fetch, then wkhtmltopdf, then
//     headless Chrome.
//  2. Render targets: wkhtmltopdf, then headless Chrome, then a raw
//     fetch as a last resort.
//
// A strategy-mismatch failure (wrong content type, missing tool, empty
// output) advances to the next strategy within the same attempt.
// Transient failures abort the attempt and are retried after a fixed
// delay, up to the configured attempt budget.
//
// # Browser Requirements
//
// The headless render strategy requires Chrome/Chromium. The go-rod
// library automatically downloads a managed Chromium instance on first
// run (~/.cache/rod/browser/). Use ROD_BROWSER_BIN to point at a
// pre-installed binary in containers.
package url2pdf

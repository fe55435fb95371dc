package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	url2pdf "github.com/alnah/go-url2pdf"
)

// filePermissions: rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// printSummary writes per-target lines and aggregate counts.
// Failures always go to stderr so partial completion is actionable
// even under --quiet.
func printSummary(s url2pdf.Summary, quiet, verbose bool, env *Environment) {
	for _, r := range s.Results {
		if !r.Succeeded() {
			fmt.Fprintf(env.Stderr, "FAILED %s (%s, %d attempts): %v\n",
				r.Target.URL, url2pdf.Classify(r.Err), r.AttemptCount(), r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d attempts, %v)\n",
				r.Target.URL, r.OutputPath, r.AttemptCount(), totalElapsed(r).Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", s.Succeeded, s.Failed)
	}
}

// totalElapsed sums attempt durations for a result.
func totalElapsed(r url2pdf.Result) time.Duration {
	var total time.Duration
	for _, o := range r.Attempts {
		total += o.Elapsed
	}
	return total
}

// runReport is the machine-readable form of a Summary.
type runReport struct {
	Total     int           `yaml:"total"`
	Succeeded int           `yaml:"succeeded"`
	Failed    int           `yaml:"failed"`
	Results   []reportEntry `yaml:"results"`
}

// reportEntry records one target's final outcome.
type reportEntry struct {
	URL       string `yaml:"url"`
	Index     int    `yaml:"index"`
	Kind      string `yaml:"kind"`
	Status    string `yaml:"status"`
	Output    string `yaml:"output,omitempty"`
	Attempts  int    `yaml:"attempts"`
	ErrorKind string `yaml:"errorKind,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

// buildReport converts a Summary into its serializable form.
func buildReport(s url2pdf.Summary) runReport {
	report := runReport{
		Total:     s.Total,
		Succeeded: s.Succeeded,
		Failed:    s.Failed,
		Results:   make([]reportEntry, 0, len(s.Results)),
	}

	for _, r := range s.Results {
		entry := reportEntry{
			URL:      r.Target.URL,
			Index:    r.Target.Index,
			Kind:     r.Target.Kind.String(),
			Status:   "success",
			Output:   r.OutputPath,
			Attempts: r.AttemptCount(),
		}
		if !r.Succeeded() {
			entry.Status = "failed"
			entry.ErrorKind = url2pdf.Classify(r.Err).String()
			entry.Error = r.Err.Error()
		}
		report.Results = append(report.Results, entry)
	}

	return report
}

// writeReport writes the run report as YAML to path.
func writeReport(path string, s url2pdf.Summary) error {
	data, err := yaml.Marshal(buildReport(s))
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	// #nosec G306 -- reports are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the url2pdf command.
type cliFlags struct {
	input       string
	outputDir   string
	retries     int
	delay       int
	concurrency int
	timeout     int
	config      string
	report      string
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command-line flags. The returned FlagSet exposes
// Changed() so the config merge can tell explicit flags from defaults.
func parseFlags(args []string) (*cliFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("url2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "input file with URLs (one per line)")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "output directory for PDF files")
	fs.IntVarP(&f.retries, "retries", "r", 0, "maximum attempts per URL")
	fs.IntVarP(&f.delay, "delay", "d", -1, "delay between attempts in seconds")
	fs.IntVarP(&f.concurrency, "concurrency", "n", 0, "parallel conversions (0 = auto)")
	fs.IntVarP(&f.timeout, "timeout", "t", 0, "per-attempt timeout in seconds")
	fs.StringVar(&f.config, "config", "", "config file path")
	fs.StringVar(&f.report, "report", "", "write machine-readable run report (YAML)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-target detail")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(fs.Output(), fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs, nil
}

// printUsage writes the command help text.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, `url2pdf - download a list of URLs as PDF files

Usage:
  url2pdf -i urls.txt [-o dir] [flags]

Input lines starting with # and blank lines are skipped. URLs ending in
a document extension (pdf, doc, docx, xls, xlsx) are downloaded
directly; other URLs are rendered to PDF via wkhtmltopdf or headless
Chrome.

Flags:
`)
	fmt.Fprint(w, fs.FlagUsages())
}

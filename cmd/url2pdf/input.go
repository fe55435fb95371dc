package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	url2pdf "github.com/alnah/go-url2pdf"
)

// Sentinel errors for input handling.
var (
	ErrNoInput   = errors.New("no input file specified")
	ErrReadInput = errors.New("failed to read input file")
	ErrOutputDir = errors.New("failed to create output directory")
)

// readTargets reads the URL list file and resolves each line into a
// Target. Blank lines and # comments are skipped; sequence indices are
// assigned 1-based over the resolved targets.
func readTargets(path string) ([]url2pdf.Target, error) {
	f, err := os.Open(path) // #nosec G304 -- user-supplied input path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	defer f.Close()

	var targets []url2pdf.Target
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if t, ok := url2pdf.ResolveLine(scanner.Text(), len(targets)+1); ok {
			targets = append(targets, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	return targets, nil
}

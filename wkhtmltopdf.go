package url2pdf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/alnah/go-url2pdf/internal/process"
)

// toolName is the external HTML-to-PDF binary invoked by execTool.
const toolName = "wkhtmltopdf"

// commandRunner abstracts command execution to enable testing without
// real subprocesses.
type commandRunner interface {
	lookPath(name string) (string, error)
	run(ctx context.Context, name string, args ...string) (stderr string, err error)
}

// execRunner implements commandRunner using os/exec.
type execRunner struct{}

func (r *execRunner) lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *execRunner) run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	process.Setup(cmd)
	cmd.Cancel = func() error {
		// Kill the whole group so renderer children die with the tool.
		process.KillGroup(cmd.Process.Pid)
		return cmd.Process.Kill()
	}

	err := cmd.Run()
	return stderr.String(), err
}

// execTool converts a page to PDF by invoking wkhtmltopdf.
// Fast compared to a browser launch, but cannot execute JavaScript-heavy
// pages; those fall through to the headless render strategy.
type execTool struct {
	runner    commandRunner
	userAgent string
}

// newExecTool creates an execTool with a real command runner.
func newExecTool(userAgent string) *execTool {
	return &execTool{runner: &execRunner{}, userAgent: userAgent}
}

func (t *execTool) name() string { return toolName }

// attempt runs the tool against the target URL. A missing binary,
// non-zero exit, or empty output file all classify as strategy
// mismatch so the chain can fall through.
func (t *execTool) attempt(ctx context.Context, target Target, outPath string) error {
	if _, err := t.runner.lookPath(toolName); err != nil {
		return fmt.Errorf("%w: %s", ErrToolUnavailable, toolName)
	}

	args := []string{
		"--quiet",
		"--encoding", "UTF-8",
		"--javascript-delay", "2000",
		"--no-stop-slow-scripts",
		"--custom-header", "User-Agent", t.userAgent,
		target.URL,
		outPath,
	}

	stderr, err := t.runner.run(ctx, toolName, args...)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s: %v", ErrToolFailed, stderr, err)
	}

	return nil
}

//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// Setup is a no-op on Windows; taskkill handles the process tree.
func Setup(cmd *exec.Cmd) {}

// KillGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func KillGroup(pid int) {
	// Best-effort cleanup; exec's own kill provides fallback
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}

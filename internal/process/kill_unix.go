//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// Setup places the command in its own process group so a timeout kill
// reaches every child the tool spawns.
func Setup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// KillGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillGroup(pid int) {
	// Best-effort cleanup; exec's own kill provides fallback
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}

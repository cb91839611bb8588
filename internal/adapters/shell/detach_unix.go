//go:build !windows

package shell

import (
	"os/exec"
	"syscall"
)

// detach starts the child in its own session so it survives the launcher's terminal.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

package shell

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"spacerun/internal/logging"
	"spacerun/internal/ports"
)

// Runner implements ports.CommandRunner by passing the command line to a shell.
// Detached commands outlive the launcher; attached commands share its terminal
// and are waited for.
type Runner struct {
	shell  []string
	attach bool
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Compile-time interface verification
var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a runner that starts commands detached from the launcher.
// shell is the interpreter prefix, e.g. ["/bin/sh", "-c"].
func NewRunner(shell []string) *Runner {
	return &Runner{shell: shell}
}

// NewAttachedRunner creates a runner that runs commands in the foreground on the given streams.
func NewAttachedRunner(shell []string, stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{shell: shell, attach: true, stdin: stdin, stdout: stdout, stderr: stderr}
}

// Start launches command through the configured shell.
func (r *Runner) Start(ctx context.Context, command string) error {
	if len(r.shell) == 0 {
		return fmt.Errorf("no shell configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	args := append(append([]string{}, r.shell[1:]...), command)

	if r.attach {
		cmd := exec.CommandContext(ctx, r.shell[0], args...)
		cmd.Stdin = r.stdin
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr

		logging.Logger.Info("Running command", "shell", r.shell, "command", command)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("command failed: %w", err)
		}
		return nil
	}

	cmd := exec.Command(r.shell[0], args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}
	logging.Logger.Info("Started command", "shell", r.shell, "command", command, "pid", cmd.Process.Pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Command exited with error", "error", err, "command", command)
		}
	}()

	return nil
}

package ports

import "context"

// CommandRunner hands a fully resolved command line to the operating system.
// Implementations do not report the command's exit status.
type CommandRunner interface {
	// Start launches command and returns once it has been handed off
	Start(ctx context.Context, command string) error
}

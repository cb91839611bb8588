package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"spacerun/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Config      string           `help:"Configuration file (default: first config.{json,jsonc,yaml,yml,toml} in the config dir)" short:"c" env:"SPACERUN_CONFIG"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Run   RunCmd   `cmd:"" help:"Open the launcher (default)" default:"withargs"`
	Check CheckCmd `cmd:"check" help:"Validate the configuration and print the command tree"`
	List  ListCmd  `cmd:"list" help:"List every runnable command"`
	Exec  ExecCmd  `cmd:"exec" help:"Run the command bound to a chord path without opening the launcher"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
	Stdout    io.Writer  `kong:"-"`
}

// AfterApply initializes logging and loads the configuration
func (c *CLI) AfterApply() error {
	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
		Announce:    os.Stderr,
	})
	if err != nil {
		return err
	}

	// Commands started from the launcher append to the same log file
	logging.ExportEnv(c.Debug || c.DebugFile != "", logFilePath, c.MaxLogFiles)

	// Create container AFTER logging is initialized
	container, err := NewContainer(c.Config, os.Stdin, c.stdout(), os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	c.Container = container

	return nil
}

func (c *CLI) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

package cmd

import (
	"fmt"
	"io"

	"spacerun/internal/adapters/shell"
	"spacerun/internal/config"
	"spacerun/internal/logging"
	"spacerun/internal/ports"
	"spacerun/internal/services"
	"spacerun/internal/ui"
)

// RunnerMode selects how resolved commands are handed off.
type RunnerMode int

const (
	// RunnerDetached starts the command in its own session and returns immediately.
	RunnerDetached RunnerMode = iota
	// RunnerAttached runs the command on the launcher's terminal and waits for it.
	RunnerAttached
	// RunnerPrint writes the command line to stdout instead of running it.
	RunnerPrint
)

func runnerModeFor(printOnly, wait bool) RunnerMode {
	switch {
	case printOnly:
		return RunnerPrint
	case wait:
		return RunnerAttached
	default:
		return RunnerDetached
	}
}

// Container holds all dependencies for the application
type Container struct {
	Settings *config.Settings

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewContainer loads the configuration and wires the dependencies around it.
// configPath may be empty to search the default configuration directory.
func NewContainer(configPath string, stdin io.Reader, stdout, stderr io.Writer) (*Container, error) {
	path, err := config.FindConfigFile(configPath, config.ConfigDir())
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("Loading configuration", "path", path)

	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return NewContainerFromSettings(settings, stdin, stdout, stderr)
}

// NewContainerFromSettings wires the dependencies around already loaded settings.
func NewContainerFromSettings(settings *config.Settings, stdin io.Reader, stdout, stderr io.Writer) (*Container, error) {
	if err := settings.Keys.Validate(ui.ValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}

	logging.Logger.Debug("Configuration loaded",
		"path", settings.Path,
		"font_size", settings.FontSize,
		"position", string(settings.Position),
		"shell", settings.Shell,
		"quote_variables", settings.QuoteVariables)

	return &Container{
		Settings: settings,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}, nil
}

// Runner creates the process collaborator for mode.
func (c *Container) Runner(mode RunnerMode) ports.CommandRunner {
	switch mode {
	case RunnerPrint:
		return shell.NewPrinter(c.stdout)
	case RunnerAttached:
		return shell.NewAttachedRunner(c.Settings.Shell, c.stdin, c.stdout, c.stderr)
	default:
		return shell.NewRunner(c.Settings.Shell)
	}
}

// Launcher creates a launcher service handing commands to runner.
func (c *Container) Launcher(runner ports.CommandRunner) *services.LauncherService {
	return services.NewLauncherService(runner, c.Settings.QuoteVariables)
}

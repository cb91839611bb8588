package cmd

import (
	"context"
	"fmt"

	"spacerun/internal/domain"
	"spacerun/internal/logging"
)

// ExecCmd resolves a chord path non-interactively
type ExecCmd struct {
	Path  string            `arg:"" help:"Chord path from the root (e.g. 'g s')"`
	Print bool              `help:"Print the resolved command instead of running it"`
	Set   map[string]string `help:"Value for a template variable (name=value, repeatable)" mapsep:"none"`
	Wait  bool              `help:"Run the command in the foreground and wait for it"`
}

// Run executes the exec command
func (e *ExecCmd) Run(cli *CLI) error {
	path, err := domain.ParseKeyChordPath(e.Path)
	if err != nil {
		return err
	}

	launcher := cli.Container.Launcher(cli.Container.Runner(runnerModeFor(e.Print, e.Wait)))
	action, err := launcher.ActionForPath(cli.Container.Settings.Commands, path, e.Set)
	if err != nil {
		return err
	}

	logging.Logger.Debug("Executing path", "path", domain.FormatKeyChordPath(path), "values", len(e.Set))
	if _, err := launcher.Execute(context.Background(), action); err != nil {
		return fmt.Errorf("exec %s: %w", domain.FormatKeyChordPath(path), err)
	}
	return nil
}

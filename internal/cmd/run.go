package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"spacerun/internal/domain"
	"spacerun/internal/logging"
	"spacerun/internal/ui"
)

// RunCmd opens the launcher
type RunCmd struct {
	Print    bool   `help:"Print the selected command instead of running it"`
	Shortcut string `help:"Chords replayed from the root before the launcher opens (e.g. 'g s')" short:"s"`
	Wait     bool   `help:"Run the selected command in the foreground and wait for it"`
}

// recorder keeps the command chosen in the launcher until the terminal is released.
type recorder struct {
	command string
}

func (r *recorder) Start(_ context.Context, command string) error {
	r.command = command
	return nil
}

// Run executes the launcher
func (r *RunCmd) Run(cli *CLI) error {
	ctx := context.Background()
	settings := cli.Container.Settings
	runner := cli.Container.Runner(runnerModeFor(r.Print, r.Wait))

	nav := domain.NewNavigator(settings.Commands)
	if r.Shortcut != "" {
		path, err := domain.ParseKeyChordPath(r.Shortcut)
		if err != nil {
			return fmt.Errorf("invalid --shortcut: %w", err)
		}

		action := nav.Seed(path)
		logging.Logger.Debug("Replayed initial shortcut",
			"shortcut", domain.FormatKeyChordPath(path),
			"reached", domain.FormatKeyChordPath(nav.Path()),
			"action", action.Kind.String())

		if action.Kind == domain.ActionExecute {
			_, err := cli.Container.Launcher(runner).Execute(ctx, action)
			return err
		}
	}

	rec := &recorder{}
	model := ui.NewModel(ctx, nav, cli.Container.Launcher(rec), ui.Options{
		CloseOnFocusLost: settings.CloseOnFocusLost,
		Keys:             settings.Keys,
		Position:         settings.Position,
	})

	logging.Logger.Info("Starting launcher", "path", domain.FormatKeyChordPath(nav.Path()))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Launcher program error", "error", err)
		return fmt.Errorf("error running launcher: %w", err)
	}

	if rec.command == "" {
		logging.Logger.Info("Launcher closed without a selection")
		return nil
	}
	if err := runner.Start(ctx, rec.command); err != nil {
		return fmt.Errorf("failed to start %q: %w", rec.command, err)
	}
	return nil
}

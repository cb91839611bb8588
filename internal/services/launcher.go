package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kballard/go-shellquote"

	"spacerun/internal/domain"
	"spacerun/internal/logging"
	"spacerun/internal/ports"
)

var (
	// ErrNotExecutable is returned when an action or path does not name a runnable leaf.
	ErrNotExecutable = errors.New("not an executable command")
	// ErrPathNotFound is returned when a chord path leaves the command tree.
	ErrPathNotFound = errors.New("no command bound to path")
)

// LauncherService turns execute actions into command lines and hands them to a runner.
type LauncherService struct {
	runner         ports.CommandRunner
	quoteVariables bool
}

// NewLauncherService creates a new LauncherService.
// With quoteVariables set, form values are shell-quoted before substitution.
func NewLauncherService(runner ports.CommandRunner, quoteVariables bool) *LauncherService {
	return &LauncherService{
		runner:         runner,
		quoteVariables: quoteVariables,
	}
}

// QuoteValue quotes a single value for a POSIX shell.
func QuoteValue(value string) string {
	return shellquote.Join(value)
}

// Resolve renders the command line of an execute action.
func (s *LauncherService) Resolve(action domain.Action) (string, error) {
	if action.Kind != domain.ActionExecute || action.Leaf == nil {
		return "", fmt.Errorf("%s action: %w", action.Kind, ErrNotExecutable)
	}

	task := action.Leaf.Task()
	if s.quoteVariables {
		return task.ToShellString(action.Values, QuoteValue)
	}
	return task.ToExecutableString(action.Values)
}

// Execute resolves action and starts it. The resolved command line is returned
// even when starting fails.
func (s *LauncherService) Execute(ctx context.Context, action domain.Action) (string, error) {
	command, err := s.Resolve(action)
	if err != nil {
		logging.Logger.Warn("Failed to resolve command", "error", err)
		return "", err
	}

	logging.Logger.Info("Executing command",
		"name", action.Leaf.Name(),
		"command", command,
		"quoted", s.quoteVariables)

	if err := s.runner.Start(ctx, command); err != nil {
		logging.Logger.Error("Failed to start command", "error", err, "command", command)
		return command, fmt.Errorf("failed to start %q: %w", action.Leaf.Name(), err)
	}

	return command, nil
}

// ActionForPath builds an execute action for the leaf at path, applying values
// over the leaf's defaults.
func (s *LauncherService) ActionForPath(root domain.Command, path []domain.KeyChord, values map[string]string) (domain.Action, error) {
	target, consumed := domain.ResolvePath(root, path)
	if consumed < len(path) {
		return domain.Action{}, fmt.Errorf("%w: %s", ErrPathNotFound, domain.FormatKeyChordPath(path[:consumed+1]))
	}

	leaf, ok := target.(*domain.Leaf)
	if !ok {
		return domain.Action{}, fmt.Errorf("%q is a menu: %w", target.Name(), ErrNotExecutable)
	}

	resolved := leaf.Task().InitialValues()
	for name, value := range values {
		if !leaf.Task().HasVariable(name) {
			return domain.Action{}, fmt.Errorf("%q: %w %q", leaf.Name(), domain.ErrUnknownVariable, name)
		}
		resolved[name] = value
	}

	return domain.Action{Kind: domain.ActionExecute, Leaf: leaf, Values: resolved}, nil
}

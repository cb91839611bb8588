package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyChord      = errors.New("empty shortcut")
	ErrUnknownKey      = errors.New("unknown key")
	ErrUnknownModifier = errors.New("unknown modifier")
	ErrMissingVariable = errors.New("missing variable")
	ErrUnknownVariable = errors.New("unknown variable")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// ParseError is returned when a shortcut string cannot be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid shortcut %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError describes a malformed command tree entry.
// Path locates the entry, e.g. "commands.children[1]".
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := e.Reason
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes ErrInvalidConfig alongside the underlying cause.
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidConfig, e.Err}
	}
	return []error{ErrInvalidConfig}
}

// TemplateError is returned when a command template cannot be fully substituted.
type TemplateError struct {
	Variable string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("missing value for variable %q", e.Variable)
}

func (e *TemplateError) Unwrap() error {
	return ErrMissingVariable
}

package quickproj

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	cfg, err := config.Load(path)
//	if errors.Is(err, quickproj.ErrInvalidConfig) {
//	    // Report the offending file and exit
//	}
var (
	// ErrInvalidConfig indicates the configuration file is unreadable or malformed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPolicy indicates a scan policy cannot be evaluated
	// (negative depth, empty or malformed markers).
	ErrInvalidPolicy = errors.New("invalid scan policy")

	// ErrInvalidRoot indicates a configured root path is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid root path")

	// ErrDirectoryRead indicates a directory could not be listed during traversal.
	ErrDirectoryRead = errors.New("directory read failed")

	// ErrEditorNotFound indicates the editor binary is not on PATH.
	ErrEditorNotFound = errors.New("editor not found")

	// ErrLaunchFailed indicates the editor process failed to start.
	ErrLaunchFailed = errors.New("launch failed")

	// ErrNotInteractive indicates a command needs a terminal but none is attached.
	ErrNotInteractive = errors.New("interactive terminal required")
)

// ConfigError reports a configuration failure together with the offending file.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrInvalidConfig and the underlying cause.
func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

// LaunchError reports an editor start failure together with the attempted command.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidPolicy):
		return ExitConfigError
	case errors.Is(err, ErrEditorNotFound), errors.Is(err, ErrLaunchFailed):
		return ExitLaunchError
	case errors.Is(err, ErrNotInteractive):
		return ExitNotInteractive
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}
	if strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitGeneralError
}

var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

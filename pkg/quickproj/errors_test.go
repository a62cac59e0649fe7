package quickproj_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/quickproj/pkg/quickproj"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, quickproj.ExitSuccess},
		{"general error", errors.New("something went wrong"), quickproj.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag: --foo"), quickproj.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), quickproj.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), quickproj.ExitUsageError},
		{"invalid argument", errors.New(`invalid argument "abc" for "-d, --max-depth" flag`), quickproj.ExitUsageError},
		{"config sentinel", quickproj.ErrInvalidConfig, quickproj.ExitConfigError},
		{"policy sentinel", fmt.Errorf("scan: %w", quickproj.ErrInvalidPolicy), quickproj.ExitConfigError},
		{"config error type", &quickproj.ConfigError{Path: "/tmp/c.yaml", Err: errors.New("bad yaml")}, quickproj.ExitConfigError},
		{"editor not found", &quickproj.LaunchError{Command: "nope", Err: quickproj.ErrEditorNotFound}, quickproj.ExitLaunchError},
		{"launch failed", fmt.Errorf("open: %w", quickproj.ErrLaunchFailed), quickproj.ExitLaunchError},
		{"not interactive", quickproj.ErrNotInteractive, quickproj.ExitNotInteractive},
		{"interrupted", fmt.Errorf("scan interrupted: %w", context.Canceled), quickproj.ExitInterrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quickproj.ExitCodeForError(tt.err))
		})
	}
}

func TestConfigError_UnwrapsBoth(t *testing.T) {
	cause := errors.New("yaml: line 1: did not find expected key")
	err := &quickproj.ConfigError{Path: "/home/u/.config/quickproj/config.yaml", Err: cause}

	assert.ErrorIs(t, err, quickproj.ErrInvalidConfig)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/home/u/.config/quickproj/config.yaml")
}

func TestLaunchError_MessageNamesCommand(t *testing.T) {
	err := &quickproj.LaunchError{Command: "subl", Err: quickproj.ErrEditorNotFound}

	assert.ErrorIs(t, err, quickproj.ErrEditorNotFound)
	assert.Contains(t, err.Error(), `"subl"`)
}

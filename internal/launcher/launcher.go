package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/shlex"

	"github.com/vvka-141/quickproj/internal/logging"
	"github.com/vvka-141/quickproj/pkg/quickproj"
)

// Launcher starts editors against project directories.
type Launcher struct {
	logger quickproj.Logger

	lookPath func(file string) (string, error)
	run      func(cmd *exec.Cmd, attached bool) error

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a launcher that runs real processes.
// A nil logger discards all output.
func New(logger quickproj.Logger) *Launcher {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Launcher{
		logger:   logger,
		lookPath: exec.LookPath,
		run:      runCommand,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// ParseCommand splits an editor setting into the binary and its
// arguments, resolving the binary through the alias table.
func ParseCommand(editor string) ([]string, error) {
	args, err := shlex.Split(editor)
	if err != nil {
		return nil, fmt.Errorf("cannot parse editor command %q: %w", editor, err)
	}
	if len(args) == 0 {
		return nil, errors.New("editor command is empty")
	}
	args[0] = ResolveAlias(args[0])
	return args, nil
}

// Available reports whether the editor's binary can be found on PATH.
func (l *Launcher) Available(editor string) bool {
	args, err := ParseCommand(editor)
	if err != nil {
		return false
	}
	_, err = l.lookPath(args[0])
	return err == nil
}

// Launch implements quickproj.Launcher.
func (l *Launcher) Launch(ctx context.Context, editor string, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	args, err := ParseCommand(editor)
	if err != nil {
		return &quickproj.LaunchError{Command: editor, Err: fmt.Errorf("%w: %w", quickproj.ErrLaunchFailed, err)}
	}

	bin, err := l.lookPath(args[0])
	if err != nil {
		return &quickproj.LaunchError{Command: editor, Err: fmt.Errorf("%w: %s is not on PATH", quickproj.ErrEditorNotFound, args[0])}
	}

	cmdArgs := append(append([]string(nil), args[1:]...), path)
	cmd := exec.Command(bin, cmdArgs...)
	attached := IsTerminalEditor(args[0])
	if attached {
		cmd.Stdin = l.stdin
		cmd.Stdout = l.stdout
		cmd.Stderr = l.stderr
	}

	l.logger.Verbose("Launching %s %v (attached=%t)", bin, cmdArgs, attached)

	if err := l.run(cmd, attached); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The editor ran; how it exited is its own business.
			l.logger.Verbose("%s exited with status %d", args[0], exitErr.ExitCode())
			return nil
		}
		return &quickproj.LaunchError{Command: editor, Err: fmt.Errorf("%w: %w", quickproj.ErrLaunchFailed, err)}
	}
	return nil
}

func runCommand(cmd *exec.Cmd, attached bool) error {
	if attached {
		return cmd.Run()
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Verify Launcher implements the interface at compile time
var _ quickproj.Launcher = (*Launcher)(nil)

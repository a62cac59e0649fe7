package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for quickproj.
type Mode int

const (
	// ModeNonInteractive is used for scripts, pipelines, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether the project picker can run.
//
// Returns ModeNonInteractive if:
//   - QUICKPROJ_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - stdin is not a terminal (piped input)
//   - stderr is not a terminal (the picker renders there)
//
// Stdout may be redirected; the picker never draws on it.
func DetectMode() Mode {
	if os.Getenv("QUICKPROJ_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

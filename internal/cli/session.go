package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/quickproj/internal/config"
	"github.com/vvka-141/quickproj/internal/files/scanner"
	"github.com/vvka-141/quickproj/internal/launcher"
	"github.com/vvka-141/quickproj/internal/logging"
	"github.com/vvka-141/quickproj/internal/tui"
	"github.com/vvka-141/quickproj/internal/ui"
	"github.com/vvka-141/quickproj/pkg/quickproj"
)

// editorLauncher is a quickproj.Launcher that can also check whether an
// editor is installed.
type editorLauncher interface {
	quickproj.Launcher
	Available(editor string) bool
}

// Collaborator constructors, replaced in tests.
var (
	newProjectScanner = func(logger quickproj.Logger) quickproj.ProjectScanner {
		return scanner.NewScanner(logger)
	}
	newSelector = func() quickproj.Selector {
		return tui.NewProjectPicker()
	}
	newLauncher = func(logger quickproj.Logger) editorLauncher {
		return launcher.New(logger)
	}
)

// session is the state shared by one command invocation.
type session struct {
	configPath string
	cfg        *config.Config
	logger     quickproj.Logger
	printer    *ui.Printer

	// maxDepth is the --max-depth override. It applies to this invocation
	// only and never reaches cfg, which may be saved.
	maxDepth *int
}

// newSession loads .env and the configuration and validates the
// per-invocation flag overrides.
func newSession(cmd *cobra.Command) (*session, error) {
	_ = godotenv.Load()

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	path, err := config.ResolvePath(globalFlags.configPath)
	if err != nil {
		return nil, &quickproj.ConfigError{Path: globalFlags.configPath, Err: err}
	}
	logger.Verbose("Using configuration %s", path)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	s := &session{
		configPath: path,
		cfg:        cfg,
		logger:     logger,
		printer:    ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	}

	if cmd.Flags().Changed("max-depth") {
		if globalFlags.maxDepth < 0 {
			return nil, fmt.Errorf("--max-depth cannot be negative (got %d): %w", globalFlags.maxDepth, quickproj.ErrInvalidPolicy)
		}
		depth := globalFlags.maxDepth
		s.maxDepth = &depth
	}

	return s, nil
}

// policy returns the scan policy for this invocation.
func (s *session) policy() quickproj.Policy {
	p := s.cfg.Policy()
	p.MaxDepth = s.effectiveMaxDepth()
	return p
}

// effectiveMaxDepth is the --max-depth override, or the configured depth.
func (s *session) effectiveMaxDepth() int {
	if s.maxDepth != nil {
		return *s.maxDepth
	}
	return s.cfg.MaxDepth
}

// scan runs the scanner over the configured roots and reports roots
// that could not be scanned.
func (s *session) scan(ctx context.Context) (quickproj.ScanResult, error) {
	result, err := newProjectScanner(s.logger).Scan(ctx, s.policy())
	if errors.Is(err, context.Canceled) {
		return quickproj.ScanResult{}, fmt.Errorf("scan interrupted: %w", err)
	}
	if err != nil {
		return quickproj.ScanResult{}, fmt.Errorf("scan failed: %w", err)
	}
	s.printer.RootFailures(result.Failures)
	if result.SkippedDirs > 0 {
		s.logger.Verbose("%d directories could not be read", result.SkippedDirs)
	}
	return result, nil
}

// save persists the configuration to the file it was loaded from.
func (s *session) save() error {
	if err := s.cfg.Save(s.configPath); err != nil {
		return &quickproj.ConfigError{Path: s.configPath, Err: err}
	}
	s.logger.Verbose("Saved configuration to %s", s.configPath)
	return nil
}

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/quickproj/internal/config"
	"github.com/vvka-141/quickproj/pkg/quickproj"
)

type fakeScanner struct {
	result quickproj.ScanResult
	err    error
	policy quickproj.Policy
	calls  int
}

func (f *fakeScanner) Scan(ctx context.Context, policy quickproj.Policy) (quickproj.ScanResult, error) {
	f.calls++
	f.policy = policy
	return f.result, f.err
}

type fakeSelector struct {
	selection quickproj.Selection
	err       error
	query     string
	offered   quickproj.ProjectSet
	calls     int
}

func (f *fakeSelector) Select(ctx context.Context, projects quickproj.ProjectSet, query string) (quickproj.Selection, error) {
	f.calls++
	f.offered = projects
	f.query = query
	return f.selection, f.err
}

type launch struct {
	editor string
	path   string
}

type fakeLauncher struct {
	available bool
	err       error
	launches  []launch
}

func (f *fakeLauncher) Launch(ctx context.Context, editor, path string) error {
	f.launches = append(f.launches, launch{editor: editor, path: path})
	return f.err
}

func (f *fakeLauncher) Available(editor string) bool {
	return f.available
}

// stubCollaborators swaps the scanner, selector and launcher constructors
// for fakes. A nil fake keeps the real implementation.
func stubCollaborators(t *testing.T, s *fakeScanner, sel *fakeSelector, l *fakeLauncher) {
	t.Helper()
	origScanner, origSelector, origLauncher := newProjectScanner, newSelector, newLauncher
	t.Cleanup(func() {
		newProjectScanner, newSelector, newLauncher = origScanner, origSelector, origLauncher
	})

	if s != nil {
		newProjectScanner = func(quickproj.Logger) quickproj.ProjectScanner { return s }
	}
	if sel != nil {
		newSelector = func() quickproj.Selector { return sel }
	}
	if l != nil {
		newLauncher = func(quickproj.Logger) editorLauncher { return l }
	}
}

// testEnv isolates a test from the user's configuration and environment.
// It returns the path of the configuration file commands will use.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(quickproj.EnvConfigPath, filepath.Join(dir, "config.yaml"))
	t.Setenv(quickproj.EnvEditor, "")
	t.Setenv("QUICKPROJ_NON_INTERACTIVE", "1")
	return filepath.Join(dir, "config.yaml")
}

// writeTestConfig saves cfg at path.
func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	require.NoError(t, cfg.Save(path))
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(os.Stdout)
		rootCmd.SetErr(os.Stderr)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

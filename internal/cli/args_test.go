package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/quickproj/pkg/quickproj"
)

func TestRequirePath(t *testing.T) {
	cmd := &cobra.Command{
		Use: "add <path>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequirePath(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <path>") {
			t.Errorf("expected error to contain 'missing required argument: <path>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
		if code := quickproj.ExitCodeForError(err); code != quickproj.ExitUsageError {
			t.Errorf("expected exit code %d, got %d", quickproj.ExitUsageError, code)
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		err := RequirePath(cmd, []string{"~/src"})
		if err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequirePath(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
		if code := quickproj.ExitCodeForError(err); code != quickproj.ExitUsageError {
			t.Errorf("expected exit code %d, got %d", quickproj.ExitUsageError, code)
		}
	})
}

func TestRequireEditorName(t *testing.T) {
	cmd := &cobra.Command{
		Use: "set-editor <editor>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireEditorName(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <editor>") {
			t.Errorf("expected error to contain 'missing required argument: <editor>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "vscode") {
			t.Errorf("expected error to mention aliases, got: %s", err.Error())
		}
	})

	t.Run("accepts a command with arguments as one arg", func(t *testing.T) {
		err := RequireEditorName(cmd, []string{"code --new-window"})
		if err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireEditorName(cmd, []string{"code", "--new-window"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
	})
}

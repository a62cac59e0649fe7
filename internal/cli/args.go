package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequirePath validates that exactly one <path> argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequirePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <path>

Usage: %s

Example:
  %s ~/src`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireEditorName validates that exactly one <editor> argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireEditorName(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <editor>

Usage: %s

Example:
  %s nvim

Aliases such as vscode, neovim and intellij are resolved automatically.`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

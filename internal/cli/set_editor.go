package cli

import (
	"github.com/spf13/cobra"
)

var setEditorCmd = &cobra.Command{
	Use:   "set-editor <editor>",
	Short: "Set the default editor",
	Long: `Stores the editor used when --editor is not given.

The value may be an alias (vscode, neovim, intellij, sublime, helix, ...),
a binary name, or a command with arguments such as "code --new-window".
A warning is printed when the editor cannot be found on PATH, but the
setting is saved anyway.`,
	Args:              RequireEditorName,
	RunE:              runSetEditor,
	ValidArgsFunction: completeEditors,
}

func init() {
	rootCmd.AddCommand(setEditorCmd)
}

func runSetEditor(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	editor := args[0]
	if !newLauncher(s.logger).Available(editor) {
		s.printer.Warning("Editor '%s' not found in PATH. Setting anyway.", editor)
	}

	s.cfg.SetEditor(editor)
	if err := s.save(); err != nil {
		return err
	}
	s.printer.Success("Default editor set to: %s", editor)
	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/quickproj/internal/tui"
)

var removeCmd = &cobra.Command{
	Use:     "remove <path>",
	Aliases: []string{"rm"},
	Short:   "Unregister a search directory",
	Long: `Removes a directory from the search roots.

The path is matched against the registered roots both as written (after ~
expansion) and with symlinks resolved, so roots that no longer exist on disk
can still be removed.`,
	Args:              RequirePath,
	RunE:              runRemove,
	ValidArgsFunction: completeRootPaths,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	removed, ok := s.cfg.RemoveRootPath(args[0])
	if !ok {
		s.printer.Warning("Path not found in configuration: %s", args[0])
		return nil
	}

	if err := s.save(); err != nil {
		return err
	}
	s.printer.Success("Removed: %s", tui.ShortenHome(removed))
	return nil
}

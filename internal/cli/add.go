package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/quickproj/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Register a directory to search for projects",
	Long: `Registers a directory as a search root.

The path may start with ~ and is stored as an absolute path with symlinks
resolved. It must be an existing directory. Adding a root twice is reported
and leaves the configuration unchanged.

Examples:
  quickproj add ~/src
  quickproj add .`,
	Args:              RequirePath,
	RunE:              runAdd,
	ValidArgsFunction: completeDirectories,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	root, added, err := s.cfg.AddRootPath(args[0])
	if err != nil {
		return err
	}
	if !added {
		s.printer.Warning("Path is already registered: %s", tui.ShortenHome(root))
		return nil
	}

	if err := s.save(); err != nil {
		return err
	}
	s.printer.Success("Added: %s", tui.ShortenHome(root))
	return nil
}

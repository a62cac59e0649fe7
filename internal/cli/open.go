package cli

import (
	"github.com/spf13/cobra"
)

// runOpen is the default command: scan, pick a project, open it.
func runOpen(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if len(s.cfg.RootPaths) == 0 {
		s.printer.NoRootsHint()
		return nil
	}

	result, err := s.scan(ctx)
	if err != nil {
		return err
	}
	if result.Projects.IsEmpty() {
		s.printer.NoProjectsHint(s.cfg.ProjectMarkers)
		return nil
	}
	s.printer.ScanSummary(result.Projects.Len(), result.Elapsed)

	var query string
	if len(args) == 1 {
		query = args[0]
	}

	selection, err := newSelector().Select(ctx, result.Projects, query)
	if err != nil {
		return err
	}
	if selection.Cancelled {
		s.printer.Cancelled()
		return nil
	}

	editor := s.cfg.ResolveEditor(globalFlags.editor)
	s.printer.Opening(selection.Project, editor)
	return newLauncher(s.logger).Launch(ctx, editor, selection.Project.Path)
}

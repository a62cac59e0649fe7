package cli

import (
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the registered directories and print the projects found",
	Long: `Scans every registered directory and prints the projects found, sorted
by path. Nothing is opened.

With --plain, only the project paths are printed, one per line, which makes
the output easy to feed to other tools:

  cd "$(quickproj scan --plain | fzf)"`,
	Args:              cobra.NoArgs,
	RunE:              runScan,
	ValidArgsFunction: cobra.NoFileCompletions,
}

type scanFlagValues struct {
	plain bool
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanFlags.plain, "plain", false,
		"Print one project path per line without decoration")
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if len(s.cfg.RootPaths) == 0 {
		s.printer.NoRootsHint()
		return nil
	}

	result, err := s.scan(commandContext(cmd))
	if err != nil {
		return err
	}

	if scanFlags.plain {
		s.printer.PlainProjects(result.Projects)
		return nil
	}
	s.printer.Projects(result.Projects)
	s.printer.ScanSummary(result.Projects.Len(), result.Elapsed)
	return nil
}

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:               "list",
	Aliases:           []string{"ls"},
	Short:             "Show registered search directories",
	Args:              cobra.NoArgs,
	RunE:              runList,
	ValidArgsFunction: cobra.NoFileCompletions,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	s.printer.Roots(s.cfg.RootPaths, dirExists)
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/quickproj/internal/config"
	"github.com/vvka-141/quickproj/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration file location and current settings",
	Long: `Prints where the configuration file lives, whether it exists, and the
settings in effect for this invocation, including flag overrides.

The file is YAML:

  root_paths:
    - /home/me/src
  editor: nvim
  max_depth: 4
  project_markers: [.git, go.mod, Cargo.toml, package.json]
  exclude_dirs: [node_modules, target, vendor]
  respect_gitignore: false`,
	Args:              cobra.NoArgs,
	RunE:              runConfig,
	ValidArgsFunction: cobra.NoFileCompletions,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	s.printer.Config(ui.ConfigView{
		Path:             s.configPath,
		Exists:           config.Exists(s.configPath),
		Editor:           s.cfg.ResolveEditor(globalFlags.editor),
		EditorSource:     s.cfg.EditorSource(globalFlags.editor),
		MaxDepth:         s.effectiveMaxDepth(),
		RootPaths:        s.cfg.RootPaths,
		ProjectMarkers:   s.cfg.ProjectMarkers,
		ExcludeDirs:      s.cfg.ExcludeDirs,
		RespectGitignore: s.cfg.RespectGitignore,
	})
	return nil
}

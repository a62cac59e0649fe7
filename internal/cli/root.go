package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vvka-141/quickproj/pkg/quickproj"
)

var rootCmd = &cobra.Command{
	Use:   "quickproj [query]",
	Short: "Fast project launcher for developers",
	Long: `quickproj scans your registered directories for projects, lets you pick
one with fuzzy search, and opens it in your editor.

A directory is a project when it contains a marker such as .git, go.mod,
Cargo.toml or package.json. Scanning stops at the first marker found, skips
dependency and build directories, and never follows symlinked directories.

Getting started:
  quickproj add ~/src        # register a directory to search
  quickproj                  # pick a project and open it
  quickproj api              # start with the filter set to "api"

Exit Codes:
  0  - Success (including a cancelled selection or no projects found)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Editor could not be launched
  12 - Interactive terminal required
  130 - Interrupted (Ctrl-C)`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runOpen,
	SilenceUsage:      true,
	ValidArgsFunction: cobra.NoFileCompletions,
}

// globalFlagValues holds the persistent flags shared by every command.
type globalFlagValues struct {
	editor     string
	maxDepth   int
	configPath string
	verbose    bool
}

var globalFlags globalFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Bool("help", false, "Help for quickproj")
	pf.StringVarP(&globalFlags.editor, "editor", "e", "",
		"Editor for this invocation (alias such as vscode or neovim, or a command)\n"+
			"Precedence: --editor > config editor > $EDITOR > "+quickproj.DefaultEditor)
	pf.IntVarP(&globalFlags.maxDepth, "max-depth", "d", 0,
		"Directory levels to search below each root (overrides max_depth)")
	pf.StringVar(&globalFlags.configPath, "config", "",
		"Configuration file\n"+
			"Precedence: --config > $"+quickproj.EnvConfigPath+" > $XDG_CONFIG_HOME/quickproj/config.yaml")
	pf.BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")

	_ = rootCmd.RegisterFlagCompletionFunc("editor", completeEditors)
	_ = rootCmd.RegisterFlagCompletionFunc("max-depth", cobra.NoFileCompletions)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// commandContext returns the command's context, or Background when the
// command was invoked without Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

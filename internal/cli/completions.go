package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/quickproj/internal/config"
	"github.com/vvka-141/quickproj/internal/launcher"
)

// completeEditors provides shell completion for editor aliases.
func completeEditors(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, alias := range launcher.Aliases() {
		if strings.HasPrefix(alias, toComplete) {
			matches = append(matches, alias)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeRootPaths provides shell completion for registered root paths.
func completeRootPaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	path, err := config.ResolvePath(globalFlags.configPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var matches []string
	for _, root := range cfg.RootPaths {
		if strings.HasPrefix(root, toComplete) {
			matches = append(matches, root)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

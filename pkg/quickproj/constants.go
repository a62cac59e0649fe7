package quickproj

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Command completed (including cancelled selection)
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Configuration missing, unreadable or malformed
	ExitLaunchError    = 11 // Editor not found or failed to start
	ExitNotInteractive = 12 // Interactive terminal required

	// ExitInterrupted follows the shell convention of 128 + SIGINT.
	ExitInterrupted = 130
)

const (
	// AppName names the configuration directory and environment variable prefix.
	AppName = "quickproj"

	// DefaultMaxDepth is the number of directory levels scanned below each root.
	DefaultMaxDepth = 4

	// DefaultEditor is used when neither the flag, the config nor $EDITOR names one.
	DefaultEditor = "code"

	// EnvEditor is consulted when no editor is configured or passed.
	EnvEditor = "EDITOR"

	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "QUICKPROJ_CONFIG"
)

// DefaultProjectMarkers returns the marker priority list used when the
// configuration does not define one. Earlier entries win.
func DefaultProjectMarkers() []string {
	return []string{
		".git",
		"Cargo.toml",
		"package.json",
		"go.mod",
		"pyproject.toml",
		"setup.py",
		"pom.xml",
		"build.gradle",
		"Makefile",
		"CMakeLists.txt",
		"composer.json",
		"Gemfile",
		"mix.exs",
		"deno.json",
	}
}

// DefaultExcludeDirs returns the directory names pruned when the
// configuration does not define its own set.
func DefaultExcludeDirs() []string {
	return []string{
		"node_modules",
		"target",
		".venv",
		"venv",
		"__pycache__",
		".cache",
		"dist",
		"build",
		".next",
		".nuxt",
		"vendor",
	}
}

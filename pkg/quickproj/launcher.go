package quickproj

import "context"

// Launcher opens a project directory in an editor.
type Launcher interface {
	// Launch starts the editor identified by an alias or raw command
	// against path. It reports whether the process could be started,
	// not what the editor did afterwards.
	Launch(ctx context.Context, editor string, path string) error
}

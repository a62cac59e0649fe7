package quickproj

import "context"

// Selector lets a user choose one project from a set.
//
// Implementations:
//   - tui.ProjectPicker: fuzzy-filtering terminal picker
type Selector interface {
	// Select presents the projects and returns the user's choice.
	// The query pre-fills the filter and may be empty.
	//
	// A user abort is reported as Selection.Cancelled, not as an error.
	Select(ctx context.Context, projects ProjectSet, query string) (Selection, error)
}

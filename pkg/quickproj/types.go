package quickproj

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Policy describes what a scan looks for and where.
// A Policy is treated as read-only by everything that receives it.
type Policy struct {
	// RootPaths are the absolute directories each traversal starts from.
	// Order is kept for listing; it does not affect scan results.
	RootPaths []string

	// MaxDepth is the number of directory levels below a root that may be visited.
	MaxDepth int

	// ProjectMarkers is the marker priority list. The first marker present
	// in a directory decides that the directory is a project.
	ProjectMarkers []string

	// ExcludeDirs are directory base names that are never entered.
	ExcludeDirs []string

	// RespectGitignore prunes child directories ignored by .gitignore files
	// found along the way.
	RespectGitignore bool
}

// Validate checks that the policy can be evaluated.
// It returns a multi-error if multiple validation failures occur.
func (p Policy) Validate() error {
	var errs []error

	if p.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth cannot be negative (got %d): %w", p.MaxDepth, ErrInvalidPolicy))
	}

	if len(p.ProjectMarkers) == 0 {
		errs = append(errs, fmt.Errorf("project_markers must not be empty: %w", ErrInvalidPolicy))
	}
	for _, marker := range p.ProjectMarkers {
		if err := validateName("project marker", marker); err != nil {
			errs = append(errs, err)
			continue
		}
		if IsGlobMarker(marker) {
			if _, err := filepath.Match(marker, ""); err != nil {
				errs = append(errs, fmt.Errorf("project marker %q is not a valid pattern: %w", marker, ErrInvalidPolicy))
			}
		}
	}

	for _, dir := range p.ExcludeDirs {
		if err := validateName("exclude dir", dir); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s must not be blank: %w", kind, ErrInvalidPolicy)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%s %q must be a single path segment: %w", kind, name, ErrInvalidPolicy)
	}
	return nil
}

// IsGlobMarker reports whether a marker is matched as a filepath.Match pattern
// rather than as a literal entry name.
func IsGlobMarker(marker string) bool {
	return strings.ContainsAny(marker, "*?[")
}

// Project is a directory recognised by one of the policy markers.
type Project struct {
	// Path is the canonical absolute path of the project directory.
	Path string

	// Name is the final segment of Path.
	Name string

	// Marker is the highest-priority marker present in the directory.
	Marker string
}

// String returns "name (path)".
func (p Project) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Path)
}

// ProjectSet is an immutable list of projects sorted by canonical path,
// with no two entries sharing a path.
type ProjectSet struct {
	projects []Project
}

// NewProjectSet deduplicates the given projects on Path and sorts them.
// When two entries share a path the first one wins.
// The input slice is not retained.
func NewProjectSet(projects []Project) ProjectSet {
	seen := make(map[string]struct{}, len(projects))
	unique := make([]Project, 0, len(projects))
	for _, p := range projects {
		if _, dup := seen[p.Path]; dup {
			continue
		}
		seen[p.Path] = struct{}{}
		unique = append(unique, p)
	}

	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Path < unique[j].Path
	})

	return ProjectSet{projects: unique}
}

// Len returns the number of projects.
func (s ProjectSet) Len() int {
	return len(s.projects)
}

// IsEmpty reports whether the set holds no projects.
func (s ProjectSet) IsEmpty() bool {
	return len(s.projects) == 0
}

// At returns the i-th project in path order.
func (s ProjectSet) At(i int) Project {
	return s.projects[i]
}

// Projects returns a copy of the projects in path order.
func (s ProjectSet) Projects() []Project {
	out := make([]Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Paths returns the project paths in order.
func (s ProjectSet) Paths() []string {
	out := make([]string, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Path
	}
	return out
}

// Lookup finds a project by canonical path.
func (s ProjectSet) Lookup(path string) (Project, bool) {
	i := sort.Search(len(s.projects), func(i int) bool {
		return s.projects[i].Path >= path
	})
	if i < len(s.projects) && s.projects[i].Path == path {
		return s.projects[i], true
	}
	return Project{}, false
}

// RootFailure records a root path that could not be scanned.
type RootFailure struct {
	Root string
	Err  error
}

func (f RootFailure) Error() string {
	return fmt.Sprintf("root %s: %v", f.Root, f.Err)
}

func (f RootFailure) Unwrap() error {
	return f.Err
}

// ScanResult is the outcome of one scan.
type ScanResult struct {
	// Projects holds every detected project.
	Projects ProjectSet

	// Failures lists roots that were missing or not directories.
	// The other roots are still scanned.
	Failures []RootFailure

	// SkippedDirs counts directories whose listing failed.
	SkippedDirs int

	// Elapsed is the wall time of the scan.
	Elapsed time.Duration
}

// Err joins all root failures, or returns nil when every root was scanned.
func (r ScanResult) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Selection is the outcome of interactive project selection.
type Selection struct {
	Project   Project
	Cancelled bool
}

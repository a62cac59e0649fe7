package scanner

import (
	"path/filepath"

	"github.com/vvka-141/quickproj/internal/files/filesystem"
	"github.com/vvka-141/quickproj/pkg/quickproj"
)

// compiledPolicy is the scanner's private, read-only copy of a Policy.
type compiledPolicy struct {
	markers          []marker
	exclude          map[string]struct{}
	maxDepth         int
	respectGitignore bool
}

type marker struct {
	pattern string
	glob    bool
}

func compilePolicy(p quickproj.Policy) *compiledPolicy {
	cp := &compiledPolicy{
		markers:          make([]marker, len(p.ProjectMarkers)),
		exclude:          make(map[string]struct{}, len(p.ExcludeDirs)),
		maxDepth:         p.MaxDepth,
		respectGitignore: p.RespectGitignore,
	}
	for i, m := range p.ProjectMarkers {
		cp.markers[i] = marker{pattern: m, glob: quickproj.IsGlobMarker(m)}
	}
	for _, d := range p.ExcludeDirs {
		cp.exclude[d] = struct{}{}
	}
	return cp
}

// excluded reports whether a directory with this base name is pruned.
func (cp *compiledPolicy) excluded(name string) bool {
	_, ok := cp.exclude[name]
	return ok
}

// matchMarker returns the highest-priority marker present among entries.
func (cp *compiledPolicy) matchMarker(entries []filesystem.DirEntry) (string, bool) {
	if len(entries) == 0 {
		return "", false
	}

	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		names[e.Name()] = struct{}{}
	}

	for _, m := range cp.markers {
		if !m.glob {
			if _, ok := names[m.pattern]; ok {
				return m.pattern, true
			}
			continue
		}
		for name := range names {
			// patterns were checked by Policy.Validate
			if ok, _ := filepath.Match(m.pattern, name); ok {
				return m.pattern, true
			}
		}
	}
	return "", false
}

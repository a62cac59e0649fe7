package scanner

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const gitignoreFile = ".gitignore"

// ignoreRules is the set of .gitignore patterns inherited by a directory.
// Values are never modified once built; children share their parent's rules
// until they add their own file.
type ignoreRules struct {
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
}

// extend returns rules with the patterns of a .gitignore file located at
// domain (path components relative to the scan root) appended.
func (r *ignoreRules) extend(content []byte, domain []string) *ignoreRules {
	parsed := parseGitignore(content, domain)
	if len(parsed) == 0 {
		return r
	}

	var inherited []gitignore.Pattern
	if r != nil {
		inherited = r.patterns
	}
	patterns := make([]gitignore.Pattern, 0, len(inherited)+len(parsed))
	patterns = append(patterns, inherited...)
	patterns = append(patterns, parsed...)

	return &ignoreRules{
		patterns: patterns,
		matcher:  gitignore.NewMatcher(patterns),
	}
}

// ignoresDir reports whether the directory at path (components relative to
// the scan root) is ignored.
func (r *ignoreRules) ignoresDir(path []string) bool {
	if r == nil {
		return false
	}
	return r.matcher.Match(path, true)
}

func parseGitignore(content []byte, domain []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}

// Package files groups the filesystem access used for project discovery.
//
// Sub-packages:
//   - filesystem: Filesystem abstraction with OS, go-billy and in-memory implementations
//   - scanner: Concurrent project discovery under a set of root directories
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/quickproj/internal/files/scanner"
//	    "github.com/vvka-141/quickproj/pkg/quickproj"
//	)
//
//	s := scanner.NewScanner(logger)
//	result, err := s.Scan(ctx, quickproj.Policy{
//	    RootPaths:      []string{"/home/me/src"},
//	    MaxDepth:       quickproj.DefaultMaxDepth,
//	    ProjectMarkers: quickproj.DefaultProjectMarkers(),
//	    ExcludeDirs:    quickproj.DefaultExcludeDirs(),
//	})
package files

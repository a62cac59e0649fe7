// Package scanner discovers project directories beneath a set of root paths.
//
// The scanner package is responsible for:
//   - Walking every root to a bounded depth with a fixed-size worker pool
//   - Pruning directories whose base name is excluded (and, optionally,
//     directories ignored by .gitignore files)
//   - Detecting projects by marker priority and stopping descent at each hit
//   - Deduplicating detections on canonical path and sorting them
//
// Symlinked directories are never followed, so traversal always terminates.
// Root paths themselves are canonicalized, which makes overlapping roots
// named through symlinks deduplicate.
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner

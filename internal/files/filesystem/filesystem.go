package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// DirEntry is an alias for fs.DirEntry. Type() reports the entry's own
// type: a symlink to a directory is a symlink, not a directory.
type DirEntry = fs.DirEntry

// FileSystemProvider is the read-only view of a filesystem that the project
// scanner traverses. Implementations must be safe for concurrent use.
type FileSystemProvider interface {
	// ReadDir lists the entries directly inside path without following
	// symlinked entries.
	ReadDir(path string) ([]DirEntry, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path, following symlinks
	Stat(path string) (FileInfo, error)

	// Canonical returns the absolute, cleaned, symlink-resolved form of path.
	Canonical(path string) (string, error)
}

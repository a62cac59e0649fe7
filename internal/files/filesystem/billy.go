package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// maxSymlinkHops bounds symlink resolution in Canonical, matching the
// usual ELOOP limit.
const maxSymlinkHops = 40

// BillyFileSystem implements FileSystemProvider on top of a go-billy
// filesystem. Relative paths are resolved against root.
// Safe for concurrent use by multiple goroutines.
type BillyFileSystem struct {
	mu   sync.RWMutex
	fs   billy.Filesystem
	root string
}

// NewBillyFileSystem wraps an existing billy filesystem.
// Panics if bfs is nil.
func NewBillyFileSystem(bfs billy.Filesystem, root string) *BillyFileSystem {
	if bfs == nil {
		panic("billy filesystem cannot be nil")
	}
	if root == "" {
		root = string(filepath.Separator)
	}
	return &BillyFileSystem{
		fs:   bfs,
		root: filepath.Clean(root),
	}
}

// Root returns the directory relative paths are resolved against.
func (b *BillyFileSystem) Root() string {
	return b.root
}

func (b *BillyFileSystem) abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(b.root, p)
}

// ReadDir implements FileSystemProvider.ReadDir.
func (b *BillyFileSystem) ReadDir(path string) ([]DirEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	infos, err := b.fs.ReadDir(b.abs(path))
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", path, err)
	}
	entries := make([]DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

// ReadFile implements FileSystemProvider.ReadFile.
func (b *BillyFileSystem) ReadFile(path string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, err := util.ReadFile(b.fs, b.abs(path))
	if err != nil {
		return nil, fmt.Errorf("billy: readfile %q: %w", path, err)
	}
	return data, nil
}

// Stat implements FileSystemProvider.Stat.
func (b *BillyFileSystem) Stat(path string) (FileInfo, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	info, err := b.fs.Stat(b.abs(path))
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", path, err)
	}
	return info, nil
}

// Canonical implements FileSystemProvider.Canonical by resolving every
// symlinked component of the path.
func (b *BillyFileSystem) Canonical(path string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sep := string(filepath.Separator)
	resolved := sep
	remaining := splitPath(b.abs(path))
	hops := 0

	for len(remaining) > 0 {
		name := remaining[0]
		remaining = remaining[1:]

		next := filepath.Join(resolved, name)
		info, err := b.fs.Lstat(next)
		if err != nil {
			return "", fmt.Errorf("billy: lstat %q: %w", next, err)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			resolved = next
			continue
		}

		hops++
		if hops > maxSymlinkHops {
			return "", fmt.Errorf("billy: too many symlinks resolving %q", path)
		}
		target, err := b.fs.Readlink(next)
		if err != nil {
			return "", fmt.Errorf("billy: readlink %q: %w", next, err)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(resolved, target)
		}
		remaining = append(splitPath(filepath.Clean(target)), remaining...)
		resolved = sep
	}

	return resolved, nil
}

func splitPath(p string) []string {
	var parts []string
	for _, part := range strings.Split(p, string(filepath.Separator)) {
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	return parts
}

var _ FileSystemProvider = (*BillyFileSystem)(nil)

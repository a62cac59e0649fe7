package filesystem

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// MemoryFileSystem is an in-memory FileSystemProvider for tests, backed by
// go-billy's memfs. The Add* builders panic on failure since they only
// run during fixture setup.
type MemoryFileSystem struct {
	*BillyFileSystem
}

// NewMemoryFileSystem creates a new in-memory filesystem whose root
// directory already exists.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	mfs := &MemoryFileSystem{BillyFileSystem: NewBillyFileSystem(memfs.New(), root)}
	mfs.AddDir(".")
	return mfs
}

// AddFile adds a file, creating parent directories as needed.
func (m *MemoryFileSystem) AddFile(path string, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	abs := m.abs(path)
	if err := m.fs.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		panic(fmt.Sprintf("memory fs: mkdir %q: %v", filepath.Dir(abs), err))
	}
	if err := util.WriteFile(m.fs, abs, []byte(content), 0o644); err != nil {
		panic(fmt.Sprintf("memory fs: write %q: %v", abs, err))
	}
}

// AddDir adds a directory and its parents.
func (m *MemoryFileSystem) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	abs := m.abs(path)
	if err := m.fs.MkdirAll(abs, 0o755); err != nil {
		panic(fmt.Sprintf("memory fs: mkdir %q: %v", abs, err))
	}
}

// AddSymlink creates link pointing at target. Relative targets are
// resolved against the link's directory, as on disk.
func (m *MemoryFileSystem) AddSymlink(target, link string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	abs := m.abs(link)
	if err := m.fs.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		panic(fmt.Sprintf("memory fs: mkdir %q: %v", filepath.Dir(abs), err))
	}
	if err := m.fs.Symlink(target, abs); err != nil {
		panic(fmt.Sprintf("memory fs: symlink %q -> %q: %v", abs, target, err))
	}
}

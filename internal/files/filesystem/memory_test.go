package filesystem

import (
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryNames(entries []DirEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)
	return names
}

func TestMemoryFileSystem_AddFileCreatesParents(t *testing.T) {
	mfs := NewMemoryFileSystem("/r")
	mfs.AddFile("proj1/.git/HEAD", "ref: refs/heads/main")

	entries, err := mfs.ReadDir("/r")
	require.NoError(t, err)
	assert.Equal(t, []string{"proj1"}, entryNames(entries))
	assert.True(t, entries[0].IsDir())

	entries, err = mfs.ReadDir("/r/proj1")
	require.NoError(t, err)
	assert.Equal(t, []string{".git"}, entryNames(entries))
}

func TestMemoryFileSystem_RelativePathsUseRoot(t *testing.T) {
	mfs := NewMemoryFileSystem("/r")
	mfs.AddFile("a/go.mod", "module a")

	content, err := mfs.ReadFile("a/go.mod")
	require.NoError(t, err)
	assert.Equal(t, "module a", string(content))

	content, err = mfs.ReadFile("/r/a/go.mod")
	require.NoError(t, err)
	assert.Equal(t, "module a", string(content))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/r")
	mfs.AddFile("a/Cargo.toml", "[package]")

	info, err := mfs.Stat("/r/a")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = mfs.Stat("/r/a/Cargo.toml")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	_, err = mfs.Stat("/r/missing")
	assert.Error(t, err)
}

func TestMemoryFileSystem_SymlinkEntryIsNotDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/r")
	mfs.AddDir("real")
	mfs.AddSymlink("/r/real", "/r/link")

	entries, err := mfs.ReadDir("/r")
	require.NoError(t, err)

	for _, e := range entries {
		if e.Name() == "link" {
			assert.False(t, e.IsDir())
			assert.NotZero(t, e.Type()&os.ModeSymlink)
		}
	}

	info, err := mfs.Stat("/r/link")
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "Stat follows symlinks")
}

func TestMemoryFileSystem_Canonical(t *testing.T) {
	mfs := NewMemoryFileSystem("/r")
	mfs.AddDir("/r/sub/proj")
	mfs.AddSymlink("/r/sub", "/alias")
	mfs.AddSymlink("sub", "/r/rel")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "/r/sub/proj", "/r/sub/proj"},
		{"relative to root", "sub/proj", "/r/sub/proj"},
		{"absolute link", "/alias/proj", "/r/sub/proj"},
		{"relative link", "/r/rel/proj", "/r/sub/proj"},
		{"dot segments", "/r/sub/../sub/./proj", "/r/sub/proj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mfs.Canonical(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryFileSystem_Canonical_Loop(t *testing.T) {
	mfs := NewMemoryFileSystem("/r")
	mfs.AddSymlink("/r/b", "/r/a")
	mfs.AddSymlink("/r/a", "/r/b")

	_, err := mfs.Canonical("/r/a")
	assert.Error(t, err)
}

func TestMemoryFileSystem_Canonical_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/r")

	_, err := mfs.Canonical("/r/nope")
	assert.Error(t, err)
}

func TestNewBillyFileSystem_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewBillyFileSystem(nil, "/") })
}

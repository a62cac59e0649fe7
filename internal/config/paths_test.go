package config

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/quickproj/pkg/quickproj"
)

func TestDefaultPath_UsesXDGConfigHome(t *testing.T) {
	configHome := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	assert.Equal(t, filepath.Join(configHome, "quickproj", FileName), DefaultPath())
}

func TestResolvePath_Precedence(t *testing.T) {
	configHome := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()

	t.Setenv(quickproj.EnvConfigPath, "")
	path, err := ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPath(), path)

	t.Setenv(quickproj.EnvConfigPath, "/etc/quickproj.yaml")
	path, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/etc/quickproj.yaml", path)

	path, err = ResolvePath("/tmp/flag.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.yaml", path)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/code", filepath.Join(home, "code")},
		{"/abs/./path/", "/abs/path"},
		{"~user/code", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			if tt.expected == "" {
				assert.True(t, filepath.IsAbs(got))
				assert.Contains(t, got, "~user")
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	assert.False(t, Exists(path))
	assert.False(t, Exists(dir))

	require.NoError(t, Default().Save(path))
	assert.True(t, Exists(path))
}

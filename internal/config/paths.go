package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/vvka-141/quickproj/pkg/quickproj"
)

// FileName is the configuration file name inside the config directory.
const FileName = "config.yaml"

// DefaultPath returns the per-user configuration file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, quickproj.AppName, FileName)
}

// ResolvePath picks the configuration file: the --config flag, then
// $QUICKPROJ_CONFIG, then DefaultPath.
func ResolvePath(flagValue string) (string, error) {
	path := flagValue
	if path == "" {
		path = os.Getenv(quickproj.EnvConfigPath)
	}
	if path == "" {
		return DefaultPath(), nil
	}
	return ExpandPath(path)
}

// ExpandPath expands a leading ~ to the home directory and makes the
// path absolute. It does not touch the filesystem beyond looking up
// the working directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand %q: %w", path, err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %q: %w", path, err)
	}
	return abs, nil
}

// Exists reports whether a configuration file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

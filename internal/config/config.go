package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/quickproj/pkg/quickproj"
)

// Config is the persisted user configuration.
type Config struct {
	RootPaths        []string `yaml:"root_paths"`
	Editor           string   `yaml:"editor,omitempty"`
	MaxDepth         int      `yaml:"max_depth"`
	ProjectMarkers   []string `yaml:"project_markers"`
	ExcludeDirs      []string `yaml:"exclude_dirs"`
	RespectGitignore bool     `yaml:"respect_gitignore,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		RootPaths:      []string{},
		MaxDepth:       quickproj.DefaultMaxDepth,
		ProjectMarkers: quickproj.DefaultProjectMarkers(),
		ExcludeDirs:    quickproj.DefaultExcludeDirs(),
	}
}

// Load reads the configuration at path. A missing file yields Default().
// Unreadable or malformed files, and invalid values, return a
// *quickproj.ConfigError.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, &quickproj.ConfigError{Path: path, Err: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &quickproj.ConfigError{Path: path, Err: err}
	}
	if err := cfg.normalize(); err != nil {
		return nil, &quickproj.ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// normalize removes duplicates, expands root paths and validates values.
func (c *Config) normalize() error {
	// An explicit null leaves the list unset; fall back to the defaults.
	if c.ProjectMarkers == nil {
		c.ProjectMarkers = quickproj.DefaultProjectMarkers()
	}
	c.ProjectMarkers = dedupe(c.ProjectMarkers)
	c.ExcludeDirs = dedupe(c.ExcludeDirs)

	roots := make([]string, 0, len(c.RootPaths))
	for _, root := range c.RootPaths {
		if strings.TrimSpace(root) == "" {
			return errors.New("root_paths must not contain blank entries")
		}
		expanded, err := ExpandPath(root)
		if err != nil {
			return fmt.Errorf("root path %q: %w", root, err)
		}
		roots = append(roots, expanded)
	}
	c.RootPaths = dedupe(roots)

	return c.Policy().Validate()
}

// Save writes the configuration to path, creating its directory.
// The file is replaced atomically.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Policy returns the scan policy described by the configuration.
// The returned value shares no memory with c.
func (c *Config) Policy() quickproj.Policy {
	return quickproj.Policy{
		RootPaths:        append([]string(nil), c.RootPaths...),
		MaxDepth:         c.MaxDepth,
		ProjectMarkers:   append([]string(nil), c.ProjectMarkers...),
		ExcludeDirs:      append([]string(nil), c.ExcludeDirs...),
		RespectGitignore: c.RespectGitignore,
	}
}

// AddRootPath registers an existing directory as a root. The stored path
// is absolute and symlink-free. added is false when the root was already
// registered.
func (c *Config) AddRootPath(path string) (canonical string, added bool, err error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", false, err
	}
	canonical, err = filepath.EvalSymlinks(expanded)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", quickproj.ErrInvalidRoot, err)
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", quickproj.ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", false, fmt.Errorf("%w: %s is not a directory", quickproj.ErrInvalidRoot, canonical)
	}

	for _, root := range c.RootPaths {
		if root == canonical {
			return canonical, false, nil
		}
	}
	c.RootPaths = append(c.RootPaths, canonical)
	return canonical, true, nil
}

// RemoveRootPath unregisters a root. The argument matches a stored root
// either literally after expansion or after symlink resolution, so roots
// that no longer exist can still be removed.
func (c *Config) RemoveRootPath(path string) (removed string, ok bool) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", false
	}
	target := expanded
	if resolved, err := filepath.EvalSymlinks(expanded); err == nil {
		target = resolved
	}

	kept := c.RootPaths[:0]
	for _, root := range c.RootPaths {
		if !ok && (root == expanded || root == target) {
			removed, ok = root, true
			continue
		}
		kept = append(kept, root)
	}
	c.RootPaths = kept
	return removed, ok
}

// SetEditor stores the preferred editor command.
func (c *Config) SetEditor(editor string) {
	c.Editor = editor
}

// Editor sources reported by EditorSource.
const (
	EditorFromFlag    = "--editor flag"
	EditorFromConfig  = "config file"
	EditorFromEnv     = "$EDITOR"
	EditorFromDefault = "default"
)

// ResolveEditor picks the editor for one invocation: the flag value,
// then the configured editor, then $EDITOR, then the default.
func (c *Config) ResolveEditor(flagValue string) string {
	editor, _ := c.resolveEditor(flagValue)
	return editor
}

// EditorSource reports which setting ResolveEditor would use.
func (c *Config) EditorSource(flagValue string) string {
	_, source := c.resolveEditor(flagValue)
	return source
}

func (c *Config) resolveEditor(flagValue string) (string, string) {
	if flagValue != "" {
		return flagValue, EditorFromFlag
	}
	if c.Editor != "" {
		return c.Editor, EditorFromConfig
	}
	if env := os.Getenv(quickproj.EnvEditor); env != "" {
		return env, EditorFromEnv
	}
	return quickproj.DefaultEditor, EditorFromDefault
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

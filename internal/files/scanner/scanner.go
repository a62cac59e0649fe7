package scanner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/quickproj/internal/files/filesystem"
	"github.com/vvka-141/quickproj/internal/logging"
	"github.com/vvka-141/quickproj/pkg/quickproj"
)

// Scanner discovers project directories under a set of roots.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider and logger are also thread-safe.
type Scanner struct {
	fsProvider  filesystem.FileSystemProvider
	logger      quickproj.Logger
	concurrency int
}

// NewScanner creates a scanner over the OS filesystem.
// A nil logger discards all output.
func NewScanner(logger quickproj.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger quickproj.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{
		fsProvider:  fsProvider,
		logger:      logger,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithConcurrency returns a copy of the scanner that uses n workers.
// Values below 1 select GOMAXPROCS.
func (s *Scanner) WithConcurrency(n int) *Scanner {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	clone := *s
	clone.concurrency = n
	return &clone
}

// Scan walks every root of the policy and returns the detected projects.
//
// Roots that are missing or not directories are reported in
// ScanResult.Failures and do not abort the scan. Directories that cannot
// be listed are skipped. The only errors returned are an invalid policy
// and context cancellation, in which case no partial result is returned.
func (s *Scanner) Scan(ctx context.Context, policy quickproj.Policy) (quickproj.ScanResult, error) {
	start := time.Now()

	if err := policy.Validate(); err != nil {
		return quickproj.ScanResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return quickproj.ScanResult{}, err
	}

	rules := compilePolicy(policy)
	queue := newWorkQueue()

	var failures []quickproj.RootFailure
	seen := make(map[string]struct{}, len(policy.RootPaths))
	for _, root := range policy.RootPaths {
		canonical, err := s.resolveRoot(root)
		if err != nil {
			s.logger.Verbose("Root %s: %v", root, err)
			failures = append(failures, quickproj.RootFailure{Root: root, Err: err})
			continue
		}
		if _, dup := seen[canonical]; dup {
			s.logger.Verbose("Root %s overlaps an earlier root, skipping", root)
			continue
		}
		seen[canonical] = struct{}{}
		s.logger.Verbose("Scanning %s (max depth %d)", canonical, rules.maxDepth)
		queue.push(dirTask{path: canonical})
	}

	stop := context.AfterFunc(ctx, queue.close)
	defer stop()

	var skipped atomic.Int64
	results := newCollector(s.concurrency)

	var g errgroup.Group
	for i := 0; i < s.concurrency; i++ {
		out := results.shard(i)
		g.Go(func() error {
			for {
				task, ok := queue.pop()
				if !ok {
					return nil
				}
				if !s.visit(task, rules, queue, out) {
					skipped.Add(1)
				}
				queue.done()
			}
		})
	}
	// Workers never return an error; cancellation is reported below.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return quickproj.ScanResult{}, err
	}

	result := quickproj.ScanResult{
		Projects:    results.merge(),
		Failures:    failures,
		SkippedDirs: int(skipped.Load()),
		Elapsed:     time.Since(start),
	}
	s.logger.Verbose("Found %d projects in %s (%d directories skipped)",
		result.Projects.Len(), result.Elapsed.Round(time.Millisecond), result.SkippedDirs)
	return result, nil
}

// resolveRoot canonicalizes a root and checks that it is a directory.
func (s *Scanner) resolveRoot(root string) (string, error) {
	canonical, err := s.fsProvider.Canonical(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", quickproj.ErrInvalidRoot, err)
	}
	info, err := s.fsProvider.Stat(canonical)
	if err != nil {
		return "", fmt.Errorf("%w: %w", quickproj.ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", quickproj.ErrInvalidRoot, canonical)
	}
	return canonical, nil
}

// visit evaluates one directory: prune, detect, or descend.
// It returns false when the directory could not be listed.
func (s *Scanner) visit(task dirTask, rules *compiledPolicy, queue *workQueue, out *shard) bool {
	if rules.excluded(filepath.Base(task.path)) {
		return true
	}

	entries, err := s.fsProvider.ReadDir(task.path)
	if err != nil {
		s.logger.Verbose("Skipping %s: %v", task.path, fmt.Errorf("%w: %w", quickproj.ErrDirectoryRead, err))
		return false
	}

	if m, ok := rules.matchMarker(entries); ok {
		out.add(quickproj.Project{
			Path:   task.path,
			Name:   filepath.Base(task.path),
			Marker: m,
		})
		return true
	}

	if task.depth >= rules.maxDepth {
		return true
	}

	ignore := task.ignore
	if rules.respectGitignore {
		ignore = s.loadGitignore(task, entries)
	}

	for _, e := range entries {
		// Symlinks report a non-directory type and are never followed.
		if !e.IsDir() {
			continue
		}
		child := dirTask{
			path:   filepath.Join(task.path, e.Name()),
			depth:  task.depth + 1,
			ignore: ignore,
		}
		if rules.respectGitignore {
			child.rel = make([]string, len(task.rel)+1)
			copy(child.rel, task.rel)
			child.rel[len(task.rel)] = e.Name()
			if ignore.ignoresDir(child.rel) {
				continue
			}
		}
		queue.push(child)
	}
	return true
}

// loadGitignore extends the inherited rules with the directory's own
// .gitignore, if it has a readable one.
func (s *Scanner) loadGitignore(task dirTask, entries []filesystem.DirEntry) *ignoreRules {
	for _, e := range entries {
		if e.Name() != gitignoreFile || !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(task.path, gitignoreFile)
		content, err := s.fsProvider.ReadFile(path)
		if err != nil {
			s.logger.Verbose("Ignoring unreadable %s: %v", path, err)
			return task.ignore
		}
		return task.ignore.extend(content, task.rel)
	}
	return task.ignore
}

// Verify Scanner implements the interface at compile time
var _ quickproj.ProjectScanner = (*Scanner)(nil)

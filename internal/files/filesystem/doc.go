// Package filesystem provides the read-only filesystem abstraction used by
// the project scanner.
//
// Key interfaces:
//   - FileSystemProvider: directory listing, file reads, stat and path canonicalization
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - BillyFileSystem: Adapter for any go-billy filesystem
//   - MemoryFileSystem: In-memory implementation for testing (go-billy memfs)
package filesystem

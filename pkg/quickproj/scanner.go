package quickproj

import "context"

// ProjectScanner discovers projects beneath the roots of a policy.
// Implementations must be safe for concurrent use by multiple goroutines.
type ProjectScanner interface {
	// Scan walks every root of the policy and returns the detected projects.
	//
	// Per-root problems are reported in ScanResult.Failures and per-directory
	// read errors are skipped; the returned error is reserved for an invalid
	// policy or a cancelled context.
	Scan(ctx context.Context, policy Policy) (ScanResult, error)
}

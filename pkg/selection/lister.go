package selection

import (
	"go.uber.org/zap"
)

// ListStatus classifies the outcome of one candidate listing attempt.
type ListStatus int

const (
	// StatusOK means the lister ran to completion and produced a
	// (possibly empty) candidate list.
	StatusOK ListStatus = iota
	// StatusUnavailable means the backing tool is not present on this host.
	StatusUnavailable
	// StatusFailed means the backing tool exists but the listing failed.
	StatusFailed
)

// String returns a human-readable name for the status.
func (s ListStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ListResult is the tagged outcome of a CandidateLister attempt. Err carries
// the underlying cause for StatusUnavailable and StatusFailed results.
type ListResult struct {
	Paths  []string   // Candidate paths, relative to the project root.
	Status ListStatus // Outcome classification.
	Err    error      // Cause of a non-OK status, nil otherwise.
}

// Usable reports whether the result can feed the pipeline directly.
// An empty OK result is not usable: it is the signal to fall back to the
// next candidate source.
func (r ListResult) Usable() bool {
	return r.Status == StatusOK && len(r.Paths) > 0
}

// CandidateLister produces the pre-exclusion candidate file list for a
// project root. Implementations must never abort the run: every internal
// failure is reported through the ListResult status instead.
type CandidateLister interface {
	// Name identifies the lister in log output.
	Name() string
	// List gathers candidate paths relative to root.
	List(root string, logger *zap.Logger) ListResult
}

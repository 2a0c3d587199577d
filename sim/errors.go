package sim

import "errors"

// Error taxonomy for a run. Everything here is terminal: this is an offline
// batch simulation, there is no retry path.
var (
	// ErrConfig marks invalid run parameters. Always reported before any
	// simulation work starts.
	ErrConfig = errors.New("invalid configuration")

	// ErrAlloc marks a refused backing-storage allocation (lattice,
	// registry, or measurement arrays). The wrapped message names the
	// allocation that failed.
	ErrAlloc = errors.New("allocation failed")
)

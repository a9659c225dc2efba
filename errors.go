package ringpool

import "errors"

// Sentinel errors returned from the pool and ring construction/submission
// paths. TaskException is deliberately absent here: a failing task is never
// surfaced as a package-level error, only as the error half of a Future's
// result.
var (
	// ErrInvalidCapacity is returned by NewRing when the requested capacity
	// is not a power of two, or is smaller than 2.
	ErrInvalidCapacity = errors.New("ringpool: capacity must be a power of two >= 2")

	// ErrZeroWorkers is returned by New when Config.Workers is set to a
	// negative value. A zero Workers is not an error: FillDefaults
	// replaces it with runtime.GOMAXPROCS(0) before New ever sees it.
	ErrZeroWorkers = errors.New("ringpool: worker count must be greater than zero")

	// ErrQueueFull is returned by Submit (and variants) when the ring has
	// no free slot at the moment of enqueue.
	ErrQueueFull = errors.New("ringpool: ring is full")

	// ErrNotRunning is returned by Submit (and variants) when the pool's
	// lifecycle state is not Running at the moment of the check.
	ErrNotRunning = errors.New("ringpool: pool is not running")
)

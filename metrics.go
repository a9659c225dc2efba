package ringpool

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// MetricsPolicy defines the hooks the pool reports submission and
// execution activity through.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {
	// IncSubmitted increments the submitted-tasks counter.
	IncSubmitted()

	// IncExecuted increments the executed-tasks counter.
	IncExecuted()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// submitted is the total number of tasks successfully enqueued.
	submitted atomic.Uint64

	_ cpu.CacheLinePad

	// executed is the total number of tasks whose action has run.
	executed atomic.Uint64
}

// Submitted returns the total number of tasks successfully enqueued.
// Intended for cold-path observation.
func (m *AtomicMetrics) Submitted() uint64 {
	return m.submitted.Load()
}

// Executed returns the total number of executed tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// IncSubmitted increments the submitted-tasks counter by one.
func (m *AtomicMetrics) IncSubmitted() {
	m.submitted.Add(1)
}

// IncExecuted increments the executed-tasks counter by one.
func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (NoopMetrics) IncSubmitted() {}
func (NoopMetrics) IncExecuted()  {}

// Stats is a read-only snapshot of a Pool's hot-path counters.
type Stats struct {
	// Submitted is the number of tasks successfully enqueued so far.
	Submitted uint64

	// Executed is the number of tasks whose action has finished running.
	Executed uint64

	// Active is the current number of tasks being executed by a worker
	// right now (the same counter Shutdown waits to reach zero).
	Active int64
}

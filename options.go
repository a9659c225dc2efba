package ringpool

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

func (k WaitStrategyKind) String() string {
	switch k {
	case WaitPassive:
		return "Passive"
	case WaitSpinBackoff:
		return "SpinBackoff"
	case WaitConditionVariable:
		return "ConditionVariable"
	default:
		return "AtomicFlag"
	}
}

// Config configures a Pool.
//
// All zero values are replaced with sensible defaults by FillDefaults,
// which New calls before validating anything.
type Config[M any] struct {
	// Workers is the fixed number of worker goroutines the pool spawns at
	// construction. Left at zero, it defaults to runtime.GOMAXPROCS(0).
	// Set explicitly to a negative value, it is rejected by New with
	// ErrZeroWorkers rather than silently defaulted.
	Workers int

	// RingCapacity is the bounded ring's capacity. Left at zero, it
	// defaults to the next power of two at or above Workers*32. Set
	// explicitly, it must already be a power of two no smaller than 2;
	// New rejects any other explicit value with ErrInvalidCapacity rather
	// than rounding it.
	RingCapacity int

	// WaitStrategy selects how idle workers park and how producers wake
	// them. Defaults to AtomicFlag.
	WaitStrategy WaitStrategyKind

	// PinWorkers, when true, attempts to pin worker i to CPU
	// i % runtime.NumCPU() via runtime.LockOSThread and sched_setaffinity,
	// so workers share CPUs when there are more workers than CPUs. Failures are
	// reported through OnInternalError and otherwise ignored (the worker
	// keeps running, unpinned).
	PinWorkers bool

	// Metrics overrides the pool's MetricsPolicy. Defaults to a fresh
	// *AtomicMetrics.
	Metrics MetricsPolicy

	// Logger, when set, is attached to the pool's base context so every
	// lifecycle log line the pool emits uses it instead of zlog's
	// default. The pool does no per-task logging and never inspects the
	// submitted metadata.
	Logger *zap.Logger

	// BaseContext is the context lifecycle logging is scoped to. Defaults
	// to context.Background().
	BaseContext context.Context

	// OnInternalError, if set, is called for pool-internal failures that
	// are not attributable to any single task (e.g. a failed CPU pin).
	OnInternalError func(error)

	// OnTaskError, if set, is called whenever a task's action finishes
	// with a non-nil error, in addition to that error being delivered
	// through the task's own Future.
	OnTaskError func(error)
}

// FillDefaults replaces zero-valued fields with their defaults. Called by
// New before validating Workers and RingCapacity.
//
// Workers and RingCapacity are only ever defaulted from zero; a negative
// Workers or a positive-but-non-power-of-two RingCapacity is left
// untouched so New's validation can reject it instead of FillDefaults
// silently coercing it into something valid. RingCapacity's bad-value
// case is caught downstream by NewRing (ErrInvalidCapacity); Workers'
// is caught by New itself (ErrZeroWorkers).
func (c *Config[M]) FillDefaults() {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.RingCapacity == 0 {
		c.RingCapacity = nextPow2(c.Workers * 32)
	}
	if c.Metrics == nil {
		c.Metrics = &AtomicMetrics{}
	}
	if c.BaseContext == nil {
		c.BaseContext = context.Background()
	}
}

// nextPow2 returns the smallest power of two >= n, or 2 if n < 2.
func nextPow2(n int) int {
	if n < 2 {
		return 2
	}
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}

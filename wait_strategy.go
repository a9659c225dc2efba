package ringpool

import (
	"runtime"
	"sync"
	"time"
)

// WaitStrategy coordinates idle workers and the producers that wake them.
// A worker calls Wait after observing an empty ring; a producer calls
// Notify after a successful Enqueue; the pool calls NotifyAll once, during
// shutdown, to unblock every worker at once. Reset restores any per-waiter
// state (such as a spin counter) and is called by a worker right after a
// successful Dequeue.
//
// Missed wakeups are always safe: a worker re-checks the ring after every
// return from Wait, whether or not it was actually notified.
type WaitStrategy interface {
	Wait()
	Notify()
	NotifyAll()
	Reset()
}

// PassiveWaitTimeout is the fixed sleep duration used by PassiveWait.
const PassiveWaitTimeout = 10 * time.Millisecond

// PassiveWait parks a worker for a fixed duration instead of reacting to
// Notify. Lowest CPU usage, highest wake-up latency.
type PassiveWait struct{}

func (PassiveWait) Wait()      { time.Sleep(PassiveWaitTimeout) }
func (PassiveWait) Notify()    {}
func (PassiveWait) NotifyAll() {}
func (PassiveWait) Reset()     {}

// Default spin/pause counts for SpinBackoffWait, matching the original
// lc_wait_strategy.h template defaults (KSpinCount=64, KPauseCount=64).
const (
	DefaultSpinCount  = 64
	DefaultPauseCount = 64
)

// SpinBackoffWait busy-retries for SpinCount iterations, then yields the
// processor for PauseCount further iterations, before giving up and
// returning (the caller loop simply re-checks the ring). It carries only
// per-waiter state and never signals across goroutines, so Notify and
// NotifyAll are no-ops.
//
// A SpinBackoffWait must not be shared between goroutines; the pool gives
// each worker its own instance.
type SpinBackoffWait struct {
	SpinCount  int
	PauseCount int
	n          int
}

// NewSpinBackoffWait returns a SpinBackoffWait using the default spin and
// pause counts.
func NewSpinBackoffWait() *SpinBackoffWait {
	return &SpinBackoffWait{SpinCount: DefaultSpinCount, PauseCount: DefaultPauseCount}
}

func (s *SpinBackoffWait) Wait() {
	switch {
	case s.n < s.SpinCount:
		s.n++
	case s.n < s.SpinCount+s.PauseCount:
		s.n++
		runtime.Gosched()
	}
}

func (s *SpinBackoffWait) Notify()    {}
func (s *SpinBackoffWait) NotifyAll() {}
func (s *SpinBackoffWait) Reset()     { s.n = 0 }

// AtomicFlagWait blocks a worker on a single shared flag, woken by whichever
// producer next calls Notify. It is the preferred default: cheaper than a
// condition variable, and unlike SpinBackoffWait it lets an idle worker
// sleep indefinitely rather than returning to be re-polled.
//
// Go has no public "wait until atomic != x" primitive the way C++20's
// atomic::wait does, so AtomicFlagWait realizes the same contract with the
// idiomatic Go substitute: a mutex-guarded sticky flag plus a channel that
// Notify closes to broadcast a wake-up. The flag is what makes this safe
// against the race C++20's atomic::wait/notify contract also closes: a
// Notify that lands before the matching Wait must not be lost. Wait checks
// the flag first and returns immediately if it is already set, exactly
// like lc_wait_strategy.h's AtomicWaitStrategy checking notified_ before
// calling wait().
type AtomicFlagWait struct {
	mu       sync.Mutex
	notified bool
	ch       chan struct{}
}

// NewAtomicFlagWait returns a ready-to-use AtomicFlagWait.
func NewAtomicFlagWait() *AtomicFlagWait {
	return &AtomicFlagWait{ch: make(chan struct{})}
}

func (a *AtomicFlagWait) Wait() {
	a.mu.Lock()
	if a.notified {
		a.mu.Unlock()
		return
	}
	ch := a.ch
	a.mu.Unlock()
	<-ch
}

func (a *AtomicFlagWait) Notify() {
	a.mu.Lock()
	if a.notified {
		a.mu.Unlock()
		return
	}
	a.notified = true
	ch := a.ch
	a.mu.Unlock()
	close(ch)
}

// NotifyAll has the same effect as Notify: setting the sticky flag and
// closing the shared channel wakes every goroutine blocked on it, not just
// one.
func (a *AtomicFlagWait) NotifyAll() { a.Notify() }

// Reset clears the sticky flag and installs a fresh channel for the next
// round, the same way ConditionVariableWait.Reset clears its own notified
// bool.
func (a *AtomicFlagWait) Reset() {
	a.mu.Lock()
	a.notified = false
	a.ch = make(chan struct{})
	a.mu.Unlock()
}

// ConditionVariableWait blocks on a sync.Cond guarding a boolean flag. It is
// the most portable variant and the most expensive per wake-up event, the
// same trade-off lc_wait_strategy.h's ConditionVariableWaitStrategy makes.
type ConditionVariableWait struct {
	mu       sync.Mutex
	cond     *sync.Cond
	notified bool
}

// NewConditionVariableWait returns a ready-to-use ConditionVariableWait.
func NewConditionVariableWait() *ConditionVariableWait {
	w := &ConditionVariableWait{}
	w.cond = sync.NewCond(&w.mu)
	return w
}

func (w *ConditionVariableWait) Wait() {
	w.mu.Lock()
	for !w.notified {
		w.cond.Wait()
	}
	w.mu.Unlock()
}

func (w *ConditionVariableWait) Notify() {
	w.mu.Lock()
	w.notified = true
	w.mu.Unlock()
	w.cond.Signal()
}

func (w *ConditionVariableWait) NotifyAll() {
	w.mu.Lock()
	w.notified = true
	w.mu.Unlock()
	w.cond.Broadcast()
}

func (w *ConditionVariableWait) Reset() {
	w.mu.Lock()
	w.notified = false
	w.mu.Unlock()
}

// WaitStrategyKind selects one of the four WaitStrategy variants for
// Config.WaitStrategy.
type WaitStrategyKind int32

const (
	// WaitAtomicFlag is the default: cheap, no busy-waiting, wakes exactly
	// the workers that are actually parked.
	WaitAtomicFlag WaitStrategyKind = iota
	WaitPassive
	WaitSpinBackoff
	WaitConditionVariable
)

// newWaitStrategy builds a fresh, per-worker-safe WaitStrategy instance for
// the given kind. SpinBackoffWait is intentionally not shared across
// workers; the others hold state that is safe (and meant) to share.
func newWaitStrategy(kind WaitStrategyKind) WaitStrategy {
	switch kind {
	case WaitPassive:
		return PassiveWait{}
	case WaitSpinBackoff:
		return NewSpinBackoffWait()
	case WaitConditionVariable:
		return NewConditionVariableWait()
	default:
		return NewAtomicFlagWait()
	}
}

// waitStrategiesShared reports whether kind requires a single WaitStrategy
// instance shared by every worker and producer (AtomicFlag and
// ConditionVariable hold cross-goroutine state, so Notify must reach the
// same instance every worker blocks on) or whether each worker is safe to
// hold its own independent instance (Passive and SpinBackoff hold only
// per-waiter state, per spec).
func waitStrategiesShared(kind WaitStrategyKind) bool {
	return kind == WaitAtomicFlag || kind == WaitConditionVariable
}

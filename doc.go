// Package ringpool provides a fixed-size worker pool built on a bounded,
// lock-free multi-producer/multi-consumer ring buffer.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - A single wait-free (or bounded-retry) data structure on the hot path
//   - No per-task allocation beyond the envelope and its Future
//   - Predictable behavior under contention: Submit never blocks, it either
//     succeeds or reports the ring as full
//   - Pluggable idle-wait behavior, traded off between wake-up latency and
//     CPU usage
//
// Architecture overview
//
// A Pool is composed of three parts:
//
//   1. Ring
//      A fixed-capacity Vyukov-style MPMC ring buffer. Enqueue and Dequeue
//      never block; they succeed, or report full/empty, after a bounded
//      number of CAS retries.
//
//   2. WaitStrategy
//      Governs how an idle worker parks after observing an empty ring, and
//      how a producer wakes one up after a successful Enqueue. Four
//      variants are provided (PassiveWait, SpinBackoffWait, AtomicFlagWait,
//      ConditionVariableWait); AtomicFlagWait is the default.
//
//   3. Pool
//      Owns the ring, the wait strategy, and a fixed set of worker
//      goroutines. Submit (and its variants) package a task into an
//      envelope, enqueue it, and return a Future; workers dequeue
//      envelopes and run them, recovering any panic.
//
// Lifecycle
//
// A Pool moves through four states, in order, and never backward:
// Initializing, Running, Stopping, Stopped. Shutdown is idempotent: only
// the caller that wins the Running->Stopping transition does any work, and
// every other caller returns immediately. Shutdown waits for the active-
// task counter to reach zero before the last worker exits, so a task that
// is running when Shutdown is called is always allowed to finish.
//
// Error handling
//
// The pool distinguishes between two classes of errors:
//
//   - Task errors: returned by a task's own function, delivered through its
//     Future, and optionally mirrored to Config.OnTaskError
//   - Internal errors: pool-local failures not attributable to any one
//     task (a failed CPU pin, for instance), reported only through
//     Config.OnInternalError
//
// Neither class stops worker execution. A panic inside a task's action is
// recovered so a single misbehaving task can never take down a worker.
//
// CPU pinning
//
// On Linux, workers may optionally be pinned to a CPU via
// Config.PinWorkers. When enabled, each worker locks itself to an OS
// thread and restricts that thread to a single core with
// sched_setaffinity. This can improve cache locality for CPU-bound
// workloads; it is not universally beneficial, and unsupported on other
// platforms (pinning then reports an error through OnInternalError and
// the worker keeps running unpinned).
//
// Intended use cases
//
// ringpool is well suited for short-lived, CPU-bound tasks submitted at
// high rates from multiple goroutines. It is not a general-purpose
// goroutine replacement, and it is not tuned for tasks that block for long
// periods on I/O: a blocked task occupies its worker for as long as it
// blocks.
package ringpool

package ringpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// lifecycleState is the pool's monotonic state word: Initializing ->
// Running -> Stopping -> Stopped. Transitions only ever move forward.
type lifecycleState int32

const (
	stateInitializing lifecycleState = iota
	stateRunning
	stateStopping
	stateStopped
)

func (s lifecycleState) String() string {
	switch s {
	case stateRunning:
		return "Running"
	case stateStopping:
		return "Stopping"
	case stateStopped:
		return "Stopped"
	default:
		return "Initializing"
	}
}

// Pool owns a Ring, a WaitStrategy, a fixed array of worker goroutines, and
// the lifecycle state word they all coordinate through. M is the caller's
// metadata type, attached to every task via the Submit family; use Empty
// when no per-task metadata is needed.
//
// A Pool must be constructed with New; the zero value is not usable.
type Pool[M any] struct {
	cfg Config[M]

	ring       *Ring[taskEnvelope[M]]
	notify     WaitStrategy
	workerWait []WaitStrategy

	state  atomic.Int32
	active atomic.Int64

	wg sync.WaitGroup

	pinMu   sync.Mutex
	pinErrs []error
}

// Empty is the metadata type for pools that don't need per-task metadata.
type Empty struct{}

// New constructs a Pool from cfg: it fills in defaults, validates worker
// count and ring capacity, builds the ring and wait strategy, spawns
// Config.Workers worker goroutines, and transitions the pool to Running
// before returning.
func New[M any](cfg Config[M]) (*Pool[M], error) {
	cfg.FillDefaults()
	if cfg.Workers <= 0 {
		return nil, ErrZeroWorkers
	}

	ring, err := NewRing[taskEnvelope[M]](cfg.RingCapacity)
	if err != nil {
		return nil, err
	}

	p := &Pool[M]{
		cfg:  cfg,
		ring: ring,
	}
	p.state.Store(int32(stateInitializing))

	shared := newWaitStrategy(cfg.WaitStrategy)
	p.notify = shared
	p.workerWait = make([]WaitStrategy, cfg.Workers)
	for i := range p.workerWait {
		if waitStrategiesShared(cfg.WaitStrategy) {
			p.workerWait[i] = shared
		} else {
			p.workerWait[i] = newWaitStrategy(cfg.WaitStrategy)
		}
	}

	p.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go p.workerLoop(i)
	}

	p.state.Store(int32(stateRunning))
	p.logger().Info("pool started",
		lg.Int("workers", cfg.Workers),
		lg.Int("ring_capacity", ring.Cap()),
		lg.String("wait_strategy", cfg.WaitStrategy.String()),
	)
	return p, nil
}

// logger returns the *zap.Logger lifecycle events are written to: the
// explicitly configured one if set, otherwise whatever zlog resolves for
// the pool's base context — the same lg.FromContext(ctx) call
// azargarov-wpool's wpool.go makes per-operation rather than caching a
// logger field.
func (p *Pool[M]) logger() *zap.Logger {
	if p.cfg.Logger != nil {
		return p.cfg.Logger
	}
	return lg.FromContext(p.cfg.BaseContext)
}

func (p *Pool[M]) loadState() lifecycleState {
	return lifecycleState(p.state.Load())
}

// Stats returns a snapshot of the pool's submitted/executed/active-task
// counters.
func (p *Pool[M]) Stats() Stats {
	s := Stats{Active: p.active.Load()}
	if am, ok := p.cfg.Metrics.(*AtomicMetrics); ok {
		s.Submitted = am.Submitted()
		s.Executed = am.Executed()
	}
	return s
}

// enqueue is the non-generic hot path shared by the whole Submit family:
// package (meta, action) into an envelope, enqueue it, and notify one
// idle worker. It never blocks.
func (p *Pool[M]) enqueue(meta M, action func()) error {
	if p.loadState() != stateRunning {
		return ErrNotRunning
	}
	env := taskEnvelope[M]{meta: meta, action: action}
	if !p.ring.Enqueue(env) {
		return ErrQueueFull
	}
	p.cfg.Metrics.IncSubmitted()
	p.notify.Notify()
	return nil
}

func (p *Pool[M]) workerLoop(index int) {
	defer p.wg.Done()

	if p.cfg.PinWorkers {
		if err := pinToCPU(index % runtime.NumCPU()); err != nil {
			p.recordPinError(err)
			p.reportInternalError(err)
		}
	}

	ws := p.workerWait[index]
	for {
		env, ok := p.ring.Dequeue()
		if ok {
			ws.Reset()
			p.active.Add(1)
			env.run()
			p.active.Add(-1)
			p.cfg.Metrics.IncExecuted()
			continue
		}

		if p.loadState() == stateStopping && p.active.Load() == 0 {
			return
		}
		ws.Wait()
	}
}

func (p *Pool[M]) recordPinError(err error) {
	p.pinMu.Lock()
	p.pinErrs = append(p.pinErrs, err)
	p.pinMu.Unlock()
}

// Shutdown transitions the pool through Stopping to Stopped and blocks
// until every worker has exited. It is idempotent: a Shutdown call that
// loses the race to transition out of Running (because another call, or
// none at all, already did) returns immediately.
//
// Every task enqueued before the transition runs to completion before any
// worker exits; submissions racing the transition may or may not be
// accepted, per the spec's one documented acceptable race.
func (p *Pool[M]) Shutdown() {
	if !p.state.CompareAndSwap(int32(stateRunning), int32(stateStopping)) {
		return
	}
	p.logger().Info("pool stopping")
	p.notify.NotifyAll()
	p.wg.Wait()
	p.state.Store(int32(stateStopped))
	p.logger().Info("pool stopped",
		lg.Any("submitted", p.Stats().Submitted),
		lg.Any("executed", p.Stats().Executed),
	)
}

// Close calls Shutdown and returns any CPU-pin failures accumulated along
// the way, combined with go.uber.org/multierr the way the teacher's
// dependency graph already pulls multierr in (transitively, through
// zlog). It satisfies the common Go io.Closer shape so callers can
// `defer pool.Close()` in place of the core contract's "implicit
// destruction must invoke shutdown" (Go has no destructors).
func (p *Pool[M]) Close() error {
	p.Shutdown()
	p.pinMu.Lock()
	defer p.pinMu.Unlock()
	return multierr.Combine(p.pinErrs...)
}

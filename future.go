package ringpool

import "sync"

// Future is the one-shot result channel returned by the Submit family. The
// submitter holds the receiving end (this value); the envelope's action,
// running on some worker, holds the producing end via the resolve closure
// newFuture returns alongside it. A Future resolves exactly once, with
// either a value or an error, and Wait observes that resolution at most
// once per caller (repeated calls to Wait all return the same result).
type Future[R any] struct {
	done chan struct{}
	val  R
	err  error
}

func newFuture[R any]() (*Future[R], func(R, error)) {
	f := &Future[R]{done: make(chan struct{})}
	var once sync.Once
	resolve := func(v R, err error) {
		once.Do(func() {
			f.val, f.err = v, err
			close(f.done)
		})
	}
	return f, resolve
}

// Wait blocks until the task resolves and returns its value (or the error
// it failed with). If the pool is destroyed before a racing submission's
// task ever runs, Wait blocks forever — the same caveat the spec places on
// the one documented unresolved-future case.
func (f *Future[R]) Wait() (R, error) {
	<-f.done
	return f.val, f.err
}

// Done returns a channel that is closed once the Future has resolved, for
// callers that want to select on several futures (or a future and a
// context deadline) instead of blocking in Wait.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

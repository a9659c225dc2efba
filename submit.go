package ringpool

import "fmt"

// The Submit family are free functions, not methods: Go methods cannot
// introduce their own type parameters, so a result type R independent of
// the pool's metadata type M has nowhere to live except on a function.
// Every variant below funnels into Pool.enqueue, the only place that
// touches the ring and the wait strategy.

// Submit queues fn for execution with the zero value of M as its metadata
// and returns a Future that resolves with fn's result.
func Submit[M any, R any](p *Pool[M], fn func() (R, error)) (*Future[R], error) {
	var zero M
	return SubmitMeta(p, zero, fn)
}

// SubmitMeta queues fn with meta attached to its envelope and returns a
// Future that resolves with fn's result. meta is never inspected by the
// pool itself; it exists for the caller's own logging, metrics, or
// OnTaskError handling.
//
// If fn panics, the panic is recovered here and turned into the Future's
// error (never propagated into the worker loop), the same way a returned
// error is delivered.
func SubmitMeta[M any, R any](p *Pool[M], meta M, fn func() (R, error)) (*Future[R], error) {
	future, resolve := newFuture[R]()
	action := func() {
		defer func() {
			if r := recover(); r != nil {
				var zero R
				err := fmt.Errorf("ringpool: task panicked: %v", r)
				p.reportTaskError(err)
				resolve(zero, err)
			}
		}()
		v, err := fn()
		if err != nil {
			p.reportTaskError(err)
		}
		resolve(v, err)
	}
	if err := p.enqueue(meta, action); err != nil {
		return nil, err
	}
	return future, nil
}

// SubmitArgs1 queues fn bound to a, with no metadata attached, and returns
// a Future that resolves with fn's result. It exists for the common case
// of submitting a function together with the single argument it closes
// over, without the caller having to write its own closure.
func SubmitArgs1[M any, A any, R any](p *Pool[M], fn func(A) (R, error), a A) (*Future[R], error) {
	var zero M
	return SubmitMetaArgs1(p, zero, fn, a)
}

// SubmitMetaArgs1 is SubmitArgs1 with metadata attached.
func SubmitMetaArgs1[M any, A any, R any](p *Pool[M], meta M, fn func(A) (R, error), a A) (*Future[R], error) {
	return SubmitMeta(p, meta, func() (R, error) {
		return fn(a)
	})
}

// SubmitArgs2 queues fn bound to (a, b), with no metadata attached, and
// returns a Future that resolves with fn's result.
func SubmitArgs2[M any, A any, B any, R any](p *Pool[M], fn func(A, B) (R, error), a A, b B) (*Future[R], error) {
	var zero M
	return SubmitMetaArgs2(p, zero, fn, a, b)
}

// SubmitMetaArgs2 is SubmitArgs2 with metadata attached.
func SubmitMetaArgs2[M any, A any, B any, R any](p *Pool[M], meta M, fn func(A, B) (R, error), a A, b B) (*Future[R], error) {
	return SubmitMeta(p, meta, func() (R, error) {
		return fn(a, b)
	})
}

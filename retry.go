package ringpool

import (
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
)

const (
	defaultAttempts    = 3
	defaultInitialWait = 200 * time.Millisecond
	defaultMaxWait     = 5 * time.Second
)

// RetryPolicy describes how many times, and how often, a task submitted
// through SubmitWithRetry should be retried. Zero values are treated as
// "use pool defaults".
type RetryPolicy struct {
	// Attempts is the maximum number of tries for a task.
	Attempts int

	// Initial is the first backoff duration.
	Initial time.Duration

	// Max is the cap for backoff duration.
	Max time.Duration
}

// DefaultRetryPolicy returns the retry policy SubmitWithRetry falls back
// to when called with a nil policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: defaultAttempts,
		Initial:  defaultInitialWait,
		Max:      defaultMaxWait,
	}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.Attempts <= 0 {
		p.Attempts = defaultAttempts
	}
	if p.Initial <= 0 {
		p.Initial = defaultInitialWait
	}
	if p.Max <= 0 {
		p.Max = defaultMaxWait
	}
	return p
}

// SubmitWithRetry submits fn the same way SubmitMeta does, except the
// action retries fn on a non-nil error, backing off between attempts with
// github.com/Andrej220/go-utils/backoff the way azargarov-wpool's
// processJob retry loop does. All attempts and all backoff sleeping run
// inside the one worker that dequeued the task — exactly like a task that
// blocks internally, the pool does not react to this beyond the usual
// "a blocked task occupies its worker indefinitely" caveat.
//
// The returned Future resolves with the result of the final attempt: a
// value on the first success, or the last attempt's error once Attempts
// is exhausted.
func SubmitWithRetry[M any, R any](p *Pool[M], meta M, policy *RetryPolicy, fn func() (R, error)) (*Future[R], error) {
	pol := DefaultRetryPolicy()
	if policy != nil {
		pol = policy.withDefaults()
	}
	return SubmitMeta(p, meta, func() (R, error) {
		bo := boff.New(pol.Initial, pol.Max, time.Now().UnixNano())
		var (
			v   R
			err error
		)
		for attempt := 1; attempt <= pol.Attempts; attempt++ {
			v, err = fn()
			if err == nil {
				return v, nil
			}
			if attempt == pol.Attempts {
				return v, err
			}
			time.Sleep(bo.Next())
		}
		return v, err
	})
}

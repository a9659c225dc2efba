package ringpool

// reportInternalError reports an internal pool error.
//
// Internal errors are not attributable to any single task — a failed CPU
// pin, for instance. If no handler is registered, the error is silently
// ignored.
func (p *Pool[M]) reportInternalError(e error) {
	if p.cfg.OnInternalError != nil {
		p.cfg.OnInternalError(e)
	}
}

// reportTaskError reports an error a task's action finished with, in
// addition to that error being delivered through the task's own Future.
func (p *Pool[M]) reportTaskError(err error) {
	if p.cfg.OnTaskError != nil {
		p.cfg.OnTaskError(err)
	}
}

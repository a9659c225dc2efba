//go:build !linux

package ringpool

import "errors"

// errPinUnsupported is reported through Config.OnInternalError when
// PinWorkers is set on a platform without sched_setaffinity.
var errPinUnsupported = errors.New("ringpool: worker CPU pinning is only supported on linux")

func pinToCPU(cpu int) error {
	return errPinUnsupported
}

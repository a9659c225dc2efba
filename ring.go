package ringpool

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// ringSlot is one cell of a Ring. seq distinguishes "empty, owned by the
// producer for round r" from "full, owned by the consumer for round r"
// following Vyukov's bounded MPMC queue protocol: a slot with sequence==i is
// free for the producer of round i == r*capacity+index; sequence==i+1 means
// it is full and ready for the matching consumer.
//
// The CacheLinePad keeps neighboring slots from false-sharing the
// frequently-written sequence word, the same padding idiom
// azargarov-wpool's segmented_queue.go uses for its producer/consumer views.
type ringSlot[T any] struct {
	seq atomic.Uint64
	_   cpu.CacheLinePad
	val T
}

// Ring is a bounded, lock-free, multi-producer/multi-consumer queue. It is
// the sole synchronization primitive on the task hand-off path: Enqueue and
// Dequeue never block, and contend only via bounded CAS retry.
//
// A Ring must be constructed with NewRing; the zero value is not usable.
type Ring[T any] struct {
	mask uint64
	_    cpu.CacheLinePad
	enq  atomic.Uint64
	_    cpu.CacheLinePad
	deq  atomic.Uint64
	_    cpu.CacheLinePad
	slots []ringSlot[T]
}

// NewRing constructs a Ring with room for capacity in-flight values.
// capacity must be a power of two no smaller than 2, matching the
// slot-sequence protocol's wraparound arithmetic; any other value returns
// ErrInvalidCapacity.
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		return nil, ErrInvalidCapacity
	}
	r := &Ring[T]{
		mask:  uint64(capacity - 1),
		slots: make([]ringSlot[T], capacity),
	}
	for i := range r.slots {
		r.slots[i].seq.Store(uint64(i))
	}
	return r, nil
}

// Cap reports the ring's fixed capacity.
func (r *Ring[T]) Cap() int { return int(r.mask) + 1 }

// Enqueue moves v into the ring. It returns false without blocking if the
// ring is full at the moment of the attempt; callers observing false may
// retry later, but Enqueue itself never spins past a handful of CAS
// attempts under a single producer's own contention.
func (r *Ring[T]) Enqueue(v T) bool {
	pos := r.enq.Load()
	for {
		slot := &r.slots[pos&r.mask]
		seq := slot.seq.Load()
		diff := int64(seq) - int64(pos)
		switch {
		case diff == 0:
			if r.enq.CompareAndSwap(pos, pos+1) {
				slot.val = v
				slot.seq.Store(pos + 1)
				return true
			}
			pos = r.enq.Load()
		case diff < 0:
			return false
		default:
			pos = r.enq.Load()
		}
	}
}

// Dequeue moves the oldest present value out of the ring. It returns false
// without blocking if the ring is empty at the moment of the attempt.
func (r *Ring[T]) Dequeue() (T, bool) {
	pos := r.deq.Load()
	for {
		slot := &r.slots[pos&r.mask]
		seq := slot.seq.Load()
		diff := int64(seq) - int64(pos+1)
		switch {
		case diff == 0:
			if r.deq.CompareAndSwap(pos, pos+1) {
				v := slot.val
				var zero T
				slot.val = zero
				slot.seq.Store(pos + r.mask + 1)
				return v, true
			}
			pos = r.deq.Load()
		case diff < 0:
			var zero T
			return zero, false
		default:
			pos = r.deq.Load()
		}
	}
}

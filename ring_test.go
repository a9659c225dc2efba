package ringpool

import (
	"sync"
	"testing"
)

func TestNewRingRejectsInvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, c := range []int{0, 1, 3, 5, 6, 7, -4} {
		if _, err := NewRing[int](c); err != ErrInvalidCapacity {
			t.Errorf("NewRing(%d): got %v, want ErrInvalidCapacity", c, err)
		}
	}
}

func TestRingFIFOSingleThread(t *testing.T) {
	t.Parallel()

	r, err := NewRing[int](8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if !r.Enqueue(i) {
			t.Fatalf("Enqueue(%d) failed", i)
		}
	}
	for i := 0; i < 5; i++ {
		v, ok := r.Dequeue()
		if !ok || v != i {
			t.Fatalf("Dequeue() = %d, %v; want %d, true", v, ok, i)
		}
	}
	if _, ok := r.Dequeue(); ok {
		t.Fatal("Dequeue on empty ring returned true")
	}
}

func TestRingFillsToCapacity(t *testing.T) {
	t.Parallel()

	r, err := NewRing[int](2)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Enqueue(1) {
		t.Fatal("first Enqueue should succeed")
	}
	if !r.Enqueue(2) {
		t.Fatal("second Enqueue should succeed")
	}
	if r.Enqueue(3) {
		t.Fatal("Enqueue should fail once ring is at capacity")
	}
	if v, ok := r.Dequeue(); !ok || v != 1 {
		t.Fatalf("Dequeue() = %d, %v; want 1, true", v, ok)
	}
	if !r.Enqueue(3) {
		t.Fatal("Enqueue should succeed again after a Dequeue frees a slot")
	}
}

type movedOnly struct {
	tag  string
	seen *bool
}

func TestRingMoveOnlyPayload(t *testing.T) {
	t.Parallel()

	r, err := NewRing[*movedOnly](4)
	if err != nil {
		t.Fatal(err)
	}
	seen := false
	v := &movedOnly{tag: "only-copy", seen: &seen}
	if !r.Enqueue(v) {
		t.Fatal("Enqueue failed")
	}
	got, ok := r.Dequeue()
	if !ok || got != v {
		t.Fatalf("Dequeue() = %v, %v; want the same pointer back", got, ok)
	}
	*got.seen = true
	if !seen {
		t.Fatal("dequeued value should alias the original")
	}
}

func TestRingConcurrentNoLossNoDuplication(t *testing.T) {
	t.Parallel()

	const (
		producers = 4
		consumers = 4
		perProducer = 1000
		capacity  = 1024
	)
	r, err := NewRing[int](capacity)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				v := base*perProducer + i
				for !r.Enqueue(v) {
					// bounded ring, keep retrying until a consumer frees a slot
				}
			}
		}(p)
	}

	total := producers * perProducer
	results := make(chan int, total)
	var cwg sync.WaitGroup
	cwg.Add(consumers)
	var produced sync.WaitGroup
	produced.Add(1)
	go func() { wg.Wait(); produced.Done() }()

	done := make(chan struct{})
	for c := 0; c < consumers; c++ {
		go func() {
			defer cwg.Done()
			for {
				if v, ok := r.Dequeue(); ok {
					results <- v
					continue
				}
				select {
				case <-done:
					return
				default:
				}
			}
		}()
	}

	produced.Wait()
	for len(results) < total {
		// spin until consumers have drained everything producers sent
	}
	close(done)
	cwg.Wait()
	close(results)

	seen := make(map[int]bool, total)
	count := 0
	for v := range results {
		if seen[v] {
			t.Fatalf("value %d observed more than once", v)
		}
		seen[v] = true
		count++
	}
	if count != total {
		t.Fatalf("got %d values, want %d", count, total)
	}
}

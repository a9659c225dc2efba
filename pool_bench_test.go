package ringpool

import (
	"runtime"
	"testing"
)

func BenchmarkPool_SubmitWait(b *testing.B) {
	p, err := New(Config[Empty]{Workers: runtime.GOMAXPROCS(0), RingCapacity: 4096})
	if err != nil {
		b.Fatal(err)
	}
	defer p.Shutdown()

	noop := func() (int, error) { return 0, nil }

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		f, err := Submit(p, noop)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := f.Wait(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPool_SubmitWaitParallel(b *testing.B) {
	p, err := New(Config[Empty]{Workers: runtime.GOMAXPROCS(0), RingCapacity: 4096})
	if err != nil {
		b.Fatal(err)
	}
	defer p.Shutdown()

	noop := func() (int, error) { return 0, nil }

	b.ReportAllocs()
	b.SetParallelism(4)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			f, err := Submit(p, noop)
			if err != nil {
				b.Fatal(err)
			}
			if _, err := f.Wait(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkPool_SubmitWaitStrategies(b *testing.B) {
	kinds := []WaitStrategyKind{WaitAtomicFlag, WaitSpinBackoff, WaitConditionVariable, WaitPassive}
	for _, kind := range kinds {
		kind := kind
		b.Run(kind.String(), func(b *testing.B) {
			p, err := New(Config[Empty]{Workers: runtime.GOMAXPROCS(0), RingCapacity: 4096, WaitStrategy: kind})
			if err != nil {
				b.Fatal(err)
			}
			defer p.Shutdown()

			noop := func() (int, error) { return 0, nil }
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				f, err := Submit(p, noop)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := f.Wait(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForEachIndexVisitsAllOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 0} {
		const n = 200
		counts := make([]int32, n)
		ForEachIndex(workers, n, func(i int) {
			atomic.AddInt32(&counts[i], 1)
		})
		for i, c := range counts {
			if c != 1 {
				t.Errorf("workers=%d: index %d visited %d times, want 1", workers, i, c)
			}
		}
	}
}

func TestForEachIndexSequentialOrder(t *testing.T) {
	// A single worker runs inline, preserving index order.
	var order []int
	ForEachIndex(1, 5, func(i int) {
		order = append(order, i)
	})
	for i, got := range order {
		if got != i {
			t.Fatalf("inline order = %v, want ascending", order)
		}
	}
}

func TestForEachIndexSameResultAnyWorkers(t *testing.T) {
	// Slot-writing work must produce identical results regardless of
	// worker count.
	const n = 64
	run := func(workers int) []int {
		out := make([]int, n)
		ForEachIndex(workers, n, func(i int) {
			out[i] = i * i
		})
		return out
	}
	want := run(1)
	for _, workers := range []int{2, 3, 8} {
		got := run(workers)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("workers=%d: slot %d = %d, want %d", workers, i, got[i], want[i])
			}
		}
	}
}

func TestForEachIndexEmpty(t *testing.T) {
	called := false
	ForEachIndex(4, 0, func(int) { called = true })
	ForEachIndex(4, -3, func(int) { called = true })
	if called {
		t.Error("fn must not run for an empty range")
	}
}

func TestForEachIndexMoreWorkersThanItems(t *testing.T) {
	counts := make([]int32, 3)
	ForEachIndex(16, 3, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Errorf("index %d visited %d times, want 1", i, c)
		}
	}
}

func BenchmarkForEachIndex(b *testing.B) {
	work := func(i int) {
		// Small arithmetic load standing in for one site's pipeline.
		s := 0
		for j := 0; j < 64; j++ {
			s += i * j
		}
		_ = s
	}
	for _, tc := range []struct {
		name    string
		workers int
	}{
		{"sequential", 1},
		{"4workers", 4},
	} {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ForEachIndex(tc.workers, 512, work)
			}
		})
	}
}

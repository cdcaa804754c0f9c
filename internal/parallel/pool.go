// Package parallel fans independent per-index work out over a bounded set
// of goroutines. The generator uses it for the per-site pipeline stage:
// sites do not interact after triangulation and each writes only its own
// result slot, so the outputs cannot depend on scheduling.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ForEachIndex calls fn(i) for every i in [0, n), spreading the calls over
// the given number of worker goroutines, and returns when every call has
// finished. workers <= 0 uses one worker per CPU; a single worker (or
// n == 1) runs inline on the caller's goroutine with no synchronization.
//
// fn must be safe to call concurrently with itself on distinct indices.
func ForEachIndex(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	// Workers pull the next index from a shared counter so slow items
	// (dense cells) do not stall a fixed stripe of the range.
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}

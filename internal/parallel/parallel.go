// Package parallel provides the worker-pool map used by the analysis
// pipelines. All pipeline parallelism is stateless map-over-collection:
// each call touches only its own index plus read-only shared state, so
// no locking is needed beyond the pool's own join.
package parallel

import (
	"runtime"
	"sync"
)

// ForEach invokes fn(i) for every i in [0, n) across a bounded pool of
// worker goroutines and blocks until every call has returned. Workers
// pick indices from a shared channel, so execution order across indices
// is unspecified; callers must write results only into their own slot.
// workers <= 0 selects runtime.NumCPU().
func ForEach(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
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

	jobs := make(chan int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

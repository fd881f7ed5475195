package curve

import (
	"runtime"
	"sync"
)

// ParallelFor splits [0, n) into contiguous chunks of at least minChunk items
// and runs fn on each chunk in its own goroutine.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if minChunk < 1 {
		minChunk = 1
	}
	workers := runtime.GOMAXPROCS(0)
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

package poly

import (
	"runtime"
	"sync"
)

// minParallelWork is the smallest vector length worth splitting across
// goroutines; below it the dispatch overhead dominates the work.
const minParallelWork = 1 << 12

// Parallelize splits [0, n) into contiguous chunks, one per GOMAXPROCS
// worker, and runs f on each chunk concurrently, waiting for all of them to
// finish before returning. Used on the pointwise coset-vector arithmetic in
// the quotient and linearization passes, never on the FFTs themselves,
// which gnark-crypto's fft.Domain already parallelizes on its own.
func Parallelize(n int, f func(start, end int)) {
	if n <= minParallelWork {
		f(0, n)
		return
	}

	numWorkers := runtime.GOMAXPROCS(0)
	chunk := (n + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

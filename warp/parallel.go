package warp

import (
	"runtime"
	"sync"
)

// forEachRowRange invokes fn over [0, height) split into contiguous row
// ranges. At most one goroutine touches a given range, so row writers need
// no synchronization beyond the final join. Small grids always run serial;
// the goroutine overhead is not worth it below a few rows per worker.
func forEachRowRange(height int, parallel bool, workers int, fn func(y0, y1 int)) {
	if !parallel || height < 4 {
		fn(0, height)
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := chooseChunk(height, workers)
	var wg sync.WaitGroup
	for start := 0; start < height; start += chunk {
		end := start + chunk
		if end > height {
			end = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(start, end)
	}
	wg.Wait()
}

// chooseChunk picks a row-range size that balances scheduling overhead
// against cache locality. Aim for a few chunks per worker so uneven rows
// (perspective warps vary per row) still load-balance.
func chooseChunk(height, workers int) int {
	chunk := (height + workers*4 - 1) / (workers * 4)
	if chunk < 8 {
		chunk = 8
	}
	return chunk
}

// Package parallel splits index ranges across goroutines for element-wise
// tensor kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is split.
type Config struct {
	Workers  int // Upper bound on goroutines; <= 1 runs inline.
	MinChunk int // Ranges shorter than this are never split further.
}

// DefaultConfig uses one worker per CPU and chunks of at least 16K elements.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		MinChunk: 1 << 14,
	}
}

// Chunks returns how many pieces Range would split n items into.
func (c Config) Chunks(n int) int {
	if n <= 0 {
		return 0
	}
	if c.Workers <= 1 || n < 2*c.MinChunk {
		return 1
	}
	chunks := n / max(c.MinChunk, 1)
	return min(chunks, c.Workers)
}

// Range calls fn over disjoint [start, end) ranges covering [0, n) and
// returns when all calls have finished. Small inputs run inline.
func Range(n int, fn func(start, end int), cfg Config) {
	chunks := cfg.Chunks(n)
	switch chunks {
	case 0:
		return
	case 1:
		fn(0, n)
		return
	}

	size := (n + chunks - 1) / chunks
	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// Package parallel provides the chunked index loop the CPU kernels fan out on.
package parallel

import (
	"runtime"
	"sync"
)

// Config bounds how a loop is split across goroutines.
type Config struct {
	Enabled      bool // Run chunks concurrently when true.
	NumWorkers   int  // Upper bound on concurrent chunks.
	MinChunkSize int  // Smallest index range worth a goroutine.
}

// DefaultConfig sizes the pool from the machine's CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// For calls f(i) once for every i in [0, n). When parallelism is enabled and
// the range is large enough, chunks run on separate goroutines; otherwise the
// whole range runs on the calling goroutine. f must be safe to call
// concurrently with distinct arguments.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				f(i)
			}
		}()
	}
	wg.Wait()
}

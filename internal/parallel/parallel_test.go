package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor_CountsEveryCall(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  Config
	}{
		{"parallel", 1000, DefaultConfig()},
		{"sequential", 100, Config{Enabled: false}},
		{"below chunk threshold", DefaultConfig().MinChunkSize - 1, DefaultConfig()},
		{"empty range", 0, DefaultConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int64
			For(tt.n, func(_ int) {
				atomic.AddInt64(&calls, 1)
			}, tt.cfg)

			if calls != int64(tt.n) {
				t.Errorf("f called %d times, want %d", calls, tt.n)
			}
		})
	}
}

func TestFor_CoversEveryIndex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 8 // small enough that the range actually fans out

	n := 500
	seen := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times, want 1", i, c)
		}
	}
}

func BenchmarkFor(b *testing.B) {
	n := 10000
	for _, enabled := range []bool{true, false} {
		cfg := DefaultConfig()
		cfg.Enabled = enabled
		name := "sequential"
		if enabled {
			name = "parallel"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var sum int64
				For(n, func(i int) {
					atomic.AddInt64(&sum, int64(i))
				}, cfg)
			}
		})
	}
}

package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	var counter int64
	n := 1000

	For(n, cfg, func(_ int) {
		atomic.AddInt64(&counter, 1)
	})

	assert.Equal(t, int64(n), counter)
}

func TestChunks_CoverRangeOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 10}

	n := 101
	seen := make([]int, n)
	var mu sync.Mutex
	var calls int

	Chunks(n, cfg, func(start, end int) {
		mu.Lock()
		calls++
		mu.Unlock()
		for i := start; i < end; i++ {
			seen[i]++
		}
	})

	for i, c := range seen {
		assert.Equal(t, 1, c, "index %d", i)
	}
	assert.Greater(t, calls, 1)
}

func TestChunks_Sequential(t *testing.T) {
	var ranges [][2]int
	Chunks(100, Sequential(), func(start, end int) {
		ranges = append(ranges, [2]int{start, end})
	})

	assert.Equal(t, [][2]int{{0, 100}}, ranges)
}

func TestChunks_SmallInputRunsInline(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}

	var calls int
	Chunks(100, cfg, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	})

	assert.Equal(t, 1, calls)
}

func TestChunks_Empty(t *testing.T) {
	Chunks(0, DefaultConfig(), func(_, _ int) {
		t.Fatal("f must not be called for an empty range")
	})
}

package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_CoversEveryIndexOnce(t *testing.T) {
	cfgs := []Config{
		{Workers: 1, MinChunk: 1},
		{Workers: 4, MinChunk: 10},
		{Workers: 7, MinChunk: 3},
		DefaultConfig(),
	}
	for _, cfg := range cfgs {
		for _, n := range []int{0, 1, 19, 20, 1000, 100003} {
			hits := make([]int32, n)
			Range(n, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			}, cfg)
			for i, h := range hits {
				if h != 1 {
					t.Fatalf("cfg %+v n=%d: index %d visited %d times", cfg, n, i, h)
				}
			}
		}
	}
}

func TestConfig_Chunks(t *testing.T) {
	cfg := Config{Workers: 4, MinChunk: 10}
	assert.Equal(t, 0, cfg.Chunks(0))
	assert.Equal(t, 1, cfg.Chunks(19))
	assert.Equal(t, 2, cfg.Chunks(20))
	assert.Equal(t, 4, cfg.Chunks(1000))
	assert.Equal(t, 1, Config{Workers: 1, MinChunk: 1}.Chunks(1000))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	getHisto := func(K, Np int) (histo map[int]int) {
		pm := NewPartitionMap(Np, K)
		histo = make(map[int]int)
		for np := 0; np < pm.ParallelDegree; np++ {
			kMin, kMax := pm.GetBucketRange(np)
			histo[kMax-kMin]++
		}
		return
	}
	getTotal := func(histo map[int]int) (total int) {
		for key, count := range histo {
			total += key * count
		}
		return
	}
	{ // Bucket sizes
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		for n := 1; n < 500; n++ {
			histo := getHisto(n, 7)
			assert.LessOrEqual(t, len(histo), 2)
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Buckets are contiguous and cover the range
		pm := NewPartitionMap(4, 10)
		assert.Equal(t, [][2]int{{0, 3}, {3, 6}, {6, 8}, {8, 10}}, pm.Partitions)
		for maxIndex := 1; maxIndex < 200; maxIndex++ {
			pm = NewPartitionMap(5, maxIndex)
			next := 0
			for np := 0; np < pm.ParallelDegree; np++ {
				kMin, kMax := pm.GetBucketRange(np)
				assert.Equal(t, next, kMin)
				next = kMax
			}
			assert.Equal(t, maxIndex, next)
		}
	}
	{ // Non positive degree falls back to one bucket
		pm := NewPartitionMap(0, 5)
		assert.Equal(t, 1, pm.ParallelDegree)
		assert.Equal(t, [][2]int{{0, 5}}, pm.Partitions)
	}
}

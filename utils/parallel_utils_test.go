package utils

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Bucket sizes differ by at most one and cover every index
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
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		for n := 64; n < 10000; n += 7 {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1]))
			}
			assert.Equal(t, n, getTotal(histo))
		}
		kMin, kMax := NewPartitionMap(1, 400001).GetBucketRange(0)
		assert.Equal(t, [2]int{0, 400001}, [2]int{kMin, kMax})
	}
	{ // Buckets are contiguous and ordered
		pm := NewPartitionMap(7, 400001)
		var next int
		for bn := 0; bn < pm.ParallelDegree; bn++ {
			kMin, kMax := pm.GetBucketRange(bn)
			assert.Equal(t, next, kMin)
			next = kMax
		}
		assert.Equal(t, pm.MaxIndex, next)
	}
	{ // Parallel degree
		assert.Equal(t, 4, ParallelDegree(4, 100))
		assert.Equal(t, runtime.NumCPU(), ParallelDegree(0, math.MaxInt32))
		assert.Equal(t, 1, ParallelDegree(8, 3))
	}
}

func TestPOW(t *testing.T) {
	for _, x := range []float64{-2.5, -1, 0.3, 1, 1.7, 12} {
		for p := -12; p <= 12; p++ {
			assert.InEpsilon(t, math.Pow(x, float64(p)), POW(x, p), 1.e-14, "x = %v, p = %d", x, p)
		}
	}
	assert.Equal(t, 1., POW(0, 0))
	assert.Equal(t, 0.125, POW(0.5, 3))
}

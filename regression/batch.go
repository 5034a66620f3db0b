package regression

import (
	"runtime"
	"sync"

	"github.com/notargets/gaussfit/types"
	"github.com/notargets/gaussfit/utils"
)

// FitBatch runs FitAllModels over each dataset, spreading the datasets over
// parallelDegree goroutines. A non positive degree uses runtime.NumCPU.
// results[i] and errs[i] belong to datasets[i].
func FitBatch(datasets []types.Dataset, parallelDegree int) (results []Result, errs []error) {
	var (
		wg = sync.WaitGroup{}
	)
	if parallelDegree <= 0 {
		parallelDegree = runtime.NumCPU()
	}
	if parallelDegree > len(datasets) {
		parallelDegree = len(datasets)
	}
	results = make([]Result, len(datasets))
	errs = make([]error, len(datasets))
	if len(datasets) == 0 {
		return
	}
	pm := utils.NewPartitionMap(parallelDegree, len(datasets))
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				results[k], errs[k] = FitAllModels(datasets[k])
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
	return
}

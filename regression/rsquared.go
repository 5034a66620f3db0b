package regression

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/gaussfit/types"
	"github.com/notargets/gaussfit/utils"
)

// RSquared is 1 - SSres/SStot of predict over every sample of data, in the untransformed response space.
// A constant response has SStot = 0, scored 1 when the residual vanishes as well and 0 otherwise.
func RSquared(data types.Dataset, predict func(x float64) float64) (r2 float64) {
	var (
		x, y         = data.XY()
		yMean        = stat.Mean(y, nil)
		ssTot, ssRes float64
	)
	for i := range y {
		dt, dr := y[i]-yMean, y[i]-predict(x[i])
		ssTot += dt * dt
		ssRes += dr * dr
	}
	if ssTot == 0 {
		if utils.NearZero(ssRes, floats.Dot(y, y), utils.DEGENERATETOL) {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

// AdjustedRSquared corrects r2 for p predictors over n samples, r2 is returned as is without residual degrees of freedom
func AdjustedRSquared(r2 float64, n, p int) float64 {
	var (
		dof = n - p - 1
	)
	if dof <= 0 {
		return r2
	}
	return 1 - (1-r2)*float64(n-1)/float64(dof)
}

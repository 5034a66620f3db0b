package regression

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/gaussfit/linsolve"
	"github.com/notargets/gaussfit/types"
	"github.com/notargets/gaussfit/utils"
)

// leastSquares fits y = slope·x + intercept on centred data (gonum stat.LinearRegression),
// ok is false when fewer than two distinct x exist
func leastSquares(x, y []float64) (slope, intercept float64, ok bool) {
	var (
		finite = func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	)
	if len(x) < 2 || floats.Max(x) == floats.Min(x) {
		return
	}
	intercept, slope = stat.LinearRegression(x, y, nil, false)
	ok = finite(slope) && finite(intercept)
	return
}

// FitLinear is absent when fewer than two distinct x values exist
func FitLinear(data types.Dataset) (fit *ModelFit, ok bool) {
	var (
		x, y = data.XY()
		m, b float64
	)
	if m, b, ok = leastSquares(x, y); !ok {
		return nil, false
	}
	return newModelFit(LinearModel{M: m, B: b}, data)
}

// FitQuadratic solves the 3x3 normal equations, absent for fewer than three samples or a singular system
func FitQuadratic(data types.Dataset) (fit *ModelFit, ok bool) {
	if len(data) < 3 {
		return nil, false
	}
	var (
		x, y = data.XY()
		S, T = utils.PowerSums(x, y, 4, 2)
		Aug  = utils.NewMatrix(3, 4, []float64{
			S[0], S[1], S[2], T[0],
			S[1], S[2], S[3], T[1],
			S[2], S[3], S[4], T[2],
		})
	)
	sol, err := linsolve.SolveAugmented(Aug)
	if err != nil {
		return nil, false
	}
	c, b, a := sol.AtVec(0), sol.AtVec(1), sol.AtVec(2)
	return newModelFit(QuadraticModel{A: a, B: b, C: c}, data)
}

// FitExponential fits ln(y) against x over the samples with y > 0, scoring against all of data
func FitExponential(data types.Dataset) (fit *ModelFit, ok bool) {
	var (
		usable = data.Filter(func(s types.Sample) bool { return s.Y > 0 })
		lx, ly = make([]float64, len(usable)), make([]float64, len(usable))
	)
	for i, s := range usable {
		lx[i], ly[i] = s.X, math.Log(s.Y)
	}
	a, b, ok := logLinear(lx, ly)
	if !ok {
		return nil, false
	}
	return newModelFit(ExponentialModel{A: a, B: b}, data)
}

// FitPower fits ln(y) against ln(x) over the samples with x > 0 and y > 0, scoring against all of data.
// A fit that cannot be evaluated at some sample (x < 0 with a fractional exponent, x = 0 with a
// negative one) is absent.
func FitPower(data types.Dataset) (fit *ModelFit, ok bool) {
	var (
		usable = data.Filter(func(s types.Sample) bool { return s.X > 0 && s.Y > 0 })
		lx, ly = make([]float64, len(usable)), make([]float64, len(usable))
	)
	for i, s := range usable {
		lx[i], ly[i] = math.Log(s.X), math.Log(s.Y)
	}
	a, b, ok := logLinear(lx, ly)
	if !ok {
		return nil, false
	}
	return newModelFit(PowerModel{A: a, B: b}, data)
}

// logLinear recovers a = e^intercept and b = slope from a fit in log space
func logLinear(x, ly []float64) (a, b float64, ok bool) {
	var (
		lnA float64
	)
	if b, lnA, ok = leastSquares(x, ly); !ok {
		return
	}
	a = math.Exp(lnA)
	ok = !math.IsInf(a, 0) && a != 0
	return
}

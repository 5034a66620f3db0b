// Package regression fits linear, quadratic, exponential and power curves to
// (x, y) samples by least squares and scores every fit with R2 over the same
// untransformed samples, so the four families compare on one scale.
package regression

import (
	"errors"

	"github.com/notargets/gaussfit/types"
)

var ErrEmptyDataset = errors.New("regression: no finite samples to fit")

// Result holds one slot per model family, a nil slot means the family does not apply to the data
type Result struct {
	Linear      *ModelFit
	Quadratic   *ModelFit
	Exponential *ModelFit
	Power       *ModelFit
	// Samples is the finite subset of the input that every fit was scored against
	Samples types.Dataset
}

// FitAllModels drops non finite samples and fits every family to what remains
func FitAllModels(data types.Dataset) (r Result, err error) {
	var (
		samples = data.Finite()
	)
	if len(samples) == 0 {
		err = ErrEmptyDataset
		return
	}
	r.Samples = samples
	r.Linear, _ = FitLinear(samples)
	r.Quadratic, _ = FitQuadratic(samples)
	r.Exponential, _ = FitExponential(samples)
	r.Power, _ = FitPower(samples)
	return
}

func (r Result) Get(kind types.ModelKind) (fit *ModelFit, ok bool) {
	switch kind {
	case types.Linear:
		fit = r.Linear
	case types.Quadratic:
		fit = r.Quadratic
	case types.Exponential:
		fit = r.Exponential
	case types.Power:
		fit = r.Power
	}
	return fit, fit != nil
}

// Fits lists the present fits in reporting order
func (r Result) Fits() (fits []*ModelFit) {
	for _, kind := range types.AllModels {
		if fit, ok := r.Get(kind); ok {
			fits = append(fits, fit)
		}
	}
	return
}

// Best is the present fit with the highest R2, the earliest in reporting order wins a tie
func (r Result) Best() (best *ModelFit, ok bool) {
	for _, fit := range r.Fits() {
		if best == nil || fit.R2 > best.R2 {
			best = fit
		}
	}
	return best, best != nil
}

// Curve samples the fitted curve of kind at nSteps+1 evenly spaced x over the sample range.
// Points where the model is undefined (power at x = 0 with a negative exponent) are left out.
func (r Result) Curve(kind types.ModelKind, nSteps int) (curve types.Dataset, ok bool) {
	var (
		fit        *ModelFit
		xMin, xMax float64
	)
	if fit, ok = r.Get(kind); !ok || len(r.Samples) == 0 {
		return nil, false
	}
	xMin, xMax = r.Samples.XRange()
	if nSteps < 1 || xMin == xMax {
		return types.Dataset{{X: xMin, Y: fit.Model.Predict(xMin)}}, true
	}
	curve = make(types.Dataset, 0, nSteps+1)
	dx := (xMax - xMin) / float64(nSteps)
	for i := 0; i <= nSteps; i++ {
		x := xMin + float64(i)*dx
		if i == nSteps {
			x = xMax
		}
		if s := (types.Sample{X: x, Y: fit.Model.Predict(x)}); s.IsFinite() {
			curve = append(curve, s)
		}
	}
	return
}

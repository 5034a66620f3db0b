package types

import (
	"math"
)

// Sample is one (x, y) observation
type Sample struct {
	X, Y float64
}

func (s Sample) IsFinite() bool {
	return !math.IsNaN(s.X) && !math.IsInf(s.X, 0) &&
		!math.IsNaN(s.Y) && !math.IsInf(s.Y, 0)
}

type Dataset []Sample

// Finite returns a copy holding only finite samples, in the original order
func (ds Dataset) Finite() (r Dataset) {
	r = make(Dataset, 0, len(ds))
	for _, s := range ds {
		if s.IsFinite() {
			r = append(r, s)
		}
	}
	return
}

// Filter returns a copy holding the samples for which keep is true
func (ds Dataset) Filter(keep func(s Sample) bool) (r Dataset) {
	r = make(Dataset, 0, len(ds))
	for _, s := range ds {
		if keep(s) {
			r = append(r, s)
		}
	}
	return
}

func (ds Dataset) XY() (x, y []float64) {
	x, y = make([]float64, len(ds)), make([]float64, len(ds))
	for i, s := range ds {
		x[i], y[i] = s.X, s.Y
	}
	return
}

// XRange panics on an empty dataset
func (ds Dataset) XRange() (min, max float64) {
	min, max = ds[0].X, ds[0].X
	for _, s := range ds[1:] {
		if s.X < min {
			min = s.X
		}
		if s.X > max {
			max = s.X
		}
	}
	return
}

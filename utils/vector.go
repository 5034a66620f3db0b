package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) Vector {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		return Vector{mat.NewVecDense(n, dataO[0])}
	}
	return Vector{mat.NewVecDense(n, make([]float64, n))}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Data() []float64 { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Sub(a mat.Vector) Vector { v.V.SubVec(v.V, a); return v } // Changes receiver

func (v Vector) MaxAbs() (max float64) {
	for _, val := range v.Data() {
		if a := math.Abs(val); a > max {
			max = a
		}
	}
	return
}

func VecGetF64(v mat.Vector) (r []float64) {
	r = make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		r[i] = v.AtVec(i)
	}
	return
}

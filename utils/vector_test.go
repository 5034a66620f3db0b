package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mathPow(x float64, p int) float64 { return math.Pow(x, float64(p)) }

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{1, -4, 2})
	require.Equal(t, 3, v.Len())
	v.Sub(NewVector(3, []float64{1, 1, 1}))
	assert.Equal(t, []float64{0, -5, 1}, v.Data())
	assert.Equal(t, 5., v.MaxAbs())
	assert.Equal(t, []float64{0, -5, 1}, VecGetF64(v))
	assert.Equal(t, 0., NewVector(2).MaxAbs())
	assert.Panics(t, func() { NewVector(2, []float64{1, 2, 3}) })
}

func TestSparse(t *testing.T) {
	A := NewMatrix(3, 3, []float64{
		4, 0, 1,
		0, 5, 0,
		2, 0, 3,
	})
	S := NewCSRFrom(A)
	assert.Equal(t, 5, S.NNZ())
	var (
		cols []int
		vals []float64
	)
	S.DoRowNonZero(2, func(i, j int, v float64) {
		assert.Equal(t, 2, i)
		cols = append(cols, j)
		vals = append(vals, v)
	})
	assert.Equal(t, []int{0, 2}, cols)
	assert.Equal(t, []float64{2, 3}, vals)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, A.At(i, j), S.At(i, j))
		}
	}

	D := NewDOK(2, 2)
	D.Set(0, 0, 1).Set(1, 1, 2)
	C := D.ToCSR()
	assert.Equal(t, 2, C.NNZ())
	assert.Equal(t, 2., C.At(1, 1))
	D.SetReadOnly("D")
	assert.Panics(t, func() { D.Set(0, 1, 3) })

	// Compressed rows come out in column order whatever the assembly order
	W := NewDOK(1, 6)
	for j := 5; j >= 0; j-- {
		W.Set(0, j, float64(10*j+1))
	}
	cols, vals = nil, nil
	W.ToCSR().DoRowNonZero(0, func(i, j int, v float64) {
		cols = append(cols, j)
		vals = append(vals, v)
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, cols)
	assert.Equal(t, []float64{1, 11, 21, 31, 41, 51}, vals)
}

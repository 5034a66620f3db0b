package gaussseidel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSplit(t *testing.T) {
	A, _ := dominantSystem()
	D, E, F, err := Split(A)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 0, 0, 5, 0, 0, 0, 3}, D.Data())
	assert.Equal(t, []float64{0, 0, 0, -2, 0, 0, -1, -1, 0}, E.Data())
	assert.Equal(t, []float64{0, -1, -1, 0, 0, -1, 0, 0, 0}, F.Data())
	R := D.Copy().Subtract(E).Subtract(F)
	assert.Equal(t, A.RawMatrix().Data, R.Data())

	_, _, _, err = Split(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, ErrDimension)
}

func TestIterationMatrix(t *testing.T) {
	A, b := dominantSystem()
	assert.True(t, IsDiagonallyDominant(A))
	Ts, c, err := IterationMatrix(A, b)
	require.NoError(t, err)
	// Each recorded sweep is the affine map of the previous one
	r, err := Solve(A, b)
	require.NoError(t, err)
	for k := 1; k < len(r.Steps); k++ {
		prev := mat.NewVecDense(3, r.Steps[k-1])
		var next mat.VecDense
		next.MulVec(Ts, prev)
		next.AddVec(&next, c)
		assert.InDeltaSlice(t, r.Steps[k], next.RawVector().Data, 1.e-12)
	}
	rho, err := SpectralRadius(Ts)
	require.NoError(t, err)
	assert.Less(t, rho, 1.)

	Bad := mat.NewDense(2, 2, []float64{1, 2, 3, 1})
	TsBad, _, err := IterationMatrix(Bad, mat.NewVecDense(2, []float64{1, 1}))
	require.NoError(t, err)
	rho, err = SpectralRadius(TsBad)
	require.NoError(t, err)
	assert.InDelta(t, 6., rho, 1.e-12)

	Z := mat.DenseCopyOf(A)
	Z.Set(1, 1, 0)
	_, _, err = IterationMatrix(Z, b)
	assert.ErrorIs(t, err, ErrZeroDiagonal)
	_, _, err = IterationMatrix(A, mat.NewVecDense(2, nil))
	assert.ErrorIs(t, err, ErrDimension)
	_, err = SpectralRadius(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, ErrDimension)
}

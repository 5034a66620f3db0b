// Package linsolve solves small dense linear systems directly, by Gaussian
// elimination with partial pivoting.
package linsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gaussfit/utils"
)

// Solve returns x with A·x = b. Neither A nor b is modified.
func Solve(A mat.Matrix, b mat.Vector) (x utils.Vector, err error) {
	var (
		Aug utils.Matrix
	)
	if Aug, err = Augment(A, b); err != nil {
		return
	}
	return SolveAugmented(Aug)
}

// Augment builds the n×(n+1) matrix [A | b]
func Augment(A mat.Matrix, b mat.Vector) (Aug utils.Matrix, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc || nr == 0 {
		err = fmt.Errorf("%w: A is %dx%d, need a non empty square matrix", ErrDimension, nr, nc)
		return
	}
	if b.Len() != nr {
		err = fmt.Errorf("%w: A is %dx%d, len(b) = %d", ErrDimension, nr, nc, b.Len())
		return
	}
	Aug = utils.NewMatrix(nr, nr+1)
	for i := 0; i < nr; i++ {
		row := Aug.Row(i)
		for j := 0; j < nr; j++ {
			row[j] = A.At(i, j)
		}
		row[nr] = b.AtVec(i)
	}
	return
}

// SolveAugmented solves the system held in an n×(n+1) augmented matrix, working on a copy
func SolveAugmented(Aug utils.Matrix) (x utils.Vector, err error) {
	var (
		nr, nc = Aug.Dims()
		n      = nr
		m      utils.Matrix
	)
	if nc != nr+1 || nr == 0 {
		err = fmt.Errorf("%w: augmented matrix is %dx%d, need n×(n+1)", ErrDimension, nr, nc)
		return
	}
	m = Aug.Copy()
	// Forward elimination
	for i := 0; i < n; i++ {
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(m.At(k, i)) > math.Abs(m.At(maxRow, i)) {
				maxRow = k
			}
		}
		m.SwapRows(i, maxRow)
		pivot := m.At(i, i)
		if math.Abs(pivot) < utils.PIVOTTOL {
			err = fmt.Errorf("%w: pivot %g in column %d", ErrSingular, pivot, i)
			return
		}
		rowI := m.Row(i)
		for k := i + 1; k < n; k++ {
			rowK := m.Row(k)
			factor := rowK[i] / pivot
			if factor == 0 {
				continue
			}
			for j := i; j <= n; j++ {
				rowK[j] -= factor * rowI[j]
			}
		}
	}
	// Back substitution
	x = utils.NewVector(n)
	xD := x.Data()
	for i := n - 1; i >= 0; i-- {
		rowI := m.Row(i)
		sum := rowI[n]
		for j := i + 1; j < n; j++ {
			sum -= rowI[j] * xD[j]
		}
		xD[i] = sum / rowI[i]
	}
	return
}

// Residual is max_i |(A·x - b)_i|
func Residual(A mat.Matrix, x, b mat.Vector) (r float64) {
	var (
		nr, _ = A.Dims()
		Ax    = utils.NewVector(nr)
	)
	Ax.V.MulVec(A, x)
	return Ax.Sub(b).MaxAbs()
}

// Package gaussseidel approximates the solution of A·x = b by Gauss-Seidel
// sweeps, recording every iterate so callers can inspect convergence.
//
// Convergence is not checked up front. A diagonally dominant A is sufficient,
// IsDiagonallyDominant and SpectralRadius of IterationMatrix give the caller
// the means to judge it.
package gaussseidel

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gaussfit/types"
	"github.com/notargets/gaussfit/utils"
)

// Result is created per call and not retained by the solver
type Result struct {
	Solution utils.Vector
	// Steps[k] is the approximation after sweep k+1
	Steps [][]float64
	// Errors[k] is the convergence metric between Steps[k] and its predecessor
	Errors     []float64
	Iterations int
	// Converged is false when MaxIterations sweeps ran without meeting the tolerance,
	// Solution then holds the last iterate
	Converged bool
}

// rowVisitor calls fn for the candidate non-zero entries of row i
type rowVisitor func(i int, fn func(i, j int, v float64))

func newRowVisitor(A mat.Matrix) rowVisitor {
	switch M := A.(type) {
	case utils.CSR:
		return M.DoRowNonZero
	case *sparse.CSR:
		return func(i int, fn func(i, j int, v float64)) { utils.DoRowNonZero(M, i, fn) }
	case utils.Matrix:
		return denseRows(M.M)
	case *mat.Dense:
		return denseRows(M)
	}
	_, nc := A.Dims()
	return func(i int, fn func(i, j int, v float64)) {
		for j := 0; j < nc; j++ {
			fn(i, j, A.At(i, j))
		}
	}
}

func denseRows(M *mat.Dense) rowVisitor {
	return func(i int, fn func(i, j int, v float64)) {
		for j, v := range M.RawRowView(i) {
			fn(i, j, v)
		}
	}
}

// Solve runs Gauss-Seidel sweeps from the initial guess until the error metric between successive
// iterates drops below the tolerance or MaxIterations sweeps are done. Running out of sweeps is not
// an error, check Result.Converged or compare Result.Iterations with MaxIterations.
func Solve(A mat.Matrix, b mat.Vector, opts ...Option) (r *Result, err error) {
	var (
		o      = DefaultOptions()
		nr, nc = A.Dims()
		n      = nr
		diag   []float64
		x      []float64
	)
	for _, opt := range opts {
		opt(&o)
	}
	if nr != nc || nr == 0 {
		err = fmt.Errorf("%w: A is %dx%d, need a non empty square matrix", ErrDimension, nr, nc)
		return
	}
	if b.Len() != n {
		err = fmt.Errorf("%w: A is %dx%d, len(b) = %d", ErrDimension, nr, nc, b.Len())
		return
	}
	if o.InitialGuess != nil && len(o.InitialGuess) != n {
		err = fmt.Errorf("%w: A is %dx%d, len(x0) = %d", ErrDimension, nr, nc, len(o.InitialGuess))
		return
	}
	diag = make([]float64, n)
	for i := range diag {
		if diag[i] = A.At(i, i); diag[i] == 0 {
			err = fmt.Errorf("%w: A[%d][%d] = 0", ErrZeroDiagonal, i, i)
			return
		}
	}
	x = make([]float64, n)
	if o.InitialGuess != nil {
		copy(x, o.InitialGuess)
	}
	var (
		rows  = newRowVisitor(A)
		bD    = utils.VecGetF64(b)
		sum   float64
		accum = func(i, j int, v float64) {
			if j != i {
				sum += v * x[j]
			}
		}
	)
	r = &Result{}
	for iter := 0; iter < o.MaxIterations; iter++ {
		xOld := append([]float64(nil), x...)
		// x is updated in place, so x[j] for j < i already holds this sweep's value
		for i := 0; i < n; i++ {
			sum = 0
			rows(i, accum)
			x[i] = (bD[i] - sum) / diag[i]
		}
		e := iterateError(o.ErrorType, x, xOld)
		r.Steps = append(r.Steps, append([]float64(nil), x...))
		r.Errors = append(r.Errors, e)
		if e < o.Tolerance {
			r.Iterations = iter + 1
			r.Converged = true
			r.Solution = utils.NewVector(n, append([]float64(nil), x...))
			return
		}
	}
	if o.MaxIterations > 0 {
		r.Iterations = o.MaxIterations
	}
	r.Solution = utils.NewVector(n, append([]float64(nil), x...))
	return
}

func iterateError(et types.ErrorType, xNew, xOld []float64) (e float64) {
	for i := range xNew {
		d := math.Abs(xNew[i] - xOld[i])
		if et == types.Relative {
			d /= math.Max(1, math.Abs(xNew[i]))
		}
		// NaN propagates so a diverged sweep can never pass the tolerance test
		if d > e || math.IsNaN(d) {
			e = d
		}
	}
	return
}

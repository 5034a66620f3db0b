package gaussseidel

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gaussfit/utils"
)

// IsDiagonallyDominant reports whether |A[i][i]| is strictly larger than the sum of the other |A[i][j]| in every row
func IsDiagonallyDominant(A mat.Matrix) bool {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc {
		return false
	}
	for i := 0; i < nr; i++ {
		var rowSum float64
		for j := 0; j < nc; j++ {
			if j != i {
				rowSum += math.Abs(A.At(i, j))
			}
		}
		if math.Abs(A.At(i, i)) <= rowSum {
			return false
		}
	}
	return true
}

// Split decomposes A = (D - E) - F, D diagonal, E and F the negated strictly lower and upper parts
func Split(A mat.Matrix) (D, E, F utils.Matrix, err error) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("%w: A is %dx%d, need a square matrix", ErrDimension, nr, nc)
		return
	}
	D, E, F = utils.NewMatrix(nr, nr), utils.NewMatrix(nr, nr), utils.NewMatrix(nr, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nr; j++ {
			val := A.At(i, j)
			switch {
			case i == j:
				D.Set(i, j, val)
			case j < i:
				E.Set(i, j, -val)
			default:
				F.Set(i, j, -val)
			}
		}
	}
	return
}

// IterationMatrix returns Ts = I - (D-E)^-1·A and c = (D-E)^-1·b, so that a sweep is x(k+1) = Ts·x(k) + c
func IterationMatrix(A mat.Matrix, b mat.Vector) (Ts utils.Matrix, c utils.Vector, err error) {
	var (
		D, E, DEinv utils.Matrix
		nr, _       = A.Dims()
	)
	if D, E, _, err = Split(A); err != nil {
		return
	}
	if b.Len() != nr {
		err = fmt.Errorf("%w: A is %dx%d, len(b) = %d", ErrDimension, nr, nr, b.Len())
		return
	}
	for i := 0; i < nr; i++ {
		if D.At(i, i) == 0 {
			err = fmt.Errorf("%w: A[%d][%d] = 0", ErrZeroDiagonal, i, i)
			return
		}
	}
	// D - E is lower triangular with a non zero diagonal, hence invertible
	if DEinv, err = D.Subtract(E).Inverse(); err != nil {
		return
	}
	Ts = utils.NewIdentity(nr).Subtract(DEinv.Mul(A))
	c = DEinv.MulVec(b)
	return
}

// SpectralRadius is the largest eigenvalue magnitude of the square matrix M, the sweeps converge
// for every initial guess exactly when the radius of the iteration matrix is below 1
func SpectralRadius(M mat.Matrix) (rho float64, err error) {
	var (
		eig    mat.Eigen
		nr, nc = M.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("%w: matrix is %dx%d, need a square matrix", ErrDimension, nr, nc)
		return
	}
	if ok := eig.Factorize(M, mat.EigenNone); !ok {
		err = fmt.Errorf("gaussseidel: eigenvalue decomposition did not converge")
		return
	}
	for _, lambda := range eig.Values(nil) {
		rho = math.Max(rho, cmplx.Abs(lambda))
	}
	return
}

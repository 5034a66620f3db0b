package gaussseidel

import "errors"

var (
	// ErrDimension covers a non-square A and a b or initial guess whose length differs from A's order
	ErrDimension = errors.New("gaussseidel: dimension mismatch")

	// ErrZeroDiagonal is returned before the first sweep when some A[i][i] is zero
	ErrZeroDiagonal = errors.New("gaussseidel: zero diagonal entry")
)

package linsolve

import "errors"

var (
	// ErrSingular is returned when no pivot of usable magnitude exists in some column
	ErrSingular = errors.New("linsolve: singular system")

	// ErrDimension is returned for a non-square coefficient matrix or a right hand side of the wrong length
	ErrDimension = errors.New("linsolve: dimension mismatch")
)

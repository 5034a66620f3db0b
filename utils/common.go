package utils

const (
	// PIVOTTOL is the smallest pivot magnitude accepted by the direct solver
	PIVOTTOL = 1.e-10
	// DEGENERATETOL is the relative size below which a least squares denominator is treated as zero
	DEGENERATETOL = 1.e-12
)

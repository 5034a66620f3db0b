package utils

import (
	"math"
)

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(pp))
	return
}

// PowerSums returns S[k] = Σ x_i^k for k = 0..maxPow and T[k] = Σ x_i^k * y_i for k = 0..maxPowY
func PowerSums(x, y []float64, maxPow, maxPowY int) (S, T []float64) {
	S, T = make([]float64, maxPow+1), make([]float64, maxPowY+1)
	for i, xi := range x {
		for k := 0; k <= maxPow; k++ {
			S[k] += POW(xi, k)
		}
		for k := 0; k <= maxPowY; k++ {
			T[k] += POW(xi, k) * y[i]
		}
	}
	return
}

// NearZero reports whether |val| is negligible relative to scale (scale below 1 is treated as 1)
func NearZero(val, scale, tol float64) bool {
	return math.Abs(val) < tol*math.Max(1, math.Abs(scale))
}

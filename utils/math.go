package utils

import (
	"math"
)

// POW is x^p for an integer p. Small powers are multiplied out, which is
// both faster and exact where math.Pow may round.
func POW(x float64, p int) (y float64) {
	if p > 8 || p < -8 {
		return math.Pow(x, float64(p))
	}
	n := p
	if n < 0 {
		n = -n
	}
	y = 1
	for b := x; n > 0; n >>= 1 {
		if n&1 == 1 {
			y *= b
		}
		b *= b
	}
	if p < 0 {
		y = 1. / y
	}
	return
}

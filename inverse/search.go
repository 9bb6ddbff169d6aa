package inverse

import (
	"context"
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ctxCheckInterval is the number of samples between cancellation checks
const ctxCheckInterval = 1 << 12

// Match reports whether output is within the relative error tolerance of
// target. NaN outputs never match.
func Match(target, output, tolerance float64) bool {
	return math.Abs((target-output)/target) <= math.Abs(tolerance)
}

func checkTarget(target float64) error {
	if target == 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return fmt.Errorf("%w: target must be finite and non zero for a relative error match, have %v",
			ErrDomain, target)
	}
	return nil
}

/*
FirstMatch scans (input, output) pairs in the order given and returns the
first input whose output satisfies |target-output|/|target| <= tolerance.

The first qualifying sample wins, not the closest one: for relations that are
not monotonic over the interval the lowest matching Mach number is returned
and later, possibly more accurate, samples are never examined.
*/
func FirstMatch(ctx context.Context, target, tolerance float64,
	series iter.Seq2[float64, float64]) (x float64, err error) {
	if err = checkTarget(target); err != nil {
		return
	}
	var i int
	for xx, y := range series {
		if i%ctxCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return
			}
		}
		if Match(target, y, tolerance) {
			x = xx
			return
		}
		i++
	}
	err = ErrNoSolution
	return
}

// Digits is the number of decimal places implied by a tolerance,
// |trunc(log10(tolerance))|, so 1e-4 gives 4 places.
func Digits(tolerance float64) int {
	d := math.Log10(math.Abs(tolerance))
	if r := math.Round(d); math.Abs(d-r) < 1.e-9 {
		d = r
	}
	return int(math.Abs(math.Trunc(d)))
}

// Round rounds a found Mach number to the precision implied by the
// tolerance, half to even
func Round(M, tolerance float64) float64 {
	return scalar.RoundEven(M, Digits(tolerance))
}

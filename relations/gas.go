// Package relations evaluates the closed form compressible flow relations of
// a calorically perfect gas: isentropic flow, normal and oblique shocks and
// Prandtl-Meyer expansions.
package relations

import (
	"math"
	"strconv"
)

// Gas carries the ratio of specific heats. It is an immutable value passed
// by copy, every relation is a method on it.
type Gas struct {
	gamma float64
}

// Air is a calorically perfect diatomic gas, gamma = 1.4
var Air = Gas{gamma: 1.4}

func NewGas(gamma float64) (g Gas, err error) {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma <= 1 {
		err = domainErr("gamma must be a finite value > 1, have %v", gamma)
		return
	}
	g = Gas{gamma: gamma}
	return
}

func (g Gas) Gamma() float64 { return g.gamma }

// Validate reports whether the gas was built by NewGas (or is Air)
func (g Gas) Validate() error { return g.check() }

func (g Gas) check() error {
	if !(g.gamma > 1) {
		return domainErr("gas has invalid gamma %v", g.gamma)
	}
	return nil
}

func (g Gas) String() string {
	return "gamma=" + strconv.FormatFloat(g.gamma, 'g', -1, 64)
}

package relations

import (
	"fmt"
	"math"
)

// Mu is the Mach angle asin(1/M), defined for M >= 1
func Mu(M float64) (mu float64, err error) {
	if err = checkMach(M); err != nil {
		return
	}
	if M < 1 {
		err = fmt.Errorf("%w, Mach angle requires M >= 1, have %v", ErrSubsonic, M)
		return
	}
	return finite("mu", math.Asin(1/M))
}

// Nu is the Prandtl-Meyer function, the turning angle in radians of an
// isentropic expansion from M = 1 to M
func (g Gas) Nu(M float64) (nu float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMach(M); err != nil {
		return
	}
	if M < 1 {
		err = fmt.Errorf("%w, Prandtl-Meyer angle requires M >= 1, have %v", ErrSubsonic, M)
		return
	}
	var (
		GP1 = g.gamma + 1
		GM1 = g.gamma - 1
		MM1 = M*M - 1
	)
	nu = math.Sqrt(GP1/GM1)*math.Atan(math.Sqrt(GM1/GP1*MM1)) - math.Atan(math.Sqrt(MM1))
	return finite("nu", nu)
}

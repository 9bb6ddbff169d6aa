package relations

import (
	"fmt"
	"math"

	"github.com/notargets/compflow/utils"
)

// checkSupersonic admits M1 >= 1, tolerating rounding just below one so that
// the normal component of a Mach wave (M1 sin(mu)) is accepted.
func checkSupersonic(M1 float64) error {
	if err := checkMach(M1); err != nil {
		return err
	}
	if M1 < 1-utils.NODETOL {
		return fmt.Errorf("%w, have M1=%v", ErrSubsonic, M1)
	}
	return nil
}

func checkMachPair(M1, M2 float64) error {
	if err := checkMach(M1); err != nil {
		return err
	}
	if err := checkMach(M2); err != nil {
		return err
	}
	if M1 == 0 {
		return domainErr("upstream Mach number must be > 0")
	}
	return nil
}

// NormalShockM2 is the Mach number downstream of a normal shock, the
// positive root of the shock relation.
func (g Gas) NormalShockM2(M1 float64) (M2 float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkSupersonic(M1); err != nil {
		return
	}
	M1 = math.Max(M1, 1)
	var (
		GM1   = g.gamma - 1
		numer = M1*M1 + 2/GM1
		denom = 2*g.gamma/GM1*M1*M1 - 1
	)
	if denom <= 0 {
		err = domainErr("normal shock denominator %v <= 0 at M1=%v", denom, M1)
		return
	}
	return finite("M2", math.Sqrt(numer/denom))
}

// T2OverT1 is the static temperature ratio across a shock with upstream and
// downstream Mach numbers M1 and M2
func (g Gas) T2OverT1(M1, M2 float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMachPair(M1, M2); err != nil {
		return
	}
	return finite("T2/T1", g.t2OverT1(M1, M2))
}

func (g Gas) t2OverT1(M1, M2 float64) float64 {
	return g.t0OverT(M1) / g.t0OverT(M2)
}

func (g Gas) V2OverV1(M1, M2 float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMachPair(M1, M2); err != nil {
		return
	}
	return finite("v2/v1", g.v2OverV1(M1, M2))
}

func (g Gas) v2OverV1(M1, M2 float64) float64 {
	return M2 / M1 * math.Sqrt(g.t2OverT1(M1, M2))
}

// Rho2OverRho1 is the inverse of the velocity ratio (continuity)
func (g Gas) Rho2OverRho1(M1, M2 float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMachPair(M1, M2); err != nil {
		return
	}
	v := g.v2OverV1(M1, M2)
	if v == 0 {
		err = domainErr("rho2/rho1 undefined for zero velocity ratio")
		return
	}
	return finite("rho2/rho1", 1/v)
}

func (g Gas) P2OverP1(M1, M2 float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMachPair(M1, M2); err != nil {
		return
	}
	return finite("p2/p1", g.p2OverP1(M1, M2))
}

func (g Gas) p2OverP1(M1, M2 float64) float64 {
	return (1 + g.gamma*M1*M1) / (1 + g.gamma*M2*M2)
}

// P02OverP01 is the stagnation pressure ratio across a shock
func (g Gas) P02OverP01(M1, M2 float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMachPair(M1, M2); err != nil {
		return
	}
	return finite("p02/p01", g.p02OverP01(M1, M2))
}

func (g Gas) p02OverP01(M1, M2 float64) float64 {
	return g.p0OverP(M2) / g.p0OverP(M1) * g.p2OverP1(M1, M2)
}

// P02OverP1 is the downstream stagnation pressure over the upstream static
// pressure, the pitot pressure ratio behind a normal shock
func (g Gas) P02OverP1(M1, M2 float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMachPair(M1, M2); err != nil {
		return
	}
	return finite("p02/p1", g.p0OverP(M2)*g.p2OverP1(M1, M2))
}

// Rho02OverRho01 equals p02/p01, stagnation temperature is conserved
func (g Gas) Rho02OverRho01(M1, M2 float64) (f float64, err error) {
	return g.P02OverP01(M1, M2)
}

// A2StarOverA1Star equals p01/p02
func (g Gas) A2StarOverA1Star(M1, M2 float64) (f float64, err error) {
	var p float64
	if p, err = g.P02OverP01(M1, M2); err != nil {
		return
	}
	if p == 0 {
		err = domainErr("A2*/A1* undefined for zero stagnation pressure ratio")
		return
	}
	return finite("A2*/A1*", 1/p)
}

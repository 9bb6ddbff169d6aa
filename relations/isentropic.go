package relations

import (
	"math"
)

func checkMach(M float64) error {
	if math.IsNaN(M) || math.IsInf(M, 0) || M < 0 {
		return domainErr("Mach number must be finite and >= 0, have %v", M)
	}
	return nil
}

// T0OverT is the stagnation to static temperature ratio
func (g Gas) T0OverT(M float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMach(M); err != nil {
		return
	}
	return finite("T0/T", g.t0OverT(M))
}

func (g Gas) t0OverT(M float64) float64 {
	return 1 + 0.5*(g.gamma-1)*M*M
}

// P0OverP is the stagnation to static pressure ratio, (T0/T)^(gamma/(gamma-1))
func (g Gas) P0OverP(M float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMach(M); err != nil {
		return
	}
	return finite("p0/p", g.p0OverP(M))
}

func (g Gas) p0OverP(M float64) float64 {
	return math.Pow(g.t0OverT(M), g.gamma/(g.gamma-1))
}

// Rho0OverRho is the stagnation to static density ratio, (T0/T)^(1/(gamma-1))
func (g Gas) Rho0OverRho(M float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMach(M); err != nil {
		return
	}
	return finite("rho0/rho", math.Pow(g.t0OverT(M), 1/(g.gamma-1)))
}

// AOverAStar is the area ratio of quasi one dimensional isentropic flow
// relative to the sonic throat. It is undefined at M = 0.
func (g Gas) AOverAStar(M float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMach(M); err != nil {
		return
	}
	if M == 0 {
		err = domainErr("A/A* requires M > 0")
		return
	}
	var (
		Gamma = g.gamma
		GP1   = Gamma + 1
		GM1   = Gamma - 1
	)
	f = (1 / M) * math.Pow(g.t0OverT(M)/(0.5*GP1), GP1/(2*GM1))
	return finite("A/A*", f)
}

// MassFlowOverArea is the mass flow per unit area through a section at Mach
// M, for stagnation pressure p0, stagnation temperature T0 and specific gas
// constant R, in any consistent set of units.
func (g Gas) MassFlowOverArea(M, p0, R, T0 float64) (f float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMach(M); err != nil {
		return
	}
	if p0 < 0 || R*T0 <= 0 {
		err = domainErr("mass flow requires p0 >= 0 and R*T0 > 0, have p0=%v, R=%v, T0=%v", p0, R, T0)
		return
	}
	var (
		Gamma = g.gamma
		GP1   = Gamma + 1
		GM1   = Gamma - 1
		c     = p0 / math.Sqrt(R*T0)
	)
	f = c * math.Sqrt(Gamma) * M / math.Pow(g.t0OverT(M), GP1/(2*GM1))
	return finite("mdot/A", f)
}

package relations

import "math"

const (
	// SeaLevelDensity is the standard sea level air density in kg/m^3
	SeaLevelDensity = 1.225
	// SeaLevelViscosity is the standard sea level dynamic viscosity of air in Pa s
	SeaLevelViscosity = 1.789e-5
)

// SpeedOfSound is sqrt(gamma R T) for a specific gas constant R and static
// temperature T in consistent units, J/(kg K) and K give m/s.
func (g Gas) SpeedOfSound(R, T float64) (a float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if !(R > 0) || !(T > 0) {
		err = domainErr("speed of sound requires R > 0 and T > 0, have R=%v, T=%v", R, T)
		return
	}
	return finite("a", math.Sqrt(g.gamma*R*T))
}

// Velocity is the flow speed M a at Mach M and speed of sound a
func Velocity(M, a float64) (V float64, err error) {
	if err = checkMach(M); err != nil {
		return
	}
	if !(a > 0) {
		err = domainErr("speed of sound must be > 0, have %v", a)
		return
	}
	return finite("V", M*a)
}

// MachNumber is V/a
func MachNumber(V, a float64) (M float64, err error) {
	if math.IsNaN(V) || V < 0 {
		err = domainErr("flow speed must be >= 0, have %v", V)
		return
	}
	if !(a > 0) {
		err = domainErr("speed of sound must be > 0, have %v", a)
		return
	}
	return finite("M", V/a)
}

// MachFromVelocity is the Mach number of a flow moving at V with static
// temperature T, for specific gas constant R
func (g Gas) MachFromVelocity(V, R, T float64) (M float64, err error) {
	var a float64
	if a, err = g.SpeedOfSound(R, T); err != nil {
		return
	}
	return MachNumber(V, a)
}

// ReynoldsNumber is rho V L / mu for density rho and dynamic viscosity mu
func ReynoldsNumber(V, L, rho, mu float64) (Re float64, err error) {
	if !(mu > 0) {
		err = domainErr("dynamic viscosity must be > 0, have %v", mu)
		return
	}
	if !(rho > 0) {
		err = domainErr("density must be > 0, have %v", rho)
		return
	}
	return KinematicReynoldsNumber(V, L, mu/rho)
}

// KinematicReynoldsNumber is V L / nu for kinematic viscosity nu
func KinematicReynoldsNumber(V, L, nu float64) (Re float64, err error) {
	switch {
	case !(nu > 0):
		err = domainErr("kinematic viscosity must be > 0, have %v", nu)
	case math.IsNaN(V) || V < 0 || math.IsNaN(L) || L < 0:
		err = domainErr("Reynolds number requires V >= 0 and L >= 0, have V=%v, L=%v", V, L)
	default:
		Re, err = finite("Re", V*L/nu)
	}
	return
}

package relations

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tabulated values are from Anderson, Fundamentals of Aerodynamics, Appendix
// A and B, which are accurate to about four significant figures.
const tableTol = 1.e-3

func isAccurate(known, calculated float64) bool {
	return math.Abs((known-calculated)/known) <= tableTol
}

func TestGas(t *testing.T) {
	g, err := NewGas(1.4)
	require.NoError(t, err)
	assert.Equal(t, Air, g)
	assert.Equal(t, 1.4, g.Gamma())
	assert.Equal(t, "gamma=1.4", g.String())
	for _, bad := range []float64{1, 0.5, -2, math.NaN(), math.Inf(1)} {
		_, err = NewGas(bad)
		assert.ErrorIs(t, err, ErrDomain)
	}
	// The zero value is not a usable gas
	var zero Gas
	_, err = zero.T0OverT(2)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = zero.NormalShockM2(2)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestIsentropic(t *testing.T) {
	var (
		g        = Air
		machNums = []float64{.2e-1, .6, 2.4}
		// p0/p, rho0/rho, T0/T, A/A*
		knownGood = [][4]float64{
			{.1e1, .1e1, .1e1, .2894e2},
			{.1276e1, .1190e1, .1072e1, .1188e1},
			{.1462e2, .6794e1, .2152e1, .2403e1},
		}
	)
	for i, M := range machNums {
		ip, err := g.Isentropic(M)
		require.NoError(t, err)
		vals := [4]float64{ip.P0OverP, ip.Rho0OverRho, ip.T0OverT, ip.AOverAStar}
		for j, val := range vals {
			assert.True(t, isAccurate(knownGood[i][j], val),
				"M = %v, ratio %d: have %.8f, want %.4f", M, j, val, knownGood[i][j])
		}
	}
	{ // Exact algebraic identities over a grid of Mach number and gamma
		for _, gamma := range []float64{1.1, 1.3, 1.4, 5. / 3.} {
			g, err := NewGas(gamma)
			require.NoError(t, err)
			for M := 0.05; M < 6; M += 0.25 {
				T, _ := g.T0OverT(M)
				p, _ := g.P0OverP(M)
				rho, _ := g.Rho0OverRho(M)
				assert.InEpsilon(t, math.Pow(T, gamma/(gamma-1)), p, 1.e-12)
				assert.InEpsilon(t, math.Pow(T, 1/(gamma-1)), rho, 1.e-12)
			}
		}
	}
	{ // A/A* is one at the sonic throat and undefined at rest
		a, err := g.AOverAStar(1)
		require.NoError(t, err)
		assert.InDelta(t, 1., a, 1.e-14)
		_, err = g.AOverAStar(0)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = g.T0OverT(-1)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = g.P0OverP(math.NaN())
		assert.ErrorIs(t, err, ErrDomain)
		_, err = g.Isentropic(0)
		assert.ErrorIs(t, err, ErrDomain)
	}
	{ // Mass flow, choked at M = 1
		var (
			p0, R, T0 = 101325., 287.05, 288.15
		)
		mdot, err := g.MassFlowOverArea(1, p0, R, T0)
		require.NoError(t, err)
		// 0.0404 p0/sqrt(T0) is the textbook choked flow constant for air
		assert.InEpsilon(t, 0.040418*p0/math.Sqrt(T0), mdot, 1.e-3)
		for _, M := range []float64{0.5, 0.9, 1.1, 2} {
			m, err := g.MassFlowOverArea(M, p0, R, T0)
			require.NoError(t, err)
			assert.Less(t, m, mdot)
			// Continuity: mdot/A * A/A* is constant along a nozzle
			a, _ := g.AOverAStar(M)
			assert.InEpsilon(t, mdot, m*a, 1.e-12)
		}
		_, err = g.MassFlowOverArea(1, p0, 0, T0)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = g.MassFlowOverArea(1, -p0, R, T0)
		assert.ErrorIs(t, err, ErrDomain)
	}
}

func TestNormalShock(t *testing.T) {
	var g = Air
	{ // Anderson Appendix B, M1 = 2
		ns, err := g.NormalShock(2)
		require.NoError(t, err)
		assert.True(t, isAccurate(.5774, ns.M2))
		assert.True(t, isAccurate(.45e1, ns.P2OverP1))
		assert.True(t, isAccurate(.1688e1, ns.T2OverT1))
		assert.True(t, isAccurate(.7209, ns.P02OverP01))
		assert.True(t, isAccurate(.2667e1, ns.Rho2OverRho1))
		assert.True(t, isAccurate(.5640e1, ns.P02OverP1))
		assert.Equal(t, ns.P02OverP01, ns.Rho02OverRho01)
		assert.InEpsilon(t, 1/ns.P02OverP01, ns.A2StarOverA1Star, 1.e-14)
		assert.InEpsilon(t, 1/ns.Rho2OverRho1, ns.V2OverV1, 1.e-14)
	}
	{ // M1 = 1 is the identity shock
		ns, err := g.NormalShock(1)
		require.NoError(t, err)
		assert.InDelta(t, 1., ns.M2, 1.e-14)
		for name, val := range ns.Ratios() {
			if name == "p02_p1" { // the pitot ratio is p0/p at M = 1
				continue
			}
			assert.InDelta(t, 1., val, 1.e-14, name)
		}
	}
	{ // M2 decreases toward its limit sqrt((g-1)/(2g)) and the shock is always compressive
		var (
			prev  = 1.
			limit = math.Sqrt(0.4 / 2.8)
		)
		for M1 := 1.05; M1 < 20; M1 += 0.5 {
			ns, err := g.NormalShock(M1)
			require.NoError(t, err)
			assert.Less(t, ns.M2, prev)
			assert.Greater(t, ns.M2, limit)
			assert.Greater(t, ns.P2OverP1, 1.)
			assert.Less(t, ns.P02OverP01, 1.)
			prev = ns.M2
		}
	}
	{ // Subsonic upstream flow is rejected, rounding just below one is not
		_, err := g.NormalShockM2(0.8)
		assert.ErrorIs(t, err, ErrSubsonic)
		assert.ErrorIs(t, err, ErrDomain)
		M2, err := g.NormalShockM2(1 - 1.e-15)
		require.NoError(t, err)
		assert.InDelta(t, 1., M2, 1.e-12)
		_, err = g.T2OverT1(0, 0.5)
		assert.ErrorIs(t, err, ErrDomain)
	}
	{ // Ratio map carries the original key names
		ns, _ := g.NormalShock(3)
		m := ns.Ratios()
		for _, key := range []string{"M1", "M2", "T2_T1", "rho2_rho1", "p2_p1", "p02_p01",
			"p02_p1", "rho02_rho01", "A2star_A1star", "v2_v1"} {
			assert.Contains(t, m, key)
		}
	}
}

func TestExpansion(t *testing.T) {
	var g = Air
	ep, err := g.Expansion(2)
	require.NoError(t, err)
	assert.True(t, isAccurate(26.38, ep.Nu/deg))
	assert.InDelta(t, 30., ep.Mu/deg, 1.e-12)
	nu, err := g.Nu(3)
	require.NoError(t, err)
	assert.True(t, isAccurate(49.76, nu/deg))
	nu, err = g.Nu(1)
	require.NoError(t, err)
	assert.Equal(t, 0., nu)
	mu, err := Mu(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*math.Pi, mu, 1.e-14)

	_, err = g.Nu(0.9)
	assert.ErrorIs(t, err, ErrSubsonic)
	_, err = Mu(0.5)
	assert.True(t, errors.Is(err, ErrDomain))
}

func TestFreestream(t *testing.T) {
	var g = Air
	{ // Sea level standard atmosphere
		a, err := g.SpeedOfSound(287.05, 288.15)
		require.NoError(t, err)
		assert.InDelta(t, 340.29, a, 0.01)
		V, err := Velocity(2, a)
		require.NoError(t, err)
		assert.InDelta(t, 680.58, V, 0.01)
		M, err := MachNumber(V, a)
		require.NoError(t, err)
		assert.InDelta(t, 2., M, 1.e-14)
		M, err = g.MachFromVelocity(680, 287.05, 288.15)
		require.NoError(t, err)
		assert.InDelta(t, 1.99828, M, 1.e-5)
	}
	{ // Reynolds number of a 1 m chord at 100 m/s
		Re, err := ReynoldsNumber(100, 1, SeaLevelDensity, SeaLevelViscosity)
		require.NoError(t, err)
		assert.InEpsilon(t, 6.8474e6, Re, 1.e-4)
		ReK, err := KinematicReynoldsNumber(100, 1, SeaLevelViscosity/SeaLevelDensity)
		require.NoError(t, err)
		assert.InEpsilon(t, Re, ReK, 1.e-12)
	}
	{ // Invalid input
		_, err := g.SpeedOfSound(287.05, -1)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = g.SpeedOfSound(0, 288.15)
		assert.ErrorIs(t, err, ErrDomain)
		var zero Gas
		_, err = zero.SpeedOfSound(287.05, 288.15)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = Velocity(-1, 340)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = MachNumber(100, 0)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = ReynoldsNumber(100, 1, SeaLevelDensity, 0)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = KinematicReynoldsNumber(100, -1, 1.e-5)
		assert.ErrorIs(t, err, ErrDomain)
	}
}

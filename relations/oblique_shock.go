package relations

import (
	"fmt"
	"math"

	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

// chiTol admits rounding of the cubic's cosine argument just outside [-1,1]
const chiTol = 1.e-9

func checkTurningAngle(theta float64) error {
	if math.IsNaN(theta) || theta < 0 || theta >= 0.5*math.Pi {
		return domainErr("turning angle must be in [0, pi/2), have %v", theta)
	}
	return nil
}

/*
ShockAngle solves the theta-beta-M relation for the oblique shock angle beta,
given the upstream Mach number M1 and the flow turning angle theta (radians).

The relation is a cubic in tan(beta) with a closed form trigonometric
solution:

	Lambda^2 = (M1^2-1)^2 - 3(1+(g-1)/2 M1^2)(1+(g+1)/2 M1^2) tan^2(theta)
	chi      = [(M1^2-1)^3 - 9(1+(g-1)/2 M1^2)(1+(g-1)/2 M1^2+(g+1)/4 M1^4) tan^2(theta)] / Lambda^3
	tan(b)   = [M1^2-1 + 2 Lambda cos((4 pi alpha + acos(chi))/3)] / [3(1+(g-1)/2 M1^2) tan(theta)]

with alpha = 1 for the weak root and alpha = 0 for the strong root. The shock
is detached when Lambda^2 < 0 or chi < -1, both of which return ErrDetached.
At theta = 0 the weak root is the Mach wave and the strong root the normal
shock.
*/
func (g Gas) ShockAngle(M1, theta float64, branch types.ShockBranch) (beta float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkMach(M1); err != nil {
		return
	}
	if M1 < 1 {
		err = fmt.Errorf("%w, oblique shock requires M1 >= 1, have %v", ErrSubsonic, M1)
		return
	}
	if err = checkTurningAngle(theta); err != nil {
		return
	}
	if theta == 0 {
		if branch == types.StrongShock {
			beta = 0.5 * math.Pi
			return
		}
		return Mu(M1)
	}
	var (
		Gamma   = g.gamma
		GM1     = Gamma - 1
		GP1     = Gamma + 1
		MSq     = M1 * M1
		MM1     = MSq - 1
		tanT    = math.Tan(theta)
		tan2    = tanT * tanT
		a       = 1 + 0.5*GM1*MSq
		L1      = MM1 * MM1
		L2      = 3 * a * (1 + 0.5*GP1*MSq) * tan2
		lambda2 = L1 - L2
		tanB    float64
	)
	if lambda2 < 0 {
		err = fmt.Errorf("%w: M1=%v, theta=%v, Lambda^2=%v", ErrDetached, M1, theta, lambda2)
		return
	}
	if lambda2 == 0 {
		// Double root of the cubic
		tanB = MM1 / (3 * a * tanT)
	} else {
		lambda := math.Sqrt(lambda2)
		chi := (utils.POW(MM1, 3) - 9*a*(a+0.25*GP1*MSq*MSq)*tan2) / utils.POW(lambda, 3)
		switch {
		case chi < -1-chiTol:
			err = fmt.Errorf("%w: M1=%v, theta=%v, chi=%v", ErrDetached, M1, theta, chi)
			return
		case chi > 1+chiTol || math.IsNaN(chi):
			err = domainErr("oblique shock cubic has chi=%v at M1=%v, theta=%v", chi, M1, theta)
			return
		}
		chi = math.Max(-1, math.Min(1, chi))
		tanB = (MM1 + 2*lambda*math.Cos((4*math.Pi*branch.Alpha()+math.Acos(chi))/3)) / (3 * a * tanT)
	}
	return g.refineShockAngle(M1, theta, math.Atan(tanB), branch)
}

// shockAngleTol is the turning angle residual, relative to theta, accepted
// from the closed form root
const shockAngleTol = 1.e-10

/*
refineShockAngle accepts the closed form root when it lies on its branch and
reproduces theta. Otherwise the root is found by bisection of the turning
angle over the branch, [mu, betaMax] for the weak shock and [betaMax, pi/2]
for the strong one.

The closed form loses its precision to cancellation as theta approaches zero,
below about 1e-6 the weak root can even fall under the Mach angle.
*/
func (g Gas) refineShockAngle(M1, theta, beta float64, branch types.ShockBranch) (float64, error) {
	var (
		lo, hi, betaMax, th float64
		err                 error
		increasing          = branch != types.StrongShock
	)
	if lo, err = Mu(M1); err != nil {
		return 0, err
	}
	if _, betaMax, err = g.MaxTurningAngle(M1); err != nil {
		return 0, err
	}
	hi = betaMax
	if !increasing {
		lo, hi = betaMax, 0.5*math.Pi
	}
	if beta >= lo && beta <= hi {
		if th, err = g.TurningAngle(M1, beta); err == nil && math.Abs(th-theta) <= shockAngleTol*theta {
			return beta, nil
		}
	}
	for i := 0; i < 200; i++ {
		mid := 0.5 * (lo + hi)
		if mid <= lo || mid >= hi {
			break
		}
		if th, err = g.TurningAngle(M1, mid); err != nil {
			return 0, err
		}
		if (th < theta) == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return finite("beta", 0.5*(lo+hi))
}

// TurningAngle is the forward theta-beta-M relation, the flow deflection
// produced by an oblique shock at angle beta. Shock angles below the Mach
// angle do not form a shock and return a domain error.
func (g Gas) TurningAngle(M1, beta float64) (theta float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkSupersonic(M1); err != nil {
		return
	}
	if math.IsNaN(beta) || beta <= 0 || beta > 0.5*math.Pi {
		err = domainErr("shock angle must be in (0, pi/2], have %v", beta)
		return
	}
	var (
		MSq   = M1 * M1
		sinB  = math.Sin(beta)
		numer = MSq*sinB*sinB - 1
		denom = MSq*(g.gamma+math.Cos(2*beta)) + 2
	)
	if numer < -utils.NODETOL {
		err = domainErr("shock angle %v is below the Mach angle for M1=%v", beta, M1)
		return
	}
	theta = math.Atan(2 * numer / (math.Tan(beta) * denom))
	return finite("theta", math.Max(theta, 0))
}

// MaxTurningAngle is the largest turning angle for which an attached oblique
// shock exists at M1, along with the shock angle at which it occurs.
func (g Gas) MaxTurningAngle(M1 float64) (thetaMax, betaMax float64, err error) {
	if err = g.check(); err != nil {
		return
	}
	if err = checkSupersonic(M1); err != nil {
		return
	}
	var (
		Gamma = g.gamma
		GP1   = Gamma + 1
		GM1   = Gamma - 1
		MSq   = M1 * M1
		s2    = (0.25*GP1*MSq - 1 + math.Sqrt(GP1*(GP1/16*MSq*MSq+0.5*GM1*MSq+1))) / (Gamma * MSq)
	)
	betaMax = math.Asin(math.Sqrt(math.Min(s2, 1)))
	thetaMax, err = g.TurningAngle(M1, betaMax)
	return
}

// NormalMach is the shock normal component of the upstream Mach number
func NormalMach(M1, beta float64) float64 {
	return M1 * math.Sin(beta)
}

// DeRotateMach recovers the downstream Mach number from the normal shock
// result M2n behind an oblique shock at angle beta turning the flow by theta
func DeRotateMach(M2n, beta, theta float64) (M2 float64, err error) {
	s := math.Sin(beta - theta)
	if s <= 0 {
		err = domainErr("sin(beta-theta) = %v, beta=%v, theta=%v", s, beta, theta)
		return
	}
	return finite("M2", M2n/s)
}

package relations

import (
	"github.com/notargets/compflow/types"
)

type IsentropicProperties struct {
	M           float64
	AOverAStar  float64
	T0OverT     float64
	P0OverP     float64
	Rho0OverRho float64
}

func (g Gas) Isentropic(M float64) (ip IsentropicProperties, err error) {
	ip.M = M
	if ip.AOverAStar, err = g.AOverAStar(M); err != nil {
		return
	}
	if ip.T0OverT, err = g.T0OverT(M); err != nil {
		return
	}
	if ip.P0OverP, err = g.P0OverP(M); err != nil {
		return
	}
	ip.Rho0OverRho, err = g.Rho0OverRho(M)
	return
}

func (ip IsentropicProperties) Ratios() map[string]float64 {
	return map[string]float64{
		"M":        ip.M,
		"A_Astar":  ip.AOverAStar,
		"T0_T":     ip.T0OverT,
		"p0_p":     ip.P0OverP,
		"rho0_rho": ip.Rho0OverRho,
	}
}

// ShockRatios are the property ratios across a normal shock, or across the
// normal component of an oblique shock
type ShockRatios struct {
	T2OverT1         float64
	Rho2OverRho1     float64
	P2OverP1         float64
	P02OverP01       float64
	Rho02OverRho01   float64
	A2StarOverA1Star float64
	V2OverV1         float64
}

func (g Gas) shockRatios(M1, M2 float64) (sr ShockRatios, err error) {
	if sr.T2OverT1, err = g.T2OverT1(M1, M2); err != nil {
		return
	}
	if sr.Rho2OverRho1, err = g.Rho2OverRho1(M1, M2); err != nil {
		return
	}
	if sr.P2OverP1, err = g.P2OverP1(M1, M2); err != nil {
		return
	}
	if sr.P02OverP01, err = g.P02OverP01(M1, M2); err != nil {
		return
	}
	if sr.Rho02OverRho01, err = g.Rho02OverRho01(M1, M2); err != nil {
		return
	}
	if sr.A2StarOverA1Star, err = g.A2StarOverA1Star(M1, M2); err != nil {
		return
	}
	sr.V2OverV1, err = g.V2OverV1(M1, M2)
	return
}

func (sr ShockRatios) fill(m map[string]float64) {
	m["T2_T1"] = sr.T2OverT1
	m["rho2_rho1"] = sr.Rho2OverRho1
	m["p2_p1"] = sr.P2OverP1
	m["p02_p01"] = sr.P02OverP01
	m["rho02_rho01"] = sr.Rho02OverRho01
	m["A2star_A1star"] = sr.A2StarOverA1Star
	m["v2_v1"] = sr.V2OverV1
}

type NormalShockProperties struct {
	M1, M2 float64
	ShockRatios
	P02OverP1 float64
}

func (g Gas) NormalShock(M1 float64) (ns NormalShockProperties, err error) {
	ns.M1 = M1
	if ns.M2, err = g.NormalShockM2(M1); err != nil {
		return
	}
	if ns.ShockRatios, err = g.shockRatios(M1, ns.M2); err != nil {
		return
	}
	ns.P02OverP1, err = g.P02OverP1(M1, ns.M2)
	return
}

func (ns NormalShockProperties) Ratios() map[string]float64 {
	m := map[string]float64{
		"M1":     ns.M1,
		"M2":     ns.M2,
		"p02_p1": ns.P02OverP1,
	}
	ns.ShockRatios.fill(m)
	return m
}

// ObliqueShockProperties carries no p02/p1: the pitot ratio of the normal
// component has no meaning once the flow is rotated back.
type ObliqueShockProperties struct {
	M1, Theta float64
	Branch    types.ShockBranch
	Beta      float64
	M1n, M2n  float64 // Normal components up and downstream of the shock
	M2        float64
	ShockRatios
}

func (g Gas) ObliqueShock(M1, theta float64, branch types.ShockBranch) (ob ObliqueShockProperties, err error) {
	ob.M1, ob.Theta, ob.Branch = M1, theta, branch
	if ob.Beta, err = g.ShockAngle(M1, theta, branch); err != nil {
		return
	}
	ob.M1n = NormalMach(M1, ob.Beta)
	if ob.M2n, err = g.NormalShockM2(ob.M1n); err != nil {
		return
	}
	if ob.M2, err = DeRotateMach(ob.M2n, ob.Beta, theta); err != nil {
		return
	}
	ob.ShockRatios, err = g.shockRatios(ob.M1n, ob.M2n)
	return
}

func (ob ObliqueShockProperties) Ratios() map[string]float64 {
	m := map[string]float64{
		"M1":    ob.M1,
		"M1n":   ob.M1n,
		"M2n":   ob.M2n,
		"M2":    ob.M2,
		"beta":  ob.Beta,
		"theta": ob.Theta,
	}
	ob.ShockRatios.fill(m)
	return m
}

type ExpansionProperties struct {
	M, Nu, Mu float64
}

func (g Gas) Expansion(M float64) (ep ExpansionProperties, err error) {
	ep.M = M
	if ep.Nu, err = g.Nu(M); err != nil {
		return
	}
	ep.Mu, err = Mu(M)
	return
}

func (ep ExpansionProperties) Ratios() map[string]float64 {
	return map[string]float64{
		"M":  ep.M,
		"nu": ep.Nu,
		"mu": ep.Mu,
	}
}

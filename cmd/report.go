package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
)

type row struct {
	Label string
	Value float64
}

type angleOpts struct {
	Theta   float64 // radians
	Branch  types.ShockBranch
	Degrees bool // report angles in degrees
}

func (ao angleOpts) angle(rad float64) float64 {
	if ao.Degrees {
		return rad * 180 / math.Pi
	}
	return rad
}

func (ao angleOpts) unit() string {
	if ao.Degrees {
		return "deg"
	}
	return "rad"
}

var familyLabels = map[types.Family][]string{
	types.Isentropic: {"M", "A/A*", "T0/T", "p0/p", "rho0/rho"},
	types.NormalShock: {"M1", "M2", "T2/T1", "rho2/rho1", "p2/p1", "p02/p01",
		"p02/p1", "rho02/rho01", "A2*/A1*", "v2/v1"},
	types.ObliqueShock: {"M1", "beta", "M1n", "M2n", "M2", "T2/T1", "rho2/rho1", "p2/p1",
		"p02/p01", "rho02/rho01", "A2*/A1*", "v2/v1"},
	types.Expansion: {"M", "nu", "mu"},
}

func labeled(f types.Family, values ...float64) (rows []row) {
	labels := familyLabels[f]
	rows = make([]row, len(values))
	for i, v := range values {
		rows[i] = row{Label: labels[i], Value: v}
	}
	return
}

// familyRows evaluates every forward relation of a family at M, in print order
func familyRows(g relations.Gas, f types.Family, M float64, ao angleOpts) (rows []row, err error) {
	switch f {
	case types.Isentropic:
		var ip relations.IsentropicProperties
		if ip, err = g.Isentropic(M); err != nil {
			return
		}
		rows = labeled(f, ip.M, ip.AOverAStar, ip.T0OverT, ip.P0OverP, ip.Rho0OverRho)
	case types.NormalShock:
		var ns relations.NormalShockProperties
		if ns, err = g.NormalShock(M); err != nil {
			return
		}
		rows = labeled(f, ns.M1, ns.M2, ns.T2OverT1, ns.Rho2OverRho1, ns.P2OverP1, ns.P02OverP01,
			ns.P02OverP1, ns.Rho02OverRho01, ns.A2StarOverA1Star, ns.V2OverV1)
	case types.ObliqueShock:
		var ob relations.ObliqueShockProperties
		if ob, err = g.ObliqueShock(M, ao.Theta, ao.Branch); err != nil {
			return
		}
		rows = labeled(f, ob.M1, ao.angle(ob.Beta), ob.M1n, ob.M2n, ob.M2, ob.T2OverT1,
			ob.Rho2OverRho1, ob.P2OverP1, ob.P02OverP01, ob.Rho02OverRho01, ob.A2StarOverA1Star,
			ob.V2OverV1)
	case types.Expansion:
		var ep relations.ExpansionProperties
		if ep, err = g.Expansion(M); err != nil {
			return
		}
		rows = labeled(f, ep.M, ao.angle(ep.Nu), ao.angle(ep.Mu))
	default:
		err = fmt.Errorf("unknown flow family %s", f)
	}
	return
}

func isAngle(label string) bool {
	return label == "beta" || label == "nu" || label == "mu" || label == "theta"
}

// printRows writes one "label = value" line per row
func printRows(w io.Writer, title string, rows []row, ao angleOpts) {
	if title != "" {
		fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	}
	for _, r := range rows {
		if isAngle(r.Label) {
			fmt.Fprintf(w, "%-12s = %f %s\n", r.Label, r.Value, ao.unit())
			continue
		}
		fmt.Fprintf(w, "%-12s = %f\n", r.Label, r.Value)
	}
}

// printTableHeader and printTableRow lay a family out one Mach number per line
func printTableHeader(w io.Writer, f types.Family) {
	for i, l := range familyLabels[f] {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%12s", l)
	}
	fmt.Fprintln(w)
}

func printTableRow(w io.Writer, rows []row) {
	for i, r := range rows {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%12.6f", r.Value)
	}
	fmt.Fprintln(w)
}

package InputParameters

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"

	"github.com/notargets/compflow/inverse"
	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
)

// Parameters obtained from the YAML case file
type InputParameters struct {
	Title   string  `json:"Title"`
	Gamma   float64 `json:"Gamma"`   // Zero is air, 1.4
	Degrees bool    `json:"Degrees"` // Turning angles are given in degrees
	Cases   []Case  `json:"Cases"`
}

// Case is either a forward evaluation of a family at Mach, or, when Target is
// set, an inverse solve of Relation for the Mach number producing Target.
type Case struct {
	Name     string  `json:"Name"`
	Family   string  `json:"Family"`
	Relation string  `json:"Relation"`
	Mach     float64 `json:"Mach"`
	Target   float64 `json:"Target"`
	Theta    float64 `json:"Theta"`
	Strong   bool    `json:"Strong"`
	Start    float64 `json:"Start"`
	End      float64 `json:"End"`
	Accuracy float64 `json:"Accuracy"`
	Step     float64 `json:"Step"`
}

const ExampleFile = `
########################################
Title: "Nozzle and inlet checks"
Gamma: 1.4
Degrees: true
Cases:
  - Name: exit area ratio
    Relation: isentropic/A_Astar
    Target: 1.6875
  - Name: inlet ramp
    Family: oblique
    Mach: 2
    Theta: 10
  - Name: pitot loss
    Relation: normal/p02_p01
    Target: 0.7209
    Start: 1
    End: 3
    Accuracy: 1.e-4
########################################
`

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func ReadFile(name string) (ip *InputParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(name); err != nil {
		return
	}
	ip = &InputParameters{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("%w: %s: %v", inverse.ErrInvalidConfig, name, err)
		return
	}
	err = ip.Validate()
	return
}

func (ip *InputParameters) GasModel() (relations.Gas, error) {
	if ip.Gamma == 0 {
		return relations.Air, nil
	}
	return relations.NewGas(ip.Gamma)
}

func (c Case) IsInverse() bool { return c.Target != 0 }

// Interval fills unset sweep parameters from the defaults
func (c Case) Interval() (iv inverse.Interval) {
	iv = inverse.DefaultInterval()
	if c.Start != 0 {
		iv.Start = c.Start
	}
	if c.End != 0 {
		iv.End = c.End
	}
	if c.Accuracy != 0 {
		iv.Accuracy = c.Accuracy
	}
	iv.Step = c.Step
	return
}

func (c Case) Branch() types.ShockBranch {
	if c.Strong {
		return types.StrongShock
	}
	return types.WeakShock
}

// Kind resolves the family of a forward case or the relation of an inverse one
func (c Case) Kind() (f types.Family, rel types.Relation, err error) {
	if c.IsInverse() {
		if rel, err = types.ParseRelation(c.Relation); err != nil {
			return
		}
		f = rel.Family()
		return
	}
	f, err = types.ParseFamily(c.Family)
	return
}

func (ip *InputParameters) Validate() error {
	var errs []error
	if _, err := ip.GasModel(); err != nil {
		errs = append(errs, err)
	}
	if len(ip.Cases) == 0 {
		errs = append(errs, fmt.Errorf("no cases defined"))
	}
	for i, c := range ip.Cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		f, _, err := c.Kind()
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %v", name, err))
		case c.IsInverse():
			if err = c.Interval().Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %v", name, err))
			}
		case c.Mach <= 0:
			errs = append(errs, fmt.Errorf("%s: Mach must be positive for a %s case", name, f))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %v", inverse.ErrInvalidConfig, err)
	}
	return nil
}

func (ip *InputParameters) Fprint(w io.Writer) {
	gamma := ip.Gamma
	if gamma == 0 {
		gamma = relations.Air.Gamma()
	}
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "%8.5f\t\t= Gamma\n", gamma)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Cases\n", len(ip.Cases))
	for i, c := range ip.Cases {
		if c.IsInverse() {
			iv := c.Interval()
			fmt.Fprintf(w, "Cases[%d] %q: solve %s = %g for M in [%g, %g], accuracy %g\n",
				i, c.Name, c.Relation, c.Target, iv.Start, iv.End, iv.Accuracy)
			continue
		}
		fmt.Fprintf(w, "Cases[%d] %q: %s at M = %g", i, c.Name, c.Family, c.Mach)
		if c.Theta != 0 {
			fmt.Fprintf(w, ", theta = %g (%s)", c.Theta, c.Branch())
		}
		fmt.Fprintln(w)
	}
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/inverse"
	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/units"
)

// IsentropicCmd represents the isentropic command
var IsentropicCmd = &cobra.Command{
	Use:   "isentropic",
	Short: "Isentropic flow properties at a known Mach number",
	Long: `
Prints A/A*, T0/T, p0/p and rho0/rho at the given Mach number. With stagnation
conditions the mass flow per unit area is added,

compflow isentropic --mach 2 --p0 1atm --T0 288.15K
compflow isentropic --velocity 680 --T 15C --length 1m`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			g        relations.Gas
			rows     []row
			extra    []row
			M        float64
			p0s, T0s string
		)
		if g, err = gasModel(); err != nil {
			return
		}
		if M, extra, err = freestream(cmd, g); err != nil {
			return
		}
		p0s, _ = cmd.Flags().GetString("p0")
		T0s, _ = cmd.Flags().GetString("T0")
		if rows, err = familyRows(g, types.Isentropic, M, angleOpts{}); err != nil {
			return
		}
		if p0s != "" || T0s != "" {
			var (
				p0   units.Pressure
				T0   units.Temperature
				R    float64
				mdot float64
			)
			if p0, err = units.ParsePressure(p0s); err != nil {
				return invalid(err)
			}
			if T0, err = units.ParseTemperature(T0s); err != nil {
				return invalid(err)
			}
			if R, err = gasConstant(cmd); err != nil {
				return
			}
			if mdot, err = g.MassFlowOverArea(M, float64(p0), R, T0.Kelvin()); err != nil {
				return
			}
			rows = append(rows, row{Label: "mdot/A", Value: mdot})
		}
		printRows(cmd.OutOrStdout(), "Isentropic flow, "+g.String(), append(rows, extra...), angleOpts{})
		return
	},
}

// NormalCmd represents the normal command
var NormalCmd = &cobra.Command{
	Use:   "normal",
	Short: "Normal shock properties at a known upstream Mach number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		return runForward(cmd, types.NormalShock, angleOpts{})
	},
}

// ObliqueCmd represents the oblique command
var ObliqueCmd = &cobra.Command{
	Use:   "oblique",
	Short: "Oblique shock properties for a known upstream Mach number and turning angle",
	Long: `
Solves the theta-beta-M relation for the weak (default) or strong shock angle
and prints the shock properties. The turning angle is read in degrees unless
--degrees=false or a unit is given,

compflow oblique --mach 2 --theta 10
compflow oblique --mach 2 --theta 0.1745rad --strong`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ao     = angleOpts{Degrees: viper.GetBool("degrees")}
			thetaS string
			theta  units.Angle
		)
		thetaS, _ = cmd.Flags().GetString("theta")
		if theta, err = units.ParseAngle(thetaS, ao.unit()); err != nil {
			return invalid(err)
		}
		ao.Theta = theta.Radians()
		if strong, _ := cmd.Flags().GetBool("strong"); strong {
			ao.Branch = types.StrongShock
		}
		return runForward(cmd, types.ObliqueShock, ao)
	},
}

// ExpansionCmd represents the expansion command
var ExpansionCmd = &cobra.Command{
	Use:   "expansion",
	Short: "Prandtl-Meyer function and Mach angle at a known Mach number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		return runForward(cmd, types.Expansion, angleOpts{Degrees: viper.GetBool("degrees")})
	},
}

func runForward(cmd *cobra.Command, f types.Family, ao angleOpts) (err error) {
	var (
		g           relations.Gas
		rows, extra []row
		M           float64
	)
	if g, err = gasModel(); err != nil {
		return
	}
	if M, extra, err = freestream(cmd, g); err != nil {
		return
	}
	if rows, err = familyRows(g, f, M, ao); err != nil {
		return explainDetached(g, M, ao, err)
	}
	title := fmt.Sprintf("%s, %s", familyTitles[f], g)
	if f == types.ObliqueShock {
		title = fmt.Sprintf("%s, %s shock, theta = %.6g %s", title, ao.Branch, ao.angle(ao.Theta), ao.unit())
	}
	printRows(cmd.OutOrStdout(), title, append(rows, extra...), ao)
	return
}

/*
freestream resolves the upstream Mach number from --mach, or from --velocity
and the static temperature --T. Given a temperature, the speed of sound and
flow speed are reported too, and with a --length the Reynolds number.
*/
func freestream(cmd *cobra.Command, g relations.Gas) (M float64, rows []row, err error) {
	var (
		flags      = cmd.Flags()
		Ts, Vs, Ls string
		T          units.Temperature
		V          units.Speed
		L          units.Length
		R, a, v    float64
	)
	M, _ = flags.GetFloat64("mach")
	Ts, _ = flags.GetString("T")
	Vs, _ = flags.GetString("velocity")
	Ls, _ = flags.GetString("length")
	switch haveMach := flags.Changed("mach"); {
	case haveMach && Vs != "":
		err = invalid(errors.New("give the Mach number or the velocity, not both"))
		return
	case !haveMach && Vs == "":
		err = invalid(errors.New("required flag \"mach\" or \"velocity\" not set"))
		return
	case Ts == "":
		if Vs != "" || Ls != "" {
			err = invalid(errors.New("--velocity and --length need the static temperature --T"))
		}
		return
	}
	if R, err = gasConstant(cmd); err != nil {
		return
	}
	if T, err = units.ParseTemperature(Ts); err != nil {
		err = invalid(err)
		return
	}
	if a, err = g.SpeedOfSound(R, T.Kelvin()); err != nil {
		return
	}
	if Vs != "" {
		if V, err = units.ParseSpeed(Vs); err != nil {
			err = invalid(err)
			return
		}
		v = float64(V)
		if M, err = relations.MachNumber(v, a); err != nil {
			return
		}
	} else if v, err = relations.Velocity(M, a); err != nil {
		return
	}
	rows = []row{
		{Label: "T (K)", Value: T.Kelvin()},
		{Label: "a (m/s)", Value: a},
		{Label: "V (m/s)", Value: v},
	}
	if Ls != "" {
		var (
			rho, mu, Re float64
		)
		if L, err = units.ParseLength(Ls); err != nil {
			err = invalid(err)
			return
		}
		rho, _ = flags.GetFloat64("rho")
		mu, _ = flags.GetFloat64("viscosity")
		if Re, err = relations.ReynoldsNumber(v, float64(L), rho, mu); err != nil {
			return
		}
		rows = append(rows, row{Label: "Re", Value: Re})
	}
	return
}

// gasConstant is --R, or the R of a gas with molar mass --molar-mass
func gasConstant(cmd *cobra.Command) (R float64, err error) {
	R, _ = cmd.Flags().GetFloat64("R")
	if mm, _ := cmd.Flags().GetFloat64("molar-mass"); cmd.Flags().Changed("molar-mass") {
		var gc units.GasConstant
		if gc, err = units.SpecificGasConstant(mm); err != nil {
			return 0, invalid(err)
		}
		R = float64(gc)
	}
	return
}

var familyTitles = map[types.Family]string{
	types.Isentropic:   "Isentropic flow",
	types.NormalShock:  "Normal shock",
	types.ObliqueShock: "Oblique shock",
	types.Expansion:    "Prandtl-Meyer expansion",
}

// explainDetached adds the maximum turning angle to a detachment error
func explainDetached(g relations.Gas, M1 float64, ao angleOpts, err error) error {
	if !errors.Is(err, relations.ErrDetached) {
		return err
	}
	thetaMax, _, merr := g.MaxTurningAngle(M1)
	if merr != nil {
		return err
	}
	return fmt.Errorf("%w, the maximum turning angle at M1 = %g is %.4f %s",
		err, M1, ao.angle(thetaMax), ao.unit())
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", inverse.ErrInvalidConfig, err)
}

func init() {
	for _, c := range []*cobra.Command{IsentropicCmd, NormalCmd, ObliqueCmd, ExpansionCmd} {
		rootCmd.AddCommand(c)
		c.Flags().Float64P("mach", "m", 0, "Mach number, upstream of the shock for shock relations")
		c.Flags().String("velocity", "", "flow speed instead of --mach, e.g. 680, 680m/s or 2448km/h, needs --T")
		c.Flags().String("T", "", "static temperature, e.g. 288.15, 288.15K or 15C")
		c.Flags().String("length", "", "reference length for the Reynolds number, e.g. 1, 1m or 3ft, needs --T")
		c.Flags().Float64("rho", relations.SeaLevelDensity, "density for the Reynolds number in kg/m^3")
		c.Flags().Float64("viscosity", relations.SeaLevelViscosity, "dynamic viscosity for the Reynolds number in Pa s")
		c.Flags().Float64("R", float64(units.AirR), "specific gas constant in J/(kg K)")
		c.Flags().Float64("molar-mass", 0, "molar mass in kg/mol, sets R in place of --R")
	}
	IsentropicCmd.Flags().String("p0", "", "stagnation pressure for mass flow, e.g. 101325, 101.3kPa or 1atm")
	IsentropicCmd.Flags().String("T0", "", "stagnation temperature for mass flow, e.g. 288.15, 288.15K or 15C")
	ObliqueCmd.Flags().StringP("theta", "t", "", "flow turning angle, e.g. 10, 10deg or 0.17rad")
	ObliqueCmd.Flags().BoolP("strong", "s", false, "use the strong shock solution")
	_ = ObliqueCmd.MarkFlagRequired("theta")
}

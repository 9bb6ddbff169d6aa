package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/units"
)

// TableCmd represents the table command
var TableCmd = &cobra.Command{
	Use:   "table",
	Short: "Tabulate a flow family over a range of Mach numbers",
	Long: `
Prints one line per Mach number, evenly spaced over [start, end]. Oblique
shock tables are at a fixed turning angle, detached points are marked,

compflow table --family normal --start 1 --end 3 --points 21
compflow table --family oblique --theta 10 --start 1.5 --end 4`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			g          relations.Gas
			f          types.Family
			start, end float64
			points     int
			ao         = angleOpts{Degrees: viper.GetBool("degrees")}
		)
		if g, err = gasModel(); err != nil {
			return
		}
		fs, _ := cmd.Flags().GetString("family")
		if f, err = types.ParseFamily(fs); err != nil {
			return invalid(err)
		}
		start, _ = cmd.Flags().GetFloat64("start")
		end, _ = cmd.Flags().GetFloat64("end")
		points, _ = cmd.Flags().GetInt("points")
		switch {
		case points < 2:
			return invalid(fmt.Errorf("need at least 2 points, have %d", points))
		case !(start < end):
			return invalid(fmt.Errorf("start %v must be below end %v", start, end))
		}
		if f == types.ObliqueShock {
			var theta units.Angle
			thetaS, _ := cmd.Flags().GetString("theta")
			if theta, err = units.ParseAngle(thetaS, ao.unit()); err != nil {
				return invalid(err)
			}
			ao.Theta = theta.Radians()
			if strong, _ := cmd.Flags().GetBool("strong"); strong {
				ao.Branch = types.StrongShock
			}
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s, %s\n", familyTitles[f], g)
		printTableHeader(w, f)
		for _, M := range floats.Span(make([]float64, points), start, end) {
			rows, err := familyRows(g, f, M, ao)
			if err != nil {
				fmt.Fprintf(w, "%12.6f %s\n", M, tableNote(err))
				continue
			}
			printTableRow(w, rows)
		}
		return nil
	},
}

func tableNote(err error) string {
	switch {
	case errors.Is(err, relations.ErrDetached):
		return "detached"
	case errors.Is(err, relations.ErrSubsonic):
		return "subsonic"
	default:
		return "undefined"
	}
}

func init() {
	rootCmd.AddCommand(TableCmd)
	TableCmd.Flags().StringP("family", "f", "isentropic", "isentropic, normal, oblique or expansion")
	TableCmd.Flags().Float64("start", 1, "first Mach number")
	TableCmd.Flags().Float64("end", 5, "last Mach number")
	TableCmd.Flags().IntP("points", "n", 41, "number of Mach numbers")
	TableCmd.Flags().StringP("theta", "t", "0", "turning angle for oblique shock tables")
	TableCmd.Flags().BoolP("strong", "s", false, "use the strong shock solution")
}

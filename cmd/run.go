package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/InputParameters"
	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/units"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a batch of forward and inverse cases from a YAML file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip   *InputParameters.InputParameters
			file string
		)
		if file, _ = cmd.Flags().GetString("inputConditionsFile"); len(file) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Example File:%s\n", InputParameters.ExampleFile)
			return invalid(fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)"))
		}
		if ip, err = InputParameters.ReadFile(file); err != nil {
			return
		}
		if viper.GetBool("verbose") {
			ip.Fprint(cmd.ErrOrStderr())
		}
		return runCases(cmd, ip)
	},
}

// runCases evaluates every case, reporting failures in place. The returned
// error joins all case failures.
func runCases(cmd *cobra.Command, ip *InputParameters.InputParameters) error {
	var (
		w        = cmd.OutOrStdout()
		errs     []error
		parallel = viper.GetInt("parallel")
		ao       = angleOpts{Degrees: ip.Degrees}
	)
	g, err := ip.GasModel()
	if err != nil {
		return invalid(err)
	}
	if ip.Title != "" {
		fmt.Fprintf(w, "%s\n\n", ip.Title)
	}
	for i, c := range ip.Cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		if err = runCase(cmd, w, g, c, name, ao, parallel); err != nil {
			fmt.Fprintf(w, "%s: error: %s\n", name, err)
			slog.Debug("case failed", "case", name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		fmt.Fprintln(w)
	}
	return errors.Join(errs...)
}

func runCase(cmd *cobra.Command, w io.Writer, g relations.Gas, c InputParameters.Case,
	name string, ao angleOpts, parallel int) (err error) {
	var (
		f    types.Family
		rel  types.Relation
		rows []row
	)
	if f, rel, err = c.Kind(); err != nil {
		return invalid(err)
	}
	if c.IsInverse() {
		var M, y float64
		iv := c.Interval()
		if M, y, err = solveRelation(cmd, g, rel, c.Target, iv, ao, parallel); err != nil {
			return
		}
		printRows(w, name+": "+rel.String(), []row{
			{Label: rel.Name(), Value: y},
			{Label: "M", Value: M},
		}, ao)
		return
	}
	if f == types.ObliqueShock {
		ao.Theta = units.Radians(c.Theta).Radians()
		if ao.Degrees {
			ao.Theta = units.Degrees(c.Theta).Radians()
		}
		ao.Branch = c.Branch()
	}
	if rows, err = familyRows(g, f, c.Mach, ao); err != nil {
		return explainDetached(g, c.Mach, ao, err)
	}
	printRows(w, fmt.Sprintf("%s: %s", name, familyTitles[f]), rows, ao)
	return
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of cases, see the example printed when omitted")
}

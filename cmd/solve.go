package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/inverse"
	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the Mach number that produces a known property ratio",
	Long: `
Sweeps the Mach interval [start, end] in steps of accuracy/10 (or --step) and
reports the first Mach number at which the relation matches the target within
the relative accuracy. Relations are named family/name,

  isentropic: A_Astar, T0_T, p0_p, rho0_rho
  normal:     p02_p01, T2_T1, p2_p1
  expansion:  nu (in degrees unless --degrees=false)

compflow solve --relation isentropic/A_Astar --target 1.6875 --start 1 --end 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			g      relations.Gas
			rel    types.Relation
			relS   string
			target float64
			ao     = angleOpts{Degrees: viper.GetBool("degrees")}
		)
		if g, err = gasModel(); err != nil {
			return
		}
		relS, _ = cmd.Flags().GetString("relation")
		if rel, err = types.ParseRelation(relS); err != nil {
			return invalid(err)
		}
		target, _ = cmd.Flags().GetFloat64("target")
		iv := inverse.Interval{
			Start:    viper.GetFloat64("start"),
			End:      viper.GetFloat64("end"),
			Accuracy: viper.GetFloat64("accuracy"),
			Step:     viper.GetFloat64("step"),
		}
		M, y, err := solveRelation(cmd, g, rel, target, iv, ao, viper.GetInt("parallel"))
		if err != nil {
			return
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s = %g, %s\n", rel, target, g)
		fmt.Fprintf(w, "M = %.*f\n", inverse.Digits(iv.Accuracy), M)
		fmt.Fprintf(w, "%s(M) = %f\n", rel.Name(), y)
		return
	},
}

// solveRelation runs the inverse search and evaluates the relation at the
// result. Prandtl-Meyer targets are taken in the angle unit of ao.
func solveRelation(cmd *cobra.Command, g relations.Gas, rel types.Relation, target float64,
	iv inverse.Interval, ao angleOpts, parallel int) (M, y float64, err error) {
	var (
		f   inverse.RelationFunc
		ctx = cmd.Context()
	)
	if ctx == nil {
		ctx = context.Background()
	}
	if rel == types.Nu && ao.Degrees {
		target *= math.Pi / 180
	}
	if M, err = inverse.Solve(ctx, g, rel, target, iv,
		inverse.WithParallelDegree(parallel), inverse.WithLogger(slog.Default())); err != nil {
		if rel == types.Nu {
			target = ao.angle(target)
		}
		err = fmt.Errorf("%s = %g in M = [%g, %g]: %w", rel, target, iv.Start, iv.End, err)
		return
	}
	if f, err = inverse.ForwardFunc(g, rel); err != nil {
		return
	}
	if y, err = f(M); err != nil {
		return
	}
	if rel == types.Nu {
		y = ao.angle(y)
	}
	return
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	var (
		iv = inverse.DefaultInterval()
	)
	SolveCmd.Flags().StringP("relation", "r", "", "relation to invert, e.g. isentropic/A_Astar")
	SolveCmd.Flags().Float64P("target", "y", 0, "value of the relation to match")
	SolveCmd.Flags().Float64("start", iv.Start, "lowest Mach number of the sweep")
	SolveCmd.Flags().Float64("end", iv.End, "highest Mach number of the sweep")
	SolveCmd.Flags().Float64P("accuracy", "a", iv.Accuracy, "relative error accepted for a match, sets the printed precision")
	SolveCmd.Flags().Float64("step", 0, "sample spacing, accuracy/10 when zero")
	SolveCmd.Flags().IntP("parallel", "p", 1, "goroutines used for the sweep, 0 for one per CPU")
	_ = SolveCmd.MarkFlagRequired("relation")
	_ = SolveCmd.MarkFlagRequired("target")
	for _, key := range []string{"start", "end", "accuracy", "step", "parallel"} {
		_ = viper.BindPFlag(key, SolveCmd.Flags().Lookup(key))
	}
}

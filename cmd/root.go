/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/lmittmann/tint"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/inverse"
	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/utils"
)

// Exit codes
const (
	ExitOK = iota
	ExitInvalid
	ExitNoSolution
	ExitDomain
)

var (
	cfgFile string
	prof    interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "compflow",
	Short: "Compressible flow relations and inverse Mach number solver",
	Long: `
Evaluates isentropic, normal shock, oblique shock and Prandtl-Meyer relations
of a calorically perfect gas, and recovers the Mach number that produces a
given property ratio.

compflow oblique --mach 2 --theta 10
compflow solve --relation isentropic/A_Astar --target 1.6875`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		})))
		if file := viper.ConfigFileUsed(); file != "" {
			slog.Debug("using config file", "file", file)
		}
		if viper.GetBool("profile") {
			prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfile()
		slog.Debug("done", "mem", utils.GetMemUsage())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := executeContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(ExitCode(err))
	}
}

// executeContext runs the command tree. PersistentPostRun is skipped when a
// command fails, so the profile is flushed here as well.
func executeContext(ctx context.Context) error {
	defer stopProfile()
	return rootCmd.ExecuteContext(ctx)
}

func stopProfile() {
	if prof != nil {
		prof.Stop()
		prof = nil
	}
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, inverse.ErrInvalidConfig):
		return ExitInvalid
	case errors.Is(err, inverse.ErrNoSolution):
		return ExitNoSolution
	case errors.Is(err, relations.ErrDomain):
		return ExitDomain
	default:
		return ExitInvalid
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.compflow.yaml)")
	rootCmd.PersistentFlags().Float64P("gamma", "g", relations.Air.Gamma(), "ratio of specific heats")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log sweep details at debug level")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile to the current directory")
	rootCmd.PersistentFlags().Bool("degrees", true, "read and print angles in degrees")
	for _, key := range []string{"gamma", "verbose", "profile", "degrees"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitInvalid)
		}

		// Search config in home directory with name ".compflow" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".compflow")
	}

	viper.SetEnvPrefix("compflow")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "error: reading config %s: %s\n", cfgFile, err)
		os.Exit(ExitInvalid)
	}
}

// gasModel is the gas selected by --gamma, the environment or the config file
func gasModel() (g relations.Gas, err error) {
	if g, err = relations.NewGas(viper.GetFloat64("gamma")); err != nil {
		err = fmt.Errorf("%w: %w", inverse.ErrInvalidConfig, err)
	}
	return
}

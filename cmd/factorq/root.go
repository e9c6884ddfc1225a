// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfactor/bayesnet"
	"github.com/katalvlaran/lvfactor/factor"
	"github.com/katalvlaran/lvfactor/table"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	network   string
	logLevel  string
	workers   int
	tolerance float64
	precision int
	styled    bool
}

// newRootCmd wires the command tree. A fresh tree per call keeps tests
// independent of each other's flag state.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	var logger *slog.Logger

	root := &cobra.Command{
		Use:          "factorq",
		Short:        "Query discrete Bayesian networks built from factor tables",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			logger, err = newLogger(cmd.ErrOrStderr(), g.logLevel)
			if err != nil {
				return err
			}
			if g.workers < 1 {
				return fmt.Errorf("--workers must be >= 1, got %d", g.workers)
			}
			if math.IsNaN(g.tolerance) || math.IsInf(g.tolerance, 0) || g.tolerance < 0 {
				return fmt.Errorf("--tolerance must be >= 0, got %g", g.tolerance)
			}
			if g.precision < 0 || g.precision > 17 {
				return fmt.Errorf("--precision must be in [0, 17], got %d", g.precision)
			}

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.network, "network", "n", "", "YAML network definition (required)")
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.IntVar(&g.workers, "workers", factor.DefaultWorkers, "goroutines per table operation")
	pf.Float64Var(&g.tolerance, "tolerance", factor.DefaultTolerance, "numeric tolerance for CPD validation and normalization")
	pf.IntVar(&g.precision, "precision", table.DefaultPrecision, "decimals printed for probabilities")
	pf.BoolVar(&g.styled, "styled", false, "draw bordered tables (default: on when stdout is a terminal)")
	_ = root.MarkPersistentFlagRequired("network")

	getLogger := func() *slog.Logger { return logger }
	root.AddCommand(newShowCmd(g, getLogger), newQueryCmd(g, getLogger))

	return root
}

// newLogger builds a text slog.Logger at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// factorOptions translates the global flags into factor options.
func (g *globalFlags) factorOptions() []factor.Option {
	return []factor.Option{
		factor.WithTolerance(g.tolerance),
		factor.WithWorkers(g.workers),
	}
}

// loadNetwork reads the network named by --network.
func (g *globalFlags) loadNetwork(log *slog.Logger) (*bayesnet.Network, error) {
	n, err := bayesnet.Load(g.network, g.factorOptions()...)
	if err != nil {
		return nil, err
	}
	log.Info("network loaded", "path", g.network, "variables", len(n.Variables()))

	return n, nil
}

// useStyled reports whether bordered output is wanted: explicitly via
// --styled, otherwise when stdout is a terminal.
func (g *globalFlags) useStyled(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("styled") {
		return g.styled
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printFactor writes f in the selected output style.
func (g *globalFlags) printFactor(cmd *cobra.Command, f *factor.Factor, opts ...table.Option) error {
	opts = append([]table.Option{table.WithPrecision(g.precision)}, opts...)
	if g.useStyled(cmd) {
		s, err := table.Styled(f, opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s)

		return err
	}

	return table.Render(cmd.OutOrStdout(), f, opts...)
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfactor/bayesnet"
)

// newQueryCmd answers P(query | evidence) by enumeration.
func newQueryCmd(g *globalFlags, logger func() *slog.Logger) *cobra.Command {
	var (
		targets  []string
		evidence []string
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Compute the posterior of one or more variables given evidence",
		Example: `  factorq query -n burglary.yaml -q Burglary -e JohnCalls=j1 -e MarryCalls=1
  factorq query -n sprinkler.yaml -q Rain,Sprinkler -e Wet=w1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger()
			n, err := g.loadNetwork(log)
			if err != nil {
				return err
			}
			query, err := n.Lookup(targets...)
			if err != nil {
				return err
			}
			ev, err := n.ParseEvidence(evidence)
			if err != nil {
				return err
			}

			start := time.Now()
			post, err := n.Query(cmd.Context(), query, ev)
			if errors.Is(err, bayesnet.ErrImpossibleEvidence) {
				log.Warn("evidence is impossible under the model", "evidence", evidence)
			}
			if err != nil {
				return err
			}
			log.Info("query answered", "query", targets, "evidence", len(ev), "elapsed", time.Since(start))

			return g.printFactor(cmd, post)
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&targets, "query", "q", nil, "query variables (repeat or comma-separate)")
	f.StringArrayVarP(&evidence, "evidence", "e", nil, "evidence as Name=value (label or index), repeatable")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

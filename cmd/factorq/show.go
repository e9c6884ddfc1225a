// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// newShowCmd prints every CPD of the network in topological order.
func newShowCmd(g *globalFlags, logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the variables and conditional probability tables of a network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger()
			n, err := g.loadNetwork(log)
			if err != nil {
				return err
			}
			order, err := n.TopologicalOrder()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, v := range order {
				nd, _ := n.Node(v.Name())
				if i > 0 {
					fmt.Fprintln(out)
				}
				parents := make([]string, len(nd.Parents))
				for j, p := range nd.Parents {
					parents[j] = p.Name()
				}
				if len(parents) == 0 {
					fmt.Fprintf(out, "P(%s)  values: %s\n", v.Name(), strings.Join(v.Values(), ", "))
				} else {
					fmt.Fprintf(out, "P(%s | %s)  values: %s\n", v.Name(), strings.Join(parents, ", "), strings.Join(v.Values(), ", "))
				}
				if err = g.printFactor(cmd, nd.CPD); err != nil {
					return err
				}
				log.Debug("printed node", "variable", v.Name(), "entries", nd.CPD.Len())
			}

			return nil
		},
	}
}

// SPDX-License-Identifier: MIT

// Command factorq inspects a discrete Bayesian network stored as YAML and
// answers exact posterior queries against it.
//
//	factorq show  -n burglary.yaml
//	factorq query -n burglary.yaml -q Burglary -e JohnCalls=j1 -e MarryCalls=1
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

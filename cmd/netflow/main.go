// SPDX-License-Identifier: MIT

// netflow classifies and solves the linear system of a node network.
//
// Usage:
//
//	netflow solve    [--file=<system.yaml> | --preset=triangle|adjusted] [--steps] [--pause]
//	netflow classify [--file=<system.yaml> | --preset=...]
//	netflow invert   [--file=<system.yaml> | --preset=...] [--steps]
//	netflow example
//
// Every command also reads NETFLOW_* environment variables; flags win.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// examplePresets are solved in order by the example command.
var examplePresets = []string{"triangle", "adjusted"}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Solve the built-in triangle network before and after adjusting capacities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range examplePresets {
				sys, err := presetSystem(name)
				if err != nil {
					return err
				}
				if err = a.runSolve(cmd, sys); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

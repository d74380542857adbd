// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netflow/linsys"
	"github.com/katalvlaran/netflow/matrix"
	"github.com/katalvlaran/netflow/render"
)

func newInvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invert",
		Short: "Invert A by reducing [A|I]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			inv, steps, err := linsys.Invert(sys.A, a.solveOptions()...)

			term, r := a.renderer(cmd, sys.Labels)
			if a.settings.Trace {
				if rerr := render.Replay(slices.Values(steps), r); rerr != nil {
					return rerr
				}
			}
			if errors.Is(err, matrix.ErrSingular) {
				return fmt.Errorf("%s: A is singular, try 'netflow solve' for the pseudo-inverse: %w", sys.Name, err)
			}
			if err != nil {
				return err
			}

			return term.Matrix("inverse A⁻¹", inv.RowsCopy(), 0)
		},
	}
}

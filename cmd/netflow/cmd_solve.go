// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/netflow/internal/config"
	"github.com/katalvlaran/netflow/linsys"
	"github.com/katalvlaran/netflow/render"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Classify the system, then compute the node flows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			return a.runSolve(cmd, sys)
		},
	}
}

func (a *app) runSolve(cmd *cobra.Command, sys *config.System) error {
	a.log.Info("solving system", zap.String("name", sys.Name), zap.Int("n", len(sys.B)))

	res, err := linsys.Solve(sys.A, sys.B, a.solveOptions()...)
	if err != nil {
		return fmt.Errorf("solve %s: %w", sys.Name, err)
	}

	term, r := a.renderer(cmd, sys.Labels)
	if sys.Name != "" {
		if err = term.Section(sys.Name); err != nil {
			return err
		}
	}
	if err = term.Matrix("system [A|b]", augmentedRows(sys), len(sys.B)); err != nil {
		return err
	}
	if err = r.Classification(res.Classification); err != nil {
		return err
	}
	if a.settings.Trace {
		if err = render.Replay(slices.Values(res.Steps), r); err != nil {
			return err
		}
	}

	return r.Result(res)
}

func augmentedRows(sys *config.System) [][]float64 {
	rows := sys.A.RowsCopy()
	for i := range rows {
		rows[i] = append(rows[i], sys.B[i])
	}

	return rows
}

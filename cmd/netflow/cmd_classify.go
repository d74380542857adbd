// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netflow/linsys"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Report det(A), rank(A), rank([A|b]) and the solution case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sys, err := a.system()
			if err != nil {
				return err
			}
			cls, err := linsys.Classify(sys.A, sys.B, a.settings.Epsilon)
			if err != nil {
				return err
			}
			_, r := a.renderer(cmd, sys.Labels)

			return r.Classification(cls)
		},
	}
}

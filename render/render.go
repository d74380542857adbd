// SPDX-License-Identifier: MIT

// Package render presents classifications, elimination steps and results.
//
// The numeric packages never print; a command hands their outputs to a
// Renderer. Terminal writes styled text with lipgloss, Pager waits for the
// user between steps, and Replay drives any Renderer from a lazy trace.
package render

import (
	"iter"

	"github.com/katalvlaran/netflow/gaussjordan"
	"github.com/katalvlaran/netflow/linsys"
)

// Renderer consumes the outputs of one solve.
type Renderer interface {
	Classification(c linsys.Classification) error
	Step(st gaussjordan.Step) error
	Result(res *linsys.Result) error
}

// Replay feeds every step of seq to r, stopping at the first error.
// Stopping also stops the underlying elimination when seq is lazy.
func Replay(seq iter.Seq[gaussjordan.Step], r Renderer) error {
	for st := range seq {
		if err := r.Step(st); err != nil {
			return err
		}
	}

	return nil
}

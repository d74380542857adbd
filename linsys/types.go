// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/netflow/gaussjordan"
	"github.com/katalvlaran/netflow/matrix"
)

// Case is the solvability class of A·x = b.
type Case int

const (
	// CaseUnique: |det(A)| > ε, exactly one solution.
	CaseUnique Case = iota

	// CaseConsistentUnderdetermined: det(A) ≈ 0 and rank(A) == rank([A|b]);
	// infinitely many exact solutions.
	CaseConsistentUnderdetermined

	// CaseInconsistent: det(A) ≈ 0 and rank(A) < rank([A|b]); no exact solution.
	CaseInconsistent
)

// String returns a stable, log-friendly name.
func (c Case) String() string {
	switch c {
	case CaseUnique:
		return "unique"
	case CaseConsistentUnderdetermined:
		return "consistent-underdetermined"
	case CaseInconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("case(%d)", int(c))
	}
}

// Classification is the immutable verdict of Classify.
type Classification struct {
	Case          Case
	Determinant   float64
	RankA         int
	RankAugmented int
	N             int
}

// HasExactSolution reports whether at least one x satisfies A·x = b exactly.
func (c Classification) HasExactSolution() bool { return c.Case != CaseInconsistent }

// IsSingular reports whether A was judged non-invertible.
func (c Classification) IsSingular() bool { return c.Case != CaseUnique }

// Method names the path Solve took to produce x.
type Method int

const (
	// MethodInverse: x = A⁻¹·b with A⁻¹ from Gauss-Jordan on [A|I].
	MethodInverse Method = iota

	// MethodPseudoInverse: x = A⁺·b (minimum-norm least squares).
	MethodPseudoInverse

	// MethodNone: the empty system, nothing to compute.
	MethodNone
)

// String returns a stable, log-friendly name.
func (m Method) String() string {
	switch m {
	case MethodInverse:
		return "inverse"
	case MethodPseudoInverse:
		return "pseudo-inverse"
	case MethodNone:
		return "none"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Result is everything Solve knows about one system.
//
// Inverse holds A⁻¹ (MethodInverse) or A⁺ (MethodPseudoInverse) so that a
// presentation layer can show it; it is nil for MethodNone. Steps is empty
// unless tracing was requested, and may be empty for singular systems even
// then.
type Result struct {
	X              []float64
	Classification Classification
	Residual       float64
	Method         Method
	Inverse        *matrix.Dense
	Steps          []gaussjordan.Step
}
